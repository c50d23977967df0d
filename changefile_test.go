package segy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeFileReaderNumericForm(t *testing.T) {
	r := NewChangeFileReader(strings.NewReader("Rec/Seq/Num = 1/2/3 : fields = 8,I,42; 114,U,100\n"), false)
	rec, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(1), rec.Rec)
	assert.Equal(t, int64(2), rec.Seq)
	assert.Equal(t, int64(3), rec.Num)
	require.Len(t, rec.Fields, 2)
	assert.Equal(t, 8, rec.Fields[0].Offset)
	assert.Equal(t, KindInt, rec.Fields[0].Kind)

	next, err := r.Next()
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestChangeFileReaderNamedForm(t *testing.T) {
	r := NewChangeFileReader(strings.NewReader("Rec/Seq/Num = 1/2/3 : fields = ORIGINAL_FIELD_RECORD_NUMBER,42\n"), true)
	rec, err := r.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Len(t, rec.Fields, 1)
	assert.Equal(t, 8, rec.Fields[0].Offset)
}

func TestChangeRecordMatches(t *testing.T) {
	rec := &ChangeRecord{Rec: 1, Seq: 2, Num: 3}
	assert.True(t, rec.Matches(1, 2, 3))
	assert.False(t, rec.Matches(1, 2, 4))
}

func TestChangeRecordApply(t *testing.T) {
	h := &TraceHeader{}
	rec := &ChangeRecord{Fields: []ChangeFieldEntry{{Offset: 8, Kind: KindInt, Value: "777"}}}
	rec.Apply(h)
	v, err := h.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	require.NoError(t, err)
	assert.Equal(t, int64(777), v)
}
