package segy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReelRegistryLookup(t *testing.T) {
	fd, ok := ReelRegistry.LookupByName("DATA_SAMPLE_FORMAT_CODE")
	require.True(t, ok)
	assert.Equal(t, 3224, fd.Offset)
	assert.Equal(t, KindShort, fd.Kind)

	byOffset, ok := ReelRegistry.LookupByOffset(3224)
	require.True(t, ok)
	assert.Equal(t, fd, byOffset)
}

func TestTraceRegistryLookup(t *testing.T) {
	fd, ok := TraceRegistry.LookupByName("ORIGINAL_FIELD_RECORD_NUMBER")
	require.True(t, ok)
	assert.Equal(t, KindInt, fd.Kind)

	_, ok = TraceRegistry.LookupByName("NOT_A_REAL_FIELD")
	assert.False(t, ok)
}

func TestRegistryNoDuplicateOffsetsWithinSchema(t *testing.T) {
	seen := make(map[int]bool)
	for _, fd := range TraceRegistry.Fields() {
		assert.False(t, seen[fd.Offset], "duplicate offset %d", fd.Offset)
		seen[fd.Offset] = true
	}
}

func TestOffsetToNameInvertsNameToOffset(t *testing.T) {
	byName := ReelRegistry.NameToOffset()
	byOffset := ReelRegistry.OffsetToName()
	for name, offset := range byName {
		assert.Equal(t, name, byOffset[offset])
	}
}

func TestKindCodeRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindShort, KindInt, KindIEEEFloat, KindUShort} {
		code := k.Code()
		got, ok := KindFromCode(code)
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
}
