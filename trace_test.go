package segy

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceHeaderFieldRoundTrip(t *testing.T) {
	h := &TraceHeader{}
	require.NoError(t, h.SetFieldInt("ORIGINAL_FIELD_RECORD_NUMBER", 123))
	v, err := h.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	require.NoError(t, err)
	assert.Equal(t, int64(123), v)
}

func TestTraceHeaderWriteReadRoundTrip(t *testing.T) {
	h := &TraceHeader{}
	require.NoError(t, h.SetFieldInt("ORIGINAL_FIELD_RECORD_NUMBER", 7))

	var buf bytes.Buffer
	require.NoError(t, h.Write(&buf))
	assert.Equal(t, traceHeaderLen, buf.Len())

	read, err := ReadTraceHeader(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	v, err := read.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestReadTraceHeaderCleanEOF(t *testing.T) {
	_, err := ReadTraceHeader(bytes.NewReader(nil), false)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadTraceHeaderTruncated(t *testing.T) {
	_, err := ReadTraceHeader(bytes.NewReader(make([]byte, 10)), false)
	assert.ErrorIs(t, err, ErrTruncatedTraceHeader)
}

func TestTraceHeaderFieldAtOffset(t *testing.T) {
	h := &TraceHeader{}
	require.NoError(t, h.SetFieldAtOffset(8, 55))
	v, err := h.FieldAtOffset(8)
	require.NoError(t, err)
	assert.Equal(t, int64(55), v)

	_, err = h.FieldAtOffset(999999)
	assert.ErrorIs(t, err, ErrWrongFieldOffset)
}

func TestTraceHeaderCopyHeaderFrom(t *testing.T) {
	src := &TraceHeader{}
	require.NoError(t, src.SetFieldInt("ORIGINAL_FIELD_RECORD_NUMBER", 42))

	dst := &TraceHeader{}
	dst.CopyHeaderFrom(src)

	v, err := dst.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestTraceHeaderNumberOfSamplesRoundTrip(t *testing.T) {
	h := &TraceHeader{}
	h.SetNumberOfSamples(1500)
	assert.Equal(t, 1500, h.NumberOfSamples())
}

func TestTraceHeaderIdentifyingTriple(t *testing.T) {
	h := &TraceHeader{}
	require.NoError(t, h.SetFieldInt("ORIGINAL_FIELD_RECORD_NUMBER", 1))
	require.NoError(t, h.SetFieldInt("TRACE_SEQUENCE_NUMBER_WITHIN_REEL", 2))
	require.NoError(t, h.SetFieldInt("TRACE_NUMBER_WITHIN_FIELD_RECORD", 3))

	rec, seqReel, seqRecord := h.IdentifyingTriple()
	assert.Equal(t, int64(1), rec)
	assert.Equal(t, int64(2), seqReel)
	assert.Equal(t, int64(3), seqRecord)
}
