package segy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReelHeaderFieldRoundTrip(t *testing.T) {
	h := &ReelHeader{}
	require.NoError(t, h.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", 5))
	v, err := h.FieldInt("DATA_SAMPLE_FORMAT_CODE")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func TestReelHeaderWriteReadRoundTrip(t *testing.T) {
	h := &ReelHeader{}
	require.NoError(t, h.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", 3))

	var buf bytes.Buffer
	require.NoError(t, h.WriteReelHeader(&buf, "", false, true))
	assert.Equal(t, reelHeaderLen, buf.Len())

	read, err := ReadReelHeader(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	v, err := read.FieldInt("DATA_SAMPLE_FORMAT_CODE")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestReelHeaderProvenanceStamp(t *testing.T) {
	h := &ReelHeader{}
	var buf bytes.Buffer
	require.NoError(t, h.WriteReelHeader(&buf, "", false, false))

	read, err := ReadReelHeader(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.Contains(t, read.EBCDICText(), "segy-change")
}

func TestReelHeaderSuppressStamp(t *testing.T) {
	h := &ReelHeader{}
	var buf bytes.Buffer
	require.NoError(t, h.WriteReelHeader(&buf, "", false, true))

	read, err := ReadReelHeader(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.NotContains(t, read.EBCDICText(), "segy-change")
}

func TestReelHeaderSetEBCDICText(t *testing.T) {
	h := &ReelHeader{}
	h.SetEBCDICText("hello world")
	assert.Contains(t, h.EBCDICText()[:len("hello world")], "hello world")
}

func TestReelHeaderDataSampleFormatCodeUnknown(t *testing.T) {
	h := &ReelHeader{}
	require.NoError(t, h.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", 99))
	code, known := h.DataSampleFormatCode()
	assert.Equal(t, 99, code)
	assert.False(t, known)
}

func TestReelHeaderNumberOfDataTracesPerRecordDefault(t *testing.T) {
	h := &ReelHeader{}
	assert.Equal(t, 1, h.NumberOfDataTracesPerRecord())

	require.NoError(t, h.SetFieldInt("NUMBER_OF_DATA_TRACES_PER_RECORD", 4))
	assert.Equal(t, 4, h.NumberOfDataTracesPerRecord())
}

func TestReelHeaderFlipEndian(t *testing.T) {
	h := &ReelHeader{}
	require.NoError(t, h.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", 1))

	var buf bytes.Buffer
	require.NoError(t, h.WriteReelHeader(&buf, "", false, true))

	flipped, err := ReadReelHeader(bytes.NewReader(buf.Bytes()), true)
	require.NoError(t, err)
	v, _ := flipped.FieldInt("DATA_SAMPLE_FORMAT_CODE")
	assert.NotEqual(t, int64(1), v)
}
