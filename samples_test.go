package segy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSamplesIEEE(t *testing.T) {
	in := []float64{0.5, -1.0, 0.0, 16.0}
	encoded, err := EncodeSamples(in, FormatIEEEFloat)
	require.NoError(t, err)

	out, err := decodeSamples(encoded, len(in), 4, FormatIEEEFloat)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeDecodeSamplesIBM(t *testing.T) {
	in := []float64{0.5, -1.0, 0.0, 16.0}
	encoded, err := EncodeSamples(in, FormatIBMFloat)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC1, 0x10, 0x00, 0x00}, encoded[4:8])

	out, err := decodeSamples(encoded, len(in), 4, FormatIBMFloat)
	require.NoError(t, err)
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-4)
	}
}

func TestReadSamplePayloadTruncated(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x00})
	_, err := ReadSamplePayload(r, 4, FormatIEEEFloat, false)
	assert.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestReadSamplePayloadUnknownFormat(t *testing.T) {
	r := bytes.NewReader(make([]byte, 16))
	_, err := ReadSamplePayload(r, 4, 99, false)
	assert.ErrorIs(t, err, ErrUnknownSampleFormat)
}

func TestWindowSamples(t *testing.T) {
	samples := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, []float64{2, 3, 4}, WindowSamples(samples, 2, 3))
	assert.Equal(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, WindowSamples(samples, 2, 0))
	assert.Equal(t, []float64{}, WindowSamples(samples, 100, 3))
}

func TestDelayAdjustment(t *testing.T) {
	assert.Equal(t, 4, DelayAdjustment(2, 2000))
	assert.Equal(t, 0, DelayAdjustment(0, 2000))
}

func TestVerticalStackConservation(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7}
	stacked := VerticalStack(samples, 2)
	require.Len(t, stacked, 3)
	assert.Equal(t, []float64{3, 7, 11}, stacked)
}

func TestApplyArithmetic(t *testing.T) {
	samples := []float64{1, 2, 3}
	ApplyArithmetic(samples, '+', 1)
	assert.Equal(t, []float64{2, 3, 4}, samples)

	ApplyArithmetic(samples, '*', 2)
	assert.Equal(t, []float64{4, 6, 8}, samples)

	ApplyArithmetic(samples, '/', 2)
	assert.Equal(t, []float64{2, 3, 4}, samples)

	ApplyArithmetic(samples, '-', 1)
	assert.Equal(t, []float64{1, 2, 3}, samples)
}
