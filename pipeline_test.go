package segy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFixture assembles a minimal SEG-Y byte stream: an all-zero reel
// header with the sample format code and traces-per-record set, followed
// by one trace per entry in recordFor with the given samples (IEEE format).
func buildFixture(t *testing.T, formatCode int, recordFor []int64, samplesPerTrace [][]float64) []byte {
	t.Helper()

	var buf bytes.Buffer
	reel := &ReelHeader{}
	require.NoError(t, reel.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", int64(formatCode)))
	require.NoError(t, reel.SetFieldInt("NUMBER_OF_DATA_TRACES_PER_RECORD", 1))
	require.NoError(t, reel.WriteReelHeader(&buf, "", false, true))

	for i, rec := range recordFor {
		h := &TraceHeader{}
		require.NoError(t, h.SetFieldInt("ORIGINAL_FIELD_RECORD_NUMBER", rec))
		require.NoError(t, h.SetFieldInt("TRACE_SEQUENCE_NUMBER_WITHIN_REEL", int64(i+1)))
		require.NoError(t, h.SetFieldInt("TRACE_NUMBER_WITHIN_FIELD_RECORD", int64(i+1)))
		h.SetNumberOfSamples(len(samplesPerTrace[i]))
		require.NoError(t, h.Write(&buf))

		encoded, err := EncodeSamples(samplesPerTrace[i], formatCode)
		require.NoError(t, err)
		buf.Write(encoded)
	}

	return buf.Bytes()
}

func TestPipelineIdentity(t *testing.T) {
	// Identity holds for an already-watermarked input: the default run
	// re-stamps the same provenance text at the same offset, so a fixture
	// built with the stamp already applied comes back byte-identical.
	var buf bytes.Buffer
	reel := &ReelHeader{}
	require.NoError(t, reel.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", FormatIEEEFloat))
	require.NoError(t, reel.SetFieldInt("NUMBER_OF_DATA_TRACES_PER_RECORD", 1))
	require.NoError(t, reel.WriteReelHeader(&buf, "", false, false))

	for i, rec := range []int64{1, 1} {
		samples := [][]float64{{1, 2, 3}, {4, 5, 6}}[i]
		h := &TraceHeader{}
		require.NoError(t, h.SetFieldInt("ORIGINAL_FIELD_RECORD_NUMBER", rec))
		h.SetNumberOfSamples(len(samples))
		require.NoError(t, h.Write(&buf))
		encoded, err := EncodeSamples(samples, FormatIEEEFloat)
		require.NoError(t, err)
		buf.Write(encoded)
	}
	fixture := buf.Bytes()

	opts := DefaultOptions()
	ctx := NewPipelineContext(opts)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &out))

	assert.Equal(t, fixture, out.Bytes())
}

func TestPipelineFormatConversion(t *testing.T) {
	fixture := buildFixture(t, FormatIEEEFloat, []int64{1}, [][]float64{{0.5, -1.0, 0.0, 16.0}})

	opts := DefaultOptions()
	opts.DoConvert = true
	opts.ConvertTo = FormatIBMFloat
	ctx := NewPipelineContext(opts)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &out))

	written := out.Bytes()
	reel, err := ReadReelHeader(bytes.NewReader(written), false)
	require.NoError(t, err)
	code, _ := reel.DataSampleFormatCode()
	assert.Equal(t, FormatIBMFloat, code)

	traceStart := reelHeaderLen
	header := written[traceStart : traceStart+traceHeaderLen]
	h := &TraceHeader{}
	copy(h.raw[:], header)
	assert.Equal(t, 4, h.NumberOfSamples())

	payload := written[traceStart+traceHeaderLen:]
	assert.Equal(t, []byte{0xC1, 0x10, 0x00, 0x00}, payload[4:8])
}

func TestPipelineVerticalStackConservation(t *testing.T) {
	fixture := buildFixture(t, FormatIEEEFloat, []int64{1}, [][]float64{{1, 2, 3, 4, 5, 6}})

	opts := DefaultOptions()
	opts.VerticalStack = 2
	ctx := NewPipelineContext(opts)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &out))

	written := out.Bytes()
	traceStart := reelHeaderLen
	payload := written[traceStart+traceHeaderLen:]
	samples, err := decodeSamples(payload, 3, 4, FormatIEEEFloat)
	require.NoError(t, err)

	var total float64
	for _, v := range samples {
		total += v
	}
	assert.Equal(t, 21.0, total)
}

func TestPipelineRenumbering(t *testing.T) {
	fixture := buildFixture(t, FormatIEEEFloat, []int64{1, 1, 1, 1}, [][]float64{{1}, {1}, {1}, {1}})

	opts := DefaultOptions()
	opts.RenumberShot = true
	opts.RenumberTrace = true
	opts.InitialRecord = 5
	opts.InitialTrace = 0
	opts.TracesPerRecord = 2
	ctx := NewPipelineContext(opts)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &out))

	written := out.Bytes()
	offset := reelHeaderLen
	traceSize := traceHeaderLen + 4
	wantRec := []int64{5, 5, 6, 6}
	wantSeq := []int64{0, 1, 0, 1}
	for i := 0; i < 4; i++ {
		h := &TraceHeader{}
		copy(h.raw[:], written[offset+i*traceSize:offset+i*traceSize+traceHeaderLen])
		rec, _ := h.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
		seq, _ := h.FieldInt("TRACE_NUMBER_WITHIN_FIELD_RECORD")
		assert.Equal(t, wantRec[i], rec)
		assert.Equal(t, wantSeq[i], seq)
	}
}

func TestPipelineSampleWindowUpdatesDelay(t *testing.T) {
	fixture := buildFixture(t, FormatIEEEFloat, []int64{1}, [][]float64{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}})
	// A 2000 us reel sample interval makes skipping 2 samples add 4 to the
	// delay time.
	writeI16(fixture[3216:], 2000)

	opts := DefaultOptions()
	opts.SkipNSamples = 2
	opts.OnlyNSamples = 4
	ctx := NewPipelineContext(opts)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &out))

	written := out.Bytes()
	traceStart := reelHeaderLen
	h := &TraceHeader{}
	copy(h.raw[:], written[traceStart:traceStart+traceHeaderLen])
	assert.Equal(t, 4, h.NumberOfSamples())
	delay, _ := h.FieldInt("DELAY_TIME_BETWEEN_SOURCE_AND_RECORDING_TIME")
	assert.Equal(t, int64(4), delay)

	payload := written[traceStart+traceHeaderLen:]
	samples, err := decodeSamples(payload, 4, 4, FormatIEEEFloat)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 5}, samples)
}

func TestPipelineTranscodeRoundTrip(t *testing.T) {
	in := []float64{0.5, -1.0, 0.0, 16.0}
	fixture := buildFixture(t, FormatIEEEFloat, []int64{1}, [][]float64{in})

	opts := DefaultOptions()
	opts.DoConvert = true
	opts.ConvertTo = FormatIBMFloat
	ctx := NewPipelineContext(opts)

	var mid bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &mid))

	opts2 := DefaultOptions()
	opts2.DoConvert = true
	opts2.ConvertTo = FormatIEEEFloat
	ctx2 := NewPipelineContext(opts2)

	var out bytes.Buffer
	require.NoError(t, Run(ctx2, bytes.NewReader(mid.Bytes()), &out))

	written := out.Bytes()
	payload := written[reelHeaderLen+traceHeaderLen:]
	samples, err := decodeSamples(payload, len(in), 4, FormatIEEEFloat)
	require.NoError(t, err)
	for i := range in {
		assert.InDelta(t, in[i], samples[i], 1e-4)
	}
}

func TestPipelineCoordinateInjectionKeysOnInputTripleNotRenumbered(t *testing.T) {
	fixture := buildFixture(t, FormatIEEEFloat, []int64{1}, [][]float64{{1}})

	// Magnitudes chosen so chooseScalingFactor's cascade lands on a factor
	// of 1 (scaling in (1,10]), keeping the stored coordinates equal to
	// the input values and the assertion below simple to reason about.
	table, err := ReadCoordinateTable(strings.NewReader("1 1 1 300000000.0 400000000.0 0.0 meters\n"))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.RenumberShot = true
	opts.RenumberTrace = true
	opts.InitialRecord = 5
	opts.InitialTrace = 0
	opts.TracesPerRecord = 2
	opts.CoordTable = table
	ctx := NewPipelineContext(opts)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &out))

	written := out.Bytes()
	h := &TraceHeader{}
	copy(h.raw[:], written[reelHeaderLen:reelHeaderLen+traceHeaderLen])

	// Renumbering did take effect...
	rec, _ := h.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	assert.Equal(t, int64(5), rec)

	// ...but the coordinate lookup still resolved against the fixture's
	// original (1,1,1) triple, not the renumbered one.
	x, _ := h.FieldInt("SOURCE_X_FEET_OR_METERS_OR_LONGITUDE")
	y, _ := h.FieldInt("SOURCE_Y_FEET_OR_METERS_OR_LATITUDE")
	assert.Equal(t, int64(300000000), x)
	assert.Equal(t, int64(400000000), y)
}

func TestPipelineOnlyTracesWithFilter(t *testing.T) {
	fixture := buildFixture(t, FormatIEEEFloat, []int64{1, 2}, [][]float64{{1}, {1}})

	opts := DefaultOptions()
	opts.OnlyTracesWith = []SelectorEntry{{Offset: 8, Kind: KindInt, HasValue: true, Value: "2"}}
	ctx := NewPipelineContext(opts)

	var out bytes.Buffer
	require.NoError(t, Run(ctx, bytes.NewReader(fixture), &out))

	written := out.Bytes()
	assert.Equal(t, reelHeaderLen+traceHeaderLen+4, len(written))

	h := &TraceHeader{}
	copy(h.raw[:], written[reelHeaderLen:reelHeaderLen+traceHeaderLen])
	rec, _ := h.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	assert.Equal(t, int64(2), rec)
}
