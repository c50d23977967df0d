package segy

import (
	"fmt"
	"io"
	"log"
)

// CoordinateTarget selects which trace-header coordinate pair an injected
// coordinate row is written to (spec §4.6 step 5, the -add_xy flag).
type CoordinateTarget int

const (
	TargetSource CoordinateTarget = iota
	TargetReceiver
)

// Options is the pipeline's full configuration, built once from the command
// line and held immutable for the process lifetime except where noted (spec
// §5: "only the pipeline context is mutable").
type Options struct {
	FlipEndian     bool
	NoHeader       bool
	NoEBCDICStamp  bool
	ReplaceEBCDIC  bool
	EBCDICText     string
	UseNames       bool

	RecordStart, RecordEnd int64
	TraceStart, TraceEnd   int64
	TraceOffset            int
	OnlyTracesWith         []SelectorEntry

	SkipNTraces, OnlyNTraces int
	SkipNSamples, OnlyNSamples int
	SamplesPerTraceOverride  int

	ChangeHeaderFields []SelectorEntry

	RenumberShot     bool
	RenumberTrace    bool
	InitialRecord    int64
	InitialTrace     int64
	TracesPerRecord  int

	CoordTable  *CoordinateTable
	CoordTarget CoordinateTarget

	ChangeTraceFields *ChangeFileReader

	ConvertTo   int
	DoConvert   bool
	VerticalStack int

	ArithOp  byte
	ArithVal float64
	DoArith  bool

	Archive ArchiveSink
}

// ArchiveSink receives one row per emitted trace, the pipeline's side
// channel to an optional archival store (SPEC_FULL.md DOMAIN STACK,
// -archive_uri). Defined here rather than alongside its TileDB-backed
// implementation so the pipeline has no dependency on the archive storage
// library.
type ArchiveSink interface {
	AppendTrace(originalFieldRecord, traceSequence int64, sourceX, sourceY float64, samples []float64)
}

// DefaultOptions returns an Options with the spec's documented defaults:
// full record/trace ranges, offset-12 trace filtering, no transforms
// enabled (spec §4.5, §6).
func DefaultOptions() Options {
	return Options{
		RecordStart: 0, RecordEnd: 99999999,
		TraceStart: 0, TraceEnd: 99999999,
		TraceOffset: 12,
	}
}

// PipelineContext is the mutable run-time state threaded through the
// per-trace loop: the current shot/record and within-record trace counters,
// plus the scan accumulator (spec §3, §5, §4.6 steps 3-4).
type PipelineContext struct {
	Options        Options
	CurrentRecord  int64
	CurrentTrace   int64
	tracesEmitted  int
	Scan           *ScanReport
}

// NewPipelineContext seeds the counters from Options.InitialRecord/
// InitialTrace (the -irc/-itc flags).
func NewPipelineContext(opts Options) *PipelineContext {
	return &PipelineContext{
		Options:       opts,
		CurrentRecord: opts.InitialRecord,
		CurrentTrace:  opts.InitialTrace,
	}
}

// keepTrace implements spec §4.5: a trace is kept iff the trace-offset
// field, the field-record number and every -only_traces_with entry match.
func keepTrace(opts Options, h *TraceHeader) bool {
	offsetVal, err := h.FieldAtOffset(opts.TraceOffset)
	if err == nil {
		if offsetVal < opts.TraceStart || offsetVal > opts.TraceEnd {
			return false
		}
	}

	rec, _ := h.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	if rec < opts.RecordStart || rec > opts.RecordEnd {
		return false
	}

	for _, sel := range opts.OnlyTracesWith {
		got, err := h.FieldFloat(sel.Offset)
		if err != nil {
			return false
		}
		want := ParseEntryValue(sel)
		if got != want {
			return false
		}
	}

	return true
}

// Run executes the single-pass streaming pipeline: read the reel header,
// optionally edit and write it, then iterate traces applying the strict
// per-trace transform order of spec §4.6. Fatal errors abort immediately
// without writing a partial trace; warnings are logged and processing
// continues.
func Run(ctx *PipelineContext, in io.Reader, out io.Writer) error {
	reel, err := ReadReelHeader(in, ctx.Options.FlipEndian)
	if err != nil {
		return err
	}

	if code, known := reel.DataSampleFormatCode(); !known {
		log.Printf("warning: %s (got %d)", WarnUnknownSampleFormat, code)
	}
	if v, _ := reel.FieldInt("NUMBER_OF_DATA_TRACES_PER_RECORD"); v == 0 {
		log.Printf("warning: %s", WarnZeroTracesPerRecord)
	} else if v < 0 {
		log.Printf("warning: %s", WarnNegativeTracesPer)
	}

	for _, sel := range ctx.Options.ChangeHeaderFields {
		if !sel.HasValue {
			continue
		}
		v := ParseEntryValue(sel)
		fd, ok := ReelRegistry.LookupByOffset(sel.Offset)
		if !ok {
			return ErrWrongFieldOffset
		}
		writeFieldInt(reelRawBytes(reel), fd, int64(v))
	}

	tracesPerRecord := ctx.Options.TracesPerRecord
	if tracesPerRecord == 0 {
		tracesPerRecord = reel.NumberOfDataTracesPerRecord()
	}

	if ctx.Options.VerticalStack > 1 {
		scaleReelForVerticalStack(reel, ctx.Options.VerticalStack)
	}

	sourceFormat, _ := reel.DataSampleFormatCode()
	targetFormat := sourceFormat
	if ctx.Options.DoConvert {
		targetFormat = ctx.Options.ConvertTo
		_ = reel.SetFieldInt("DATA_SAMPLE_FORMAT_CODE", int64(targetFormat))
	}

	if !ctx.Options.NoHeader {
		if err := reel.WriteReelHeader(out, ctx.Options.EBCDICText, ctx.Options.ReplaceEBCDIC, ctx.Options.NoEBCDICStamp); err != nil {
			return fmt.Errorf("segy: writing reel header: %w", err)
		}
	}

	sampleIntervalUs := 0
	if v, err := reel.FieldInt("SAMPLE_INTERVAL_FOR_THIS_REEL_MICROSECONDS"); err == nil {
		sampleIntervalUs = int(v)
	}

	skippedSoFar, emittedSoFar := 0, 0

	for {
		inHeader, err := ReadTraceHeader(in, ctx.Options.FlipEndian)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		numSamples := inHeader.NumberOfSamples()
		if numSamples == 0 {
			if ctx.Options.SamplesPerTraceOverride == 0 {
				return ErrZeroSamples
			}
			log.Printf("warning: %v; using -samples_per_trace %d", ErrZeroSamples, ctx.Options.SamplesPerTraceOverride)
			numSamples = ctx.Options.SamplesPerTraceOverride
		}

		samples, err := ReadSamplePayload(in, numSamples, sourceFormat, ctx.Options.FlipEndian)
		if err != nil {
			return err
		}

		if !keepTrace(ctx.Options, inHeader) {
			continue
		}
		if skippedSoFar < ctx.Options.SkipNTraces {
			skippedSoFar++
			continue
		}
		if ctx.Options.OnlyNTraces > 0 && emittedSoFar >= ctx.Options.OnlyNTraces {
			break
		}

		// The coordinate table is keyed on the input's original identifying
		// triple -- Step 3/4 renumbering below mutates outHeader's record/
		// trace-sequence fields, but the lookup must stay on what the file
		// actually shipped with, not what this run renumbers it to.
		inRec, inSeqReel, inSeqRecord := inHeader.IdentifyingTriple()

		outHeader := &TraceHeader{}
		// Step 1: copy trace header from input to output.
		outHeader.CopyHeaderFrom(inHeader)

		// Step 2: vertical-stack scaling of output trace-header fields.
		if ctx.Options.VerticalStack > 1 {
			if v, err := outHeader.FieldInt("SAMPLE_INTERVAL_MICROSECONDS"); err == nil {
				_ = outHeader.SetFieldInt("SAMPLE_INTERVAL_MICROSECONDS", v*int64(ctx.Options.VerticalStack))
			}
		}

		// Step 3: shot renumbering at record boundaries.
		if ctx.Options.RenumberShot {
			if ctx.tracesEmitted > 0 && ctx.tracesEmitted%tracesPerRecord == 0 {
				ctx.CurrentRecord++
				ctx.CurrentTrace = ctx.Options.InitialTrace
			}
			_ = outHeader.SetFieldInt("ORIGINAL_FIELD_RECORD_NUMBER", ctx.CurrentRecord)
		}

		// Step 4: trace renumbering within the current record.
		if ctx.Options.RenumberTrace {
			_ = outHeader.SetFieldInt("TRACE_NUMBER_WITHIN_FIELD_RECORD", ctx.CurrentTrace)
			ctx.CurrentTrace++
		}

		// Step 5: coordinate injection.
		if ctx.Options.CoordTable != nil {
			if row, ok := ctx.Options.CoordTable.Lookup(inRec, inSeqReel, inSeqRecord); ok {
				_ = outHeader.SetFieldInt("COORDINATE_UNITS", int64(row.Unit))
				_ = outHeader.SetFieldInt("COORDINATE_MULTIPLICATION_SCALAR_FOR_BYTES_73_88", int64(EncodeCoordinateScalar(ctx.Options.CoordTable.ScalingFactor)))
				if ctx.Options.CoordTarget == TargetSource {
					_ = outHeader.SetFieldInt("SOURCE_X_FEET_OR_METERS_OR_LONGITUDE", int64(row.X+0.5))
					_ = outHeader.SetFieldInt("SOURCE_Y_FEET_OR_METERS_OR_LATITUDE", int64(row.Y+0.5))
				} else {
					_ = outHeader.SetFieldInt("RECEIVER_X_FEET_OR_METERS_OR_LONGITUDE", int64(row.X+0.5))
					_ = outHeader.SetFieldInt("RECEIVER_Y_FEET_OR_METERS_OR_LATITUDE", int64(row.Y+0.5))
				}
			}
		}

		// Step 6: change-trace-fields file, strict-order desync check.
		if ctx.Options.ChangeTraceFields != nil {
			rec, seqReel, seqRecord := outHeader.IdentifyingTriple()
			chg, err := ctx.Options.ChangeTraceFields.Next()
			if err != nil {
				return err
			}
			if chg == nil || !chg.Matches(rec, seqReel, seqRecord) {
				return ErrChangeFileDesync
			}
			chg.Apply(outHeader)
		}

		// Step 7/8: decoded samples, windowing, vertical stack, arithmetic,
		// format conversion.
		outSamples := samples
		if ctx.Options.SkipNSamples > 0 || ctx.Options.OnlyNSamples > 0 {
			outSamples = WindowSamples(outSamples, ctx.Options.SkipNSamples, ctx.Options.OnlyNSamples)
			delay := DelayAdjustment(ctx.Options.SkipNSamples, sampleIntervalUs)
			if v, err := outHeader.FieldInt("DELAY_TIME_BETWEEN_SOURCE_AND_RECORDING_TIME"); err == nil {
				_ = outHeader.SetFieldInt("DELAY_TIME_BETWEEN_SOURCE_AND_RECORDING_TIME", v+int64(delay))
			}
		}
		if ctx.Options.VerticalStack > 1 {
			outSamples = VerticalStack(outSamples, ctx.Options.VerticalStack)
		}
		if ctx.Options.DoArith {
			ApplyArithmetic(outSamples, ctx.Options.ArithOp, ctx.Options.ArithVal)
		}
		outHeader.SetNumberOfSamples(len(outSamples))

		encoded, err := EncodeSamples(outSamples, targetFormat)
		if err != nil {
			return err
		}

		// Step 9: write trace header then payload.
		if err := outHeader.Write(out); err != nil {
			return err
		}
		if _, err := out.Write(encoded); err != nil {
			return err
		}

		if ctx.Scan != nil {
			ctx.Scan.Observe(outHeader, outSamples)
		}
		if ctx.Options.Archive != nil {
			rec, seqReel, _ := outHeader.IdentifyingTriple()
			srcX, _ := outHeader.FieldInt("SOURCE_X_FEET_OR_METERS_OR_LONGITUDE")
			srcY, _ := outHeader.FieldInt("SOURCE_Y_FEET_OR_METERS_OR_LATITUDE")
			ctx.Options.Archive.AppendTrace(rec, seqReel, float64(srcX), float64(srcY), outSamples)
		}

		ctx.tracesEmitted++
		emittedSoFar++
	}

	return nil
}

// reelRawBytes exposes the reel header's raw buffer for in-package field
// writes that don't go through the named-field accessors (numeric-offset
// -change_header_fields entries).
func reelRawBytes(h *ReelHeader) []byte {
	return h.raw[:]
}

// scaleReelForVerticalStack multiplies SAMPLE_INTERVAL_FOR_THIS_REEL and
// divides NUMBER_OF_SAMPLES_PER_DATA_TRACE_FOR_THIS_REEL by k, applied once
// to the output reel header (spec §4.4 "Vertical stack").
func scaleReelForVerticalStack(reel *ReelHeader, k int) {
	if v, err := reel.FieldInt("SAMPLE_INTERVAL_FOR_THIS_REEL_MICROSECONDS"); err == nil {
		_ = reel.SetFieldInt("SAMPLE_INTERVAL_FOR_THIS_REEL_MICROSECONDS", v*int64(k))
	}
	if v, err := reel.FieldInt("NUMBER_OF_SAMPLES_PER_DATA_TRACE_FOR_THIS_REEL"); err == nil {
		_ = reel.SetFieldInt("NUMBER_OF_SAMPLES_PER_DATA_TRACE_FOR_THIS_REEL", v/int64(k))
	}
}
