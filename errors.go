package segy

import "errors"

// Fatal error kinds (spec §7). Each propagates up through the pipeline
// untouched and terminates the process with a diagnostic; none are
// recovered internally.
var (
	ErrShortHeader          = errors.New("segy: short read of reel header")
	ErrTruncatedTraceHeader = errors.New("segy: truncated trace header")
	ErrTruncatedPayload     = errors.New("segy: truncated trace payload")
	ErrUnknownSampleFormat  = errors.New("segy: unknown sample format code")
	ErrZeroSamples          = errors.New("segy: trace declares zero samples")
	ErrWrongFieldName       = errors.New("segy: wrong parameter name")
	ErrWrongFieldOffset     = errors.New("segy: wrong parameter offset")
	ErrSelectorSyntax       = errors.New("segy: selector cannot be tokenised")
	ErrChangeFileDesync     = errors.New("segy: change-trace-fields file desynchronised with trace stream")
	ErrCoordinateFileSyntax = errors.New("segy: coordinate file row cannot be parsed")
	ErrOpenFailed           = errors.New("segy: failed to open file")
)

// Warning strings (spec §7 non-fatal kinds). The pipeline writes these to
// stderr via log.Printf and continues processing.
const (
	WarnUnknownSampleFormat = "DATA_SAMPLE_FORMAT_CODE is not one of {1,2,3,5}; please correct it"
	WarnZeroTracesPerRecord = "NUMBER_OF_DATA_TRACES_PER_RECORD is zero; using 1"
	WarnNegativeTracesPer   = "NUMBER_OF_DATA_TRACES_PER_RECORD is negative; reinterpreting as unsigned"
)
