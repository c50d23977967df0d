package segy

import (
	"io"
)

const traceHeaderLen = 240

// TraceHeader is the 240-byte per-trace header (spec §3, §4.4). As with
// ReelHeader, bytes are kept in on-disk order and decoded through
// TraceRegistry only on access.
type TraceHeader struct {
	raw [traceHeaderLen]byte
}

// Trace pairs a decoded TraceHeader with its sample payload, widened to
// float64 regardless of the source's on-disk sample format (spec §4.4).
type Trace struct {
	Header  *TraceHeader
	Samples []float64
}

// ReadTraceHeader reads 240 bytes from r. At a clean EOF (zero bytes read)
// it returns (nil, io.EOF) to signal end of stream; any partial read is
// ErrTruncatedTraceHeader.
func ReadTraceHeader(r io.Reader, flipEndian bool) (*TraceHeader, error) {
	h := &TraceHeader{}
	n, err := io.ReadFull(r, h.raw[:])
	if n == 0 && err == io.EOF {
		return nil, io.EOF
	}
	if n != traceHeaderLen {
		return nil, ErrTruncatedTraceHeader
	}

	if flipEndian {
		for _, fd := range TraceRegistry.Fields() {
			flipFieldInPlace(h.raw[:], fd)
		}
	}
	return h, nil
}

// Write writes the 240-byte header to w.
func (h *TraceHeader) Write(w io.Writer) error {
	_, err := w.Write(h.raw[:])
	return err
}

// Bytes exposes the header's raw on-disk bytes for the dump/selector
// helpers (DumpFields, DumpSelectedFields) that render a registry's fields
// directly from a byte slice.
func (h *TraceHeader) Bytes() []byte {
	return h.raw[:]
}

// FieldInt reads a registered trace-header field by name, widened to int64.
func (h *TraceHeader) FieldInt(name string) (int64, error) {
	fd, ok := TraceRegistry.LookupByName(name)
	if !ok {
		return 0, ErrWrongFieldName
	}
	return readFieldInt(h.raw[:], fd), nil
}

// SetFieldInt writes v into a registered trace-header field by name.
func (h *TraceHeader) SetFieldInt(name string, v int64) error {
	fd, ok := TraceRegistry.LookupByName(name)
	if !ok {
		return ErrWrongFieldName
	}
	writeFieldInt(h.raw[:], fd, v)
	return nil
}

// FieldAtOffset reads a registered field addressed by raw byte offset,
// widened to int64. Used by the trace-range filter (keepTrace), which
// addresses its field by numeric offset.
func (h *TraceHeader) FieldAtOffset(offset int) (int64, error) {
	fd, ok := TraceRegistry.LookupByOffset(offset)
	if !ok {
		return 0, ErrWrongFieldOffset
	}
	return readFieldInt(h.raw[:], fd), nil
}

// SetFieldAtOffset writes v into a registered field addressed by raw byte
// offset.
func (h *TraceHeader) SetFieldAtOffset(offset int, v int64) error {
	fd, ok := TraceRegistry.LookupByOffset(offset)
	if !ok {
		return ErrWrongFieldOffset
	}
	writeFieldInt(h.raw[:], fd, v)
	return nil
}

// FieldFloat reads a registered field as a floating-point number, the value
// the -only_traces_with equality filter compares against (spec §4.5).
func (h *TraceHeader) FieldFloat(offset int) (float64, error) {
	fd, ok := TraceRegistry.LookupByOffset(offset)
	if !ok {
		return 0, ErrWrongFieldOffset
	}
	b := h.raw[fd.Offset:]
	if fd.Kind == KindIEEEFloat {
		return float64(readIEEEFloat32(b)), nil
	}
	return float64(readFieldInt(h.raw[:], fd)), nil
}

// CopyHeaderFrom copies another trace header's raw bytes in full -- the
// pipeline's step 1, "copy trace header from input to output" (spec §4.6).
func (h *TraceHeader) CopyHeaderFrom(src *TraceHeader) {
	h.raw = src.raw
}

// NumberOfSamples returns offset 114 reinterpreted as unsigned 16-bit when
// its signed reading is negative, per spec §4.4's "two's-complement
// interpretation of an unsigned value greater than 32767" rule.
func (h *TraceHeader) NumberOfSamples() int {
	fd, _ := TraceRegistry.LookupByName("NUMBER_OF_SAMPLES_IN_THIS_TRACE")
	v := readU16(h.raw[fd.Offset:])
	return int(v)
}

// SetNumberOfSamples writes offset 114.
func (h *TraceHeader) SetNumberOfSamples(n int) {
	_ = h.SetFieldInt("NUMBER_OF_SAMPLES_IN_THIS_TRACE", int64(n))
}

// IdentifyingTriple returns the (original field record, trace sequence
// within reel, trace sequence within field record) key used by the
// coordinate ingester and the change-trace-fields file (spec §4.6 steps
// 5-6).
func (h *TraceHeader) IdentifyingTriple() (rec, seqReel, seqRecord int64) {
	rec, _ = h.FieldInt("ORIGINAL_FIELD_RECORD_NUMBER")
	seqReel, _ = h.FieldInt("TRACE_SEQUENCE_NUMBER_WITHIN_REEL")
	seqRecord, _ = h.FieldInt("TRACE_NUMBER_WITHIN_FIELD_RECORD")
	return
}
