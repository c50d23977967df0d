package segy

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

// ScanReport is the scan/report accumulator driven by -scan: running
// record/trace counts and the min/max of the sample count and sample value
// observed across the whole file (spec §4.8). The sample-count extremes
// also carry the (record, trace) locator they occurred at, matching the
// original's min_num_samples_rec_num/min_num_samples_trace_num bookkeeping.
// Duplicate-trace detection reuses the teacher's lo.FindDuplicates idiom
// (qa.go), keyed on an xxhash fingerprint of each trace's header and
// payload rather than on a ping timestamp, since SEG-Y traces carry no
// acquisition timestamp field.
type ScanReport struct {
	TotalTraces int
	TotalRecords int

	MinSampleCount, MaxSampleCount int
	MinSampleCountRecord, MaxSampleCountRecord int64
	MinSampleCountTrace, MaxSampleCountTrace   int64

	MinSampleValue, MaxSampleValue float64

	seenRecords   map[int64]bool
	fingerprints  []uint64
	Duplicates    int
}

// NewScanReport returns a ScanReport ready for Observe calls.
func NewScanReport() *ScanReport {
	return &ScanReport{
		seenRecords: make(map[int64]bool),
	}
}

// Observe folds one emitted trace into the running accumulator.
func (s *ScanReport) Observe(h *TraceHeader, samples []float64) {
	s.TotalTraces++

	rec, seqReel, _ := h.IdentifyingTriple()
	if !s.seenRecords[rec] {
		s.seenRecords[rec] = true
		s.TotalRecords++
	}

	n := len(samples)
	if s.TotalTraces == 1 {
		s.MinSampleCount, s.MaxSampleCount = n, n
		s.MinSampleCountRecord, s.MinSampleCountTrace = rec, seqReel
		s.MaxSampleCountRecord, s.MaxSampleCountTrace = rec, seqReel
	} else {
		if n < s.MinSampleCount {
			s.MinSampleCount = n
			s.MinSampleCountRecord, s.MinSampleCountTrace = rec, seqReel
		}
		if n > s.MaxSampleCount {
			s.MaxSampleCount = n
			s.MaxSampleCountRecord, s.MaxSampleCountTrace = rec, seqReel
		}
	}

	if n > 0 {
		sMin := lo.Min(samples)
		sMax := lo.Max(samples)
		if s.TotalTraces == 1 {
			s.MinSampleValue, s.MaxSampleValue = sMin, sMax
		} else {
			s.MinSampleValue = min(s.MinSampleValue, sMin)
			s.MaxSampleValue = max(s.MaxSampleValue, sMax)
		}
	}

	s.fingerprints = append(s.fingerprints, fingerprintTrace(h, samples))
}

// Finish computes the duplicate-trace count, the one statistic that needs
// the full fingerprint set rather than a running fold, and freezes it onto
// the report.
func (s *ScanReport) Finish() {
	dups := lo.FindDuplicates(s.fingerprints)
	s.Duplicates = len(dups)
}

// String renders a human-readable summary, in the spirit of the original's
// fprintf-driven -scan/-info dump.
func (s *ScanReport) String() string {
	return fmt.Sprintf(
		"traces=%d records=%d samples=[%d at rec=%d/trace=%d, %d at rec=%d/trace=%d] values=[%g,%g] duplicates=%d",
		s.TotalTraces, s.TotalRecords,
		s.MinSampleCount, s.MinSampleCountRecord, s.MinSampleCountTrace,
		s.MaxSampleCount, s.MaxSampleCountRecord, s.MaxSampleCountTrace,
		s.MinSampleValue, s.MaxSampleValue,
		s.Duplicates,
	)
}

// fingerprintTrace hashes a trace's header bytes and sample payload with
// xxHash64, giving ScanReport a cheap equality key for duplicate detection
// without retaining every trace's full contents in memory.
func fingerprintTrace(h *TraceHeader, samples []float64) uint64 {
	d := xxhash.New()
	d.Write(h.raw[:])
	buf := make([]byte, 8)
	for _, v := range samples {
		binary.BigEndian.PutUint64(buf, math.Float64bits(v))
		d.Write(buf)
	}
	return d.Sum64()
}
