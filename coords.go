package segy

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// CoordinateUnit identifies the unit word trailing each coordinate file row
// (spec §4.7).
type CoordinateUnit int

const (
	UnitUnknown CoordinateUnit = iota
	UnitFeetOrMeters
	UnitArcsec
)

// CoordinateRow is one parsed, scaled row of a coordinate file, keyed by the
// same identifying triple carried on trace headers (spec §4.6 step 5).
type CoordinateRow struct {
	OriginalFieldRecord       int64
	TraceSeqWithinReel        int64
	TraceSeqWithinFieldRecord int64
	X, Y                      float64
	Unit                      CoordinateUnit
}

// CoordinateTable is the coordinate ingester's in-memory result: the parsed
// rows keyed by their identifying triple, plus the scaling factor chosen for
// the whole table (spec §4.7).
type CoordinateTable struct {
	rows          map[[3]int64]CoordinateRow
	ScalingFactor int
}

// Lookup resolves a trace's identifying triple to a coordinate row.
func (t *CoordinateTable) Lookup(rec, seqReel, seqRecord int64) (CoordinateRow, bool) {
	row, ok := t.rows[[3]int64{rec, seqReel, seqRecord}]
	return row, ok
}

// ReadCoordinateTable parses a coordinate file of rows "d d d f f f word"
// (three ints, three floats, one unit word), computes the shared scaling
// factor from the table's magnitude, and rescales every x,y in place so the
// stored integers fit in 31 bits (spec §4.7).
//
// The scaling-factor selection is a cascading chain of independent `if`
// statements, not an else-if ladder: later, larger-threshold branches
// silently overwrite earlier ones when the computed ratio exceeds more than
// one threshold. This is the original's exact behaviour and is preserved
// bug-for-bug rather than collapsed into a cleaner single comparison.
func ReadCoordinateTable(r io.Reader) (*CoordinateTable, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	type raw struct {
		rec, seqReel, seqRecord int64
		x, y                    float64
		unitWord                string
	}
	var parsed []raw

	maxX, maxY := math.Inf(-1), math.Inf(-1)
	minX, minY := math.Inf(1), math.Inf(1)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 7 {
			return nil, ErrCoordinateFileSyntax
		}

		rec, err1 := strconv.ParseInt(fields[0], 10, 64)
		seqReel, err2 := strconv.ParseInt(fields[1], 10, 64)
		seqRecord, err3 := strconv.ParseInt(fields[2], 10, 64)
		x, err4 := strconv.ParseFloat(fields[3], 64)
		y, err5 := strconv.ParseFloat(fields[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			return nil, ErrCoordinateFileSyntax
		}

		parsed = append(parsed, raw{rec, seqReel, seqRecord, x, y, fields[6]})

		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	maxMagnitude := math.Max(math.Abs(math.Max(maxX, maxY)), math.Abs(math.Min(minX, minY)))
	factor := chooseScalingFactor(maxMagnitude)

	var divisor float64
	if factor < 0 {
		divisor = -1.0 / float64(factor)
	} else {
		divisor = float64(factor)
	}

	table := &CoordinateTable{
		rows:          make(map[[3]int64]CoordinateRow, len(parsed)),
		ScalingFactor: factor,
	}
	for _, p := range parsed {
		unit := UnitUnknown
		if p.unitWord == "feet" || p.unitWord == "meters" {
			unit = UnitFeetOrMeters
		} else if p.unitWord == "arcsec" {
			unit = UnitArcsec
		}

		row := CoordinateRow{
			OriginalFieldRecord:       p.rec,
			TraceSeqWithinReel:        p.seqReel,
			TraceSeqWithinFieldRecord: p.seqRecord,
			X:                         p.x / divisor,
			Y:                         p.y / divisor,
			Unit:                      unit,
		}
		table.rows[[3]int64{p.rec, p.seqReel, p.seqRecord}] = row
	}

	return table, nil
}

// chooseScalingFactor replicates the original's cascading threshold chain
// exactly: every branch whose threshold is exceeded fires, in ascending
// threshold order, so only the last (largest-threshold) branch that fires
// determines the final value.
func chooseScalingFactor(maxMagnitude float64) int {
	scaling := 2147483647.0 / maxMagnitude

	factor := 0
	if scaling > 0.0001 {
		factor = 10000
	}
	if scaling > 0.001 {
		factor = 1000
	}
	if scaling > 0.01 {
		factor = 100
	}
	if scaling > 0.1 {
		factor = 10
	}
	if scaling > 1 {
		factor = 1
	}
	if scaling > 10 {
		factor = -10
	}
	if scaling > 100 {
		factor = -100
	}
	if scaling > 1000 {
		factor = -1000
	}
	if scaling > 10000 {
		factor = -10000
	}
	return factor
}

// EncodeCoordinateScalar converts a CoordinateTable's ScalingFactor into the
// SEG-Y convention stored at trace-header offset 70: positive values mean
// "multiply on read", negative values mean "divide on read" and are stored
// as the negated divisor (spec §4.6 step 5).
func EncodeCoordinateScalar(factor int) int16 {
	return int16(factor)
}
