package segy

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ChangeFieldEntry is one field assignment parsed from a -change_trace_fields
// line: either "offset,type,value" (numeric form) or "name,value" (named
// form, resolved against TraceRegistry before use).
type ChangeFieldEntry struct {
	Offset int
	Kind   Kind
	Value  string
}

// ChangeRecord is one parsed line of a -change_trace_fields file: the
// identifying triple the current output trace must match, and the field
// assignments to apply on a match (spec §4.6 step 6).
type ChangeRecord struct {
	Rec, Seq, Num int64
	Fields        []ChangeFieldEntry
}

// ChangeFileReader pulls one ChangeRecord per call from a -change_trace_fields
// file, in lockstep with the output trace stream.
type ChangeFileReader struct {
	scanner *bufio.Scanner
	named   bool
}

// NewChangeFileReader wraps r for line-at-a-time reading. named selects
// between the numeric and named field forms (spec §4.6 step 6, §4.2).
func NewChangeFileReader(r io.Reader, named bool) *ChangeFileReader {
	return &ChangeFileReader{scanner: bufio.NewScanner(r), named: named}
}

// Next reads and parses the next line. It returns (nil, nil) at EOF.
//
// Line grammar: "Rec/Seq/Num = r/s/n : fields = off0,T0,v0; off1,T1,v1; ..."
// or, in named form, "Rec/Seq/Num = r/s/n : fields = name0,v0; name1,v1; ...".
func (c *ChangeFileReader) Next() (*ChangeRecord, error) {
	for c.scanner.Scan() {
		line := strings.TrimSpace(c.scanner.Text())
		if line == "" {
			continue
		}
		return c.parseLine(line)
	}
	if err := c.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (c *ChangeFileReader) parseLine(line string) (*ChangeRecord, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return nil, ErrSelectorSyntax
	}

	tripleSide := strings.SplitN(parts[0], "=", 2)
	if len(tripleSide) != 2 {
		return nil, ErrSelectorSyntax
	}
	triple := strings.Split(strings.TrimSpace(tripleSide[1]), "/")
	if len(triple) != 3 {
		return nil, ErrSelectorSyntax
	}
	rec, err1 := strconv.ParseInt(strings.TrimSpace(triple[0]), 10, 64)
	seq, err2 := strconv.ParseInt(strings.TrimSpace(triple[1]), 10, 64)
	num, err3 := strconv.ParseInt(strings.TrimSpace(triple[2]), 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, ErrSelectorSyntax
	}

	fieldsSide := strings.SplitN(parts[1], "=", 2)
	if len(fieldsSide) != 2 {
		return nil, ErrSelectorSyntax
	}

	var entries []ChangeFieldEntry
	for _, tok := range strings.Split(fieldsSide[1], ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		cols := strings.Split(tok, ",")

		if c.named {
			if len(cols) != 2 {
				return nil, ErrSelectorSyntax
			}
			fd, ok := TraceRegistry.LookupByName(strings.TrimSpace(cols[0]))
			if !ok {
				return nil, ErrWrongFieldName
			}
			entries = append(entries, ChangeFieldEntry{
				Offset: fd.Offset,
				Kind:   fd.Kind,
				Value:  strings.TrimSpace(cols[1]),
			})
			continue
		}

		if len(cols) != 3 {
			return nil, ErrSelectorSyntax
		}
		offset, err := strconv.Atoi(strings.TrimSpace(cols[0]))
		if err != nil {
			return nil, ErrSelectorSyntax
		}
		kind, ok := KindFromCode(strings.TrimSpace(cols[1])[0])
		if !ok {
			return nil, ErrSelectorSyntax
		}
		if _, ok := TraceRegistry.LookupByOffset(offset); !ok {
			return nil, ErrWrongFieldOffset
		}
		entries = append(entries, ChangeFieldEntry{
			Offset: offset,
			Kind:   kind,
			Value:  strings.TrimSpace(cols[2]),
		})
	}

	return &ChangeRecord{Rec: rec, Seq: seq, Num: num, Fields: entries}, nil
}

// Matches reports whether rec matches the current output trace's identifying
// triple. A mismatch is fatal (ErrChangeFileDesync) per spec §4.6 step 6.
func (rec *ChangeRecord) Matches(traceRec, traceSeq, traceNum int64) bool {
	return rec.Rec == traceRec && rec.Seq == traceSeq && rec.Num == traceNum
}

// Apply writes every field assignment onto h.
func (rec *ChangeRecord) Apply(h *TraceHeader) {
	for _, f := range rec.Fields {
		var v int64
		if f.Kind == KindIEEEFloat {
			fv, _ := strconv.ParseFloat(f.Value, 64)
			v = int64(fv)
		} else {
			iv, _ := strconv.ParseInt(f.Value, 10, 64)
			v = iv
		}
		_ = h.SetFieldAtOffset(f.Offset, v)
	}
}
