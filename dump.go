package segy

import (
	"fmt"
	"strings"
)

// FieldValueString renders a single registered field's current value as
// text, the Go equivalent of the original's get_str_val: integer kinds
// render as decimal, IEEE float as a float with six decimal places.
func FieldValueString(buf []byte, fd FieldDef) string {
	switch fd.Kind {
	case KindIEEEFloat:
		return fmt.Sprintf("%f", readIEEEFloat32(buf[fd.Offset:]))
	default:
		return fmt.Sprintf("%d", readFieldInt(buf, fd))
	}
}

// DumpFields renders every field in reg in declaration order as
// "name,type,value" (or "offset,type,value" when useNames is false),
// matching the -dump_header_fields / -dump_trace_fields output format
// (spec §6).
func DumpFields(buf []byte, reg *Registry, useNames bool) string {
	var b strings.Builder
	for i, fd := range reg.Fields() {
		if i > 0 {
			b.WriteString("; ")
		}
		if useNames && fd.Name != "" {
			fmt.Fprintf(&b, "%s,%c,%s", fd.Name, fd.Kind.Code(), FieldValueString(buf, fd))
		} else {
			fmt.Fprintf(&b, "%d,%c,%s", fd.Offset, fd.Kind.Code(), FieldValueString(buf, fd))
		}
	}
	return b.String()
}

// DumpSelectedFields renders only the fields named by entries, in the order
// given -- the -dump_header_fields/-dump_trace_fields <sel> form that takes
// an explicit field list rather than the full registry (spec §6).
func DumpSelectedFields(buf []byte, reg *Registry, entries []SelectorEntry, useNames bool) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("; ")
		}
		fd, ok := reg.LookupByOffset(e.Offset)
		if !ok {
			continue
		}
		if useNames && fd.Name != "" {
			fmt.Fprintf(&b, "%s,%c,%s", fd.Name, fd.Kind.Code(), FieldValueString(buf, fd))
		} else {
			fmt.Fprintf(&b, "%d,%c,%s", fd.Offset, fd.Kind.Code(), FieldValueString(buf, fd))
		}
	}
	return b.String()
}
