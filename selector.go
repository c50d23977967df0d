package segy

import (
	"strconv"
	"strings"
)

// maxSelectorLen bounds a raw selector string's length (spec §4.2).
const maxSelectorLen = 2048

// SelectorEntry is one comma-separated term of a parsed selector: a
// registered field, plus an optional value used by change/filter selectors.
type SelectorEntry struct {
	Offset   int
	Kind     Kind
	HasValue bool
	Value    string
}

// ParseSelector parses a selector string against the given registry. When
// named is true, each token's leading segment is a field name looked up in
// reg; on success the registry's own offset/kind takes over (spec §4.2,
// "rewritten into numeric form"). When named is false, the leading segment
// is "offset:type[:value]" in numeric form, used directly.
//
// The parser splits on commas at the top level and on colons within a
// token; the first colon separates the (name|offset) from the type or
// value.
func ParseSelector(s string, reg *Registry, named bool) ([]SelectorEntry, error) {
	if len(s) > maxSelectorLen {
		return nil, ErrSelectorSyntax
	}

	var entries []SelectorEntry
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		parts := strings.SplitN(tok, ":", 3)
		if len(parts) < 2 {
			return nil, ErrSelectorSyntax
		}

		var entry SelectorEntry
		if named {
			fd, ok := reg.LookupByName(parts[0])
			if !ok {
				return nil, ErrWrongFieldName
			}
			entry.Offset = fd.Offset
			entry.Kind = fd.Kind
			if len(parts) == 2 {
				entry.HasValue = true
				entry.Value = parts[1]
			} else if len(parts) == 3 {
				entry.HasValue = true
				entry.Value = parts[2]
			}
		} else {
			offset, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, ErrSelectorSyntax
			}
			if len(parts[1]) == 0 {
				return nil, ErrSelectorSyntax
			}
			kind, ok := KindFromCode(parts[1][0])
			if !ok {
				return nil, ErrSelectorSyntax
			}
			if _, ok := reg.LookupByOffset(offset); !ok {
				return nil, ErrWrongFieldOffset
			}
			entry.Offset = offset
			entry.Kind = kind
			if len(parts) == 3 {
				entry.HasValue = true
				entry.Value = parts[2]
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// ParseEntryValue parses a SelectorEntry's textual value per its Kind, using
// atoi/atof semantics (spec §4.2): malformed input parses as zero, matching
// the original's C-library atoi/atof fallback behaviour rather than failing
// the whole selector.
func ParseEntryValue(e SelectorEntry) float64 {
	switch e.Kind {
	case KindIEEEFloat:
		v, _ := strconv.ParseFloat(e.Value, 64)
		return v
	default:
		v, err := strconv.ParseInt(strings.TrimSpace(e.Value), 10, 64)
		if err != nil {
			// atoi-style: take the longest valid leading numeric prefix.
			trimmed := strings.TrimSpace(e.Value)
			end := 0
			for end < len(trimmed) && ((end == 0 && (trimmed[end] == '-' || trimmed[end] == '+')) || (trimmed[end] >= '0' && trimmed[end] <= '9')) {
				end++
			}
			v, _ = strconv.ParseInt(trimmed[:end], 10, 64)
		}
		return float64(v)
	}
}
