package segy

import (
	"reflect"

	"github.com/samber/lo"
	stgpsr "github.com/yuin/stagparser"
)

// Kind enumerates the scalar encodings a registered header field may hold
// (spec §3, FieldRegistry).
type Kind int

const (
	KindShort Kind = iota
	KindInt
	KindIEEEFloat
	KindUShort
)

// Code returns the single-letter selector type code for a Kind (spec §4.2:
// T ∈ {S, I, F, U}).
func (k Kind) Code() byte {
	switch k {
	case KindShort:
		return 'S'
	case KindInt:
		return 'I'
	case KindIEEEFloat:
		return 'F'
	case KindUShort:
		return 'U'
	default:
		return 0
	}
}

// KindFromCode is the inverse of Kind.Code.
func KindFromCode(c byte) (Kind, bool) {
	switch c {
	case 'S':
		return KindShort, true
	case 'I':
		return KindInt, true
	case 'F':
		return KindIEEEFloat, true
	case 'U':
		return KindUShort, true
	default:
		return 0, false
	}
}

// Size returns the on-disk width in bytes of a scalar of this Kind.
func (k Kind) Size() int {
	switch k {
	case KindShort, KindUShort:
		return 2
	default:
		return 4
	}
}

// FieldDef is one entry of a field registry: a typed byte offset within a
// fixed-size header, optionally addressable by a symbolic name. A field
// with an empty Name exists only in the original's numeric offset table and
// cannot be selected by the named form -- the trace-header schema carries
// several such trailing fields (the Reserved* entries in schema.go).
type FieldDef struct {
	Name   string
	Offset int
	Kind   Kind
}

// Registry is an immutable offset- and name-addressable table of header
// fields, built once at init time from a segy-tagged schema struct via
// stagparser, the same struct-tag-driven schema approach the teacher uses
// to build TileDB array schemas from tiledb-tagged structs.
type Registry struct {
	byName   map[string]FieldDef
	byOffset map[int]FieldDef
	ordered  []FieldDef
}

// LookupByName resolves a symbolic field name to its FieldDef.
func (r *Registry) LookupByName(name string) (FieldDef, bool) {
	fd, ok := r.byName[name]
	return fd, ok
}

// LookupByOffset resolves a byte offset to its FieldDef.
func (r *Registry) LookupByOffset(offset int) (FieldDef, bool) {
	fd, ok := r.byOffset[offset]
	return fd, ok
}

// Fields returns every registered field in declaration order.
func (r *Registry) Fields() []FieldDef {
	return r.ordered
}

// NameToOffset is the full name->offset map of every named field; unnamed
// fields are not included.
func (r *Registry) NameToOffset() map[string]int {
	out := make(map[string]int, len(r.byName))
	for name, fd := range r.byName {
		out[name] = fd.Offset
	}
	return out
}

// OffsetToName inverts NameToOffset with samber/lo, the same helper the
// teacher uses to build its RecordID->name lookup (decode.go's
// InvSubRecordNames).
func (r *Registry) OffsetToName() map[int]string {
	return lo.Invert(r.NameToOffset())
}

func buildRegistry(schema any) *Registry {
	r := &Registry{
		byName:   make(map[string]FieldDef),
		byOffset: make(map[int]FieldDef),
	}

	defs, err := stgpsr.ParseStruct(schema, "segy")
	if err != nil {
		panic(err)
	}

	t := reflect.TypeOf(schema).Elem()
	for i := 0; i < t.NumField(); i++ {
		fieldName := t.Field(i).Name

		byKey := make(map[string]stgpsr.Definition)
		for _, d := range defs[fieldName] {
			byKey[d.Name()] = d
		}

		offsetDef, ok := byKey["offset"]
		if !ok {
			panic("segy: schema field " + fieldName + " is missing an offset tag")
		}
		offsetAttr, _ := offsetDef.Attribute("offset")
		offset, ok := offsetAttr.(int64)
		if !ok {
			panic("segy: schema field " + fieldName + " has a non-numeric offset")
		}

		typeDef, ok := byKey["type"]
		if !ok {
			panic("segy: schema field " + fieldName + " is missing a type tag")
		}
		typeAttr, _ := typeDef.Attribute("type")
		typeStr, ok := typeAttr.(string)
		if !ok || len(typeStr) == 0 {
			panic("segy: schema field " + fieldName + " has a malformed type tag")
		}
		kind, ok := KindFromCode(typeStr[0])
		if !ok {
			panic("segy: schema field " + fieldName + " has an unknown type code")
		}

		var name string
		if nameDef, ok := byKey["name"]; ok {
			if nameAttr, _ := nameDef.Attribute("name"); nameAttr != nil {
				name, _ = nameAttr.(string)
			}
		}

		fd := FieldDef{Name: name, Offset: int(offset), Kind: kind}
		if name != "" {
			r.byName[name] = fd
		}
		r.byOffset[int(offset)] = fd
		r.ordered = append(r.ordered, fd)
	}

	return r
}

// ReelRegistry and TraceRegistry are the two static, immutable registries
// described by spec §3/§4.2 and §6, built from the schema structs in
// schema.go.
var (
	ReelRegistry  = buildRegistry(&reelHeaderSchema{})
	TraceRegistry = buildRegistry(&traceHeaderSchema{})
)
