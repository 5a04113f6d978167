// Package fieldspec describes the location and shape of the fields of a
// point record type.
//
// A Layout is an ordered, immutable list of field descriptors (byte
// offset, element count, scalar width) that drives the field-enumeration
// projection strategy: the same traversal order is used to size the
// vector and to copy it, so the two can never disagree. Layouts can be
// hand-authored with New, derived from a struct type with Of, and
// registered per record type for lookup by consumers.
package fieldspec

import (
	"fmt"
	"reflect"
	"slices"
	"unsafe"
)

const floatWidth = unsafe.Sizeof(float32(0))

// Field describes one field of a record type: its byte offset within the
// record, its element count (1 for a scalar, N for an N-element array)
// and the width of one scalar element.
type Field struct {
	Name   string
	Offset uintptr
	Count  int
	Width  uintptr
}

// Layout is an immutable, ordered list of field descriptors. The zero
// value is an empty layout.
type Layout struct {
	fields []Field
	total  int
}

// New builds a layout from hand-authored field descriptors. Fields must
// be float32-typed, have positive element counts, and appear in
// ascending, non-overlapping offset order.
func New(fields ...Field) (Layout, error) {
	var end uintptr
	total := 0
	for i, f := range fields {
		if f.Count < 1 {
			return Layout{}, fmt.Errorf("field %q: non-positive count %d", f.Name, f.Count)
		}
		if f.Width != floatWidth {
			return Layout{}, fmt.Errorf("field %q: unsupported width %d, want %d", f.Name, f.Width, floatWidth)
		}
		if i > 0 && f.Offset < end {
			return Layout{}, fmt.Errorf("field %q: offset %d overlaps previous field ending at %d", f.Name, f.Offset, end)
		}
		end = f.Offset + uintptr(f.Count)*f.Width
		total += f.Count
	}

	return Layout{fields: slices.Clone(fields), total: total}, nil
}

// Of derives the layout of struct type P via reflection, in field
// declaration order: one descriptor per exported float32 or [N]float32
// field. Unexported fields are skipped, which keeps alignment padding
// fields out of the layout. Any other exported field type is an error.
//
// Derivation walks the type once; callers are expected to do this at
// setup time and reuse the layout.
func Of[P any]() (Layout, error) {
	t := reflect.TypeFor[P]()
	if t.Kind() != reflect.Struct {
		return Layout{}, fmt.Errorf("%s is not a struct type", t)
	}

	var fields []Field
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		switch f.Type.Kind() {
		case reflect.Float32:
			fields = append(fields, Field{Name: f.Name, Offset: f.Offset, Count: 1, Width: floatWidth})
		case reflect.Array:
			if f.Type.Elem().Kind() != reflect.Float32 {
				return Layout{}, fmt.Errorf("field %s.%s: array of %s, want float32", t, f.Name, f.Type.Elem())
			}
			fields = append(fields, Field{Name: f.Name, Offset: f.Offset, Count: f.Type.Len(), Width: floatWidth})
		default:
			return Layout{}, fmt.Errorf("field %s.%s: unsupported type %s", t, f.Name, f.Type)
		}
	}

	return New(fields...)
}

// Fields returns a copy of the field descriptors, in the deterministic
// layout order. Repeated calls always enumerate the same order.
func (l Layout) Fields() []Field {
	return slices.Clone(l.fields)
}

// Len returns the number of field descriptors.
func (l Layout) Len() int {
	return len(l.fields)
}

// TotalCount returns the sum of the per-field element counts, i.e. the
// dimension count of a vector enumerated from this layout.
func (l Layout) TotalCount() int {
	return l.total
}

// SizeBytes returns the end offset of the last field, a lower bound on
// the size of a record the layout applies to.
func (l Layout) SizeBytes() uintptr {
	if len(l.fields) == 0 {
		return 0
	}
	last := l.fields[len(l.fields)-1]
	return last.Offset + uintptr(last.Count)*last.Width
}
