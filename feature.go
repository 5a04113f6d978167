package pointrep

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/pointrep/fieldspec"
)

// NewFeature returns the field-enumeration representation for descriptor
// records of type P, driven by the given layout.
//
// The dimension count is the sum of the per-field element counts,
// computed once here. CopyToFloatSlice iterates the same layout in the
// same order, copying each scalar field and every element of each array
// field into successive output slots. Sizing and copying share one
// traversal order, so the two can never disagree.
//
// Every field must be float32-typed and lie within P; otherwise
// construction fails with *ErrLayout or *ErrFieldBounds.
func NewFeature[P any](layout fieldspec.Layout) (*Representation[P], error) {
	t := reflect.TypeFor[P]()
	fields := layout.Fields()
	if len(fields) == 0 {
		return nil, &ErrLayout{Type: t.String(), Reason: "empty field layout"}
	}

	size := t.Size()
	dims := 0
	for _, f := range fields {
		if f.Width != floatSize {
			return nil, &ErrLayout{Type: t.String(), Reason: fmt.Sprintf("field %q has non-float32 width %d", f.Name, f.Width)}
		}
		if f.Count < 1 {
			return nil, &ErrLayout{Type: t.String(), Reason: fmt.Sprintf("field %q has non-positive count %d", f.Name, f.Count)}
		}
		if f.Offset+uintptr(f.Count)*f.Width > size {
			return nil, &ErrFieldBounds{Field: f.Name, Offset: f.Offset, Count: f.Count, Size: size}
		}
		dims += f.Count
	}

	return newRepresentation[P](&featureStrategy[P]{fields: fields, dims: dims}), nil
}

// NewFeatureFor returns the field-enumeration representation for P using
// the layout registered in the fieldspec registry. Returns ErrNoLayout
// when P has none.
func NewFeatureFor[P any]() (*Representation[P], error) {
	layout, ok := fieldspec.Lookup[P]()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoLayout, reflect.TypeFor[P]())
	}
	return NewFeature[P](layout)
}

type featureStrategy[P any] struct {
	fields []fieldspec.Field
	dims   int
}

func (s *featureStrategy[P]) Dimensions() int { return s.dims }

func (s *featureStrategy[P]) CopyToFloatSlice(p P, out []float32) {
	base := unsafe.Pointer(&p)
	idx := 0
	for _, f := range s.fields {
		src := unsafe.Slice((*float32)(unsafe.Add(base, f.Offset)), f.Count)
		idx += copy(out[idx:idx+f.Count], src)
	}
}
