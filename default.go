package pointrep

import (
	"reflect"
	"unsafe"

	"github.com/hupe1980/pointrep/fieldspec"
	"github.com/hupe1980/pointrep/point"
)

// maxDefaultDimensions caps the raw-layout default: the first three
// floats of an unknown record are almost always x, y, z.
const maxDefaultDimensions = 3

// NewDefault returns the default representation for P.
//
// Record types implementing point.Coordinates copy their three spatial
// axes through the accessor; any further fields (intensity, normal,
// curvature) are deliberately excluded from the vector. Use NewCustom to
// opt back in.
//
// Any other record type is treated as a packed sequence of float32
// values: the dimension count is sizeof(P)/4 capped at 3, and the
// leading slots are read directly from the record's memory image. The
// packed-float precondition is verified once via reflection; a type that
// does not satisfy it fails construction with *ErrLayout.
func NewDefault[P any]() (*Representation[P], error) {
	var zero P
	if _, ok := any(zero).(point.Coordinates); ok {
		return newRepresentation[P](coordStrategy[P]{}), nil
	}

	t := reflect.TypeFor[P]()
	dims := int(t.Size() / floatSize)
	if dims > maxDefaultDimensions {
		dims = maxDefaultDimensions
	}
	if dims == 0 {
		return nil, &ErrLayout{Type: t.String(), Reason: "record smaller than one float32"}
	}
	if err := checkFloatSlots(t, dims); err != nil {
		return nil, &ErrLayout{Type: t.String(), Reason: "leading slots are not packed float32", cause: err}
	}

	return newRepresentation[P](rawStrategy[P]{dims: dims}), nil
}

// NewAuto returns the registered default representation for P: the
// field-enumeration strategy when a fieldspec layout is registered for P
// (the descriptor types in the point package register theirs at init),
// the raw-layout default otherwise.
func NewAuto[P any]() (*Representation[P], error) {
	if layout, ok := fieldspec.Lookup[P](); ok {
		return NewFeature[P](layout)
	}
	return NewDefault[P]()
}

// rawStrategy reads dims float32 slots from the record's memory image,
// starting at slot start. The layout precondition is checked at
// construction, never per call.
type rawStrategy[P any] struct {
	dims  int
	start int
}

func (s rawStrategy[P]) Dimensions() int { return s.dims }

func (s rawStrategy[P]) CopyToFloatSlice(p P, out []float32) {
	src := unsafe.Slice((*float32)(unsafe.Pointer(&p)), s.start+s.dims)
	copy(out[:s.dims], src[s.start:])
}

// coordStrategy copies the three spatial axes through the
// point.Coordinates accessor. The assertion is guaranteed to succeed:
// NewDefault only selects this strategy after checking the type.
type coordStrategy[P any] struct{}

func (coordStrategy[P]) Dimensions() int { return 3 }

func (coordStrategy[P]) CopyToFloatSlice(p P, out []float32) {
	x, y, z := any(p).(point.Coordinates).Coordinates()
	out[0] = x
	out[1] = y
	out[2] = z
}
