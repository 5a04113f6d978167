package pointrep

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLayout is returned when no field layout is registered for a
	// record type.
	ErrNoLayout = errors.New("no field layout registered for type")

	// ErrTooFewSamples is returned when a rescale helper has fewer than
	// two finite samples to work with.
	ErrTooFewSamples = errors.New("not enough finite samples to derive rescale factors")
)

// ErrRescaleLength indicates a rescale sequence whose length does not
// match the representation's dimension count.
type ErrRescaleLength struct {
	Expected int
	Actual   int
}

func (e *ErrRescaleLength) Error() string {
	return fmt.Sprintf("rescale length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrLayout indicates a record type whose memory layout cannot back the
// requested strategy.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLayout struct {
	Type   string
	Reason string
	cause  error
}

func (e *ErrLayout) Error() string {
	return fmt.Sprintf("unsupported record layout for %s: %s", e.Type, e.Reason)
}

func (e *ErrLayout) Unwrap() error { return e.cause }

// ErrFieldBounds indicates a field descriptor that does not fit inside
// the record type it is applied to.
type ErrFieldBounds struct {
	Field  string
	Offset uintptr
	Count  int
	Size   uintptr
}

func (e *ErrFieldBounds) Error() string {
	return fmt.Sprintf("field %q (offset %d, count %d) exceeds record size %d", e.Field, e.Offset, e.Count, e.Size)
}

// ErrBufferSize is the panic value raised when a caller passes an output
// slice shorter than the representation's dimension count. Reading or
// writing past caller buffers is the one contract violation that is never
// tolerated, even on the hot path.
type ErrBufferSize struct {
	Need int
	Got  int
}

func (e *ErrBufferSize) Error() string {
	return fmt.Sprintf("output slice too short: need %d, got %d", e.Need, e.Got)
}
