package pointrep

import (
	"reflect"
)

type customOptions struct {
	startDim int
	maxDim   int
}

// CustomOption configures NewCustom.
type CustomOption func(*customOptions)

// WithStartDim sets the first float32 slot of the record to include in
// the vector. Defaults to 0.
func WithStartDim(n int) CustomOption {
	return func(o *customOptions) {
		o.startDim = n
	}
}

// WithMaxDim sets the maximum number of dimensions to include. Defaults
// to 3.
func WithMaxDim(n int) CustomOption {
	return func(o *customOptions) {
		o.maxDim = n
	}
}

// NewCustom returns a representation selecting an offset/length window of
// P's raw float32 layout. With no options it reproduces the raw-layout
// default (start 0, at most 3 dimensions); a consumer can widen the
// window to include fields the default drops, e.g.
//
//	rep, err := pointrep.NewCustom[point.XYZI](pointrep.WithMaxDim(4))
//
// to keep the intensity field. The dimension count is
// min(maxDim, sizeof(P)/4 - startDim). A window that selects no slots,
// or a record whose selected slots are not packed float32, fails
// construction with *ErrLayout.
func NewCustom[P any](optFns ...CustomOption) (*Representation[P], error) {
	opts := customOptions{
		startDim: 0,
		maxDim:   maxDefaultDimensions,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	t := reflect.TypeFor[P]()
	if opts.startDim < 0 {
		return nil, &ErrLayout{Type: t.String(), Reason: "negative start dimension"}
	}
	if opts.maxDim <= 0 {
		return nil, &ErrLayout{Type: t.String(), Reason: "non-positive max dimension"}
	}

	dims := int(t.Size()/floatSize) - opts.startDim
	if dims > opts.maxDim {
		dims = opts.maxDim
	}
	if dims <= 0 {
		return nil, &ErrLayout{Type: t.String(), Reason: "start dimension beyond record"}
	}
	if err := checkFloatSlots(t, opts.startDim+dims); err != nil {
		return nil, &ErrLayout{Type: t.String(), Reason: "selected slots are not packed float32", cause: err}
	}

	return newRepresentation[P](rawStrategy[P]{dims: dims, start: opts.startDim}), nil
}
