package pointrep

import (
	"slices"

	"github.com/hupe1980/pointrep/internal/math32"
)

// Strategy produces the raw projected vector for records of type P.
// A strategy is decided once per record type, is immutable after
// construction, and carries no per-record state.
//
// CopyToFloatSlice is the single operation a strategy must provide;
// validity checking and rescaling are derived from it by Representation
// and are never implemented per strategy.
type Strategy[P any] interface {
	// Dimensions returns the fixed number of projected dimensions.
	Dimensions() int

	// CopyToFloatSlice writes exactly Dimensions() values into out.
	// out is guaranteed by the caller to hold at least Dimensions()
	// elements.
	CopyToFloatSlice(p P, out []float32)
}

// Representation converts records of type P into float32 vectors.
//
// It wraps a Strategy with the derived operations (IsValid, Vectorize)
// and the optional per-dimension rescale factors. Construct one via
// NewDefault, NewFeature, NewCustom or NewAuto, optionally configure
// rescale factors, then use it read-only. After configuration a
// Representation is safe for unsynchronized concurrent reads.
type Representation[P any] struct {
	strategy Strategy[P]
	dims     int
	alpha    []float32
}

func newRepresentation[P any](s Strategy[P]) *Representation[P] {
	return &Representation[P]{
		strategy: s,
		dims:     s.Dimensions(),
	}
}

// NumberOfDimensions returns the fixed dimension count of the projected
// vector.
func (r *Representation[P]) NumberOfDimensions() int {
	return r.dims
}

// CopyToFloatSlice writes exactly NumberOfDimensions() values into out.
// It is a pure function of p and the representation's configuration.
// Panics with *ErrBufferSize if out is shorter than the dimension count.
func (r *Representation[P]) CopyToFloatSlice(p P, out []float32) {
	r.checkOut(out)
	r.strategy.CopyToFloatSlice(p, out[:r.dims])
}

// IsValid reports whether every projected value of p is finite (neither
// NaN nor infinite). Validity is advisory: projection itself never
// refuses a record, callers decide whether to skip invalid ones.
func (r *Representation[P]) IsValid(p P) bool {
	tmp := make([]float32, r.dims)
	r.strategy.CopyToFloatSlice(p, tmp)
	return math32.AllFinite(tmp)
}

// Vectorize writes the projected vector of p into out, multiplying each
// dimension by its rescale factor when factors are configured.
// Panics with *ErrBufferSize if out is shorter than the dimension count.
func (r *Representation[P]) Vectorize(p P, out []float32) {
	r.checkOut(out)
	out = out[:r.dims]
	r.strategy.CopyToFloatSlice(p, out)
	if len(r.alpha) != 0 {
		math32.MulInPlace(out, r.alpha)
	}
}

// VectorizeFunc is Vectorize for output containers that are not slices:
// set is called once per dimension, in index order, with the (rescaled)
// value for that dimension.
func (r *Representation[P]) VectorizeFunc(p P, set func(i int, v float32)) {
	tmp := make([]float32, r.dims)
	r.strategy.CopyToFloatSlice(p, tmp)
	if len(r.alpha) != 0 {
		math32.MulInPlace(tmp, r.alpha)
	}
	for i, v := range tmp {
		set(i, v)
	}
}

// SetRescaleValues replaces the per-dimension rescale factors with a copy
// of alpha. The length of alpha must equal NumberOfDimensions; a
// mismatch returns *ErrRescaleLength and leaves the factors unchanged.
//
// SetRescaleValues must not be called concurrently with reads on the same
// Representation (configure-then-publish).
func (r *Representation[P]) SetRescaleValues(alpha []float32) error {
	if len(alpha) != r.dims {
		return &ErrRescaleLength{Expected: r.dims, Actual: len(alpha)}
	}
	r.alpha = slices.Clone(alpha)
	return nil
}

// RescaleValues returns a copy of the configured rescale factors, or nil
// when rescaling is not configured.
func (r *Representation[P]) RescaleValues() []float32 {
	return slices.Clone(r.alpha)
}

// Clone returns an independently owned copy of the representation, so
// one algorithm can hold a private handle without entangling its
// lifetime with the object that configured it. The underlying strategy
// is immutable and shared.
func (r *Representation[P]) Clone() *Representation[P] {
	return &Representation[P]{
		strategy: r.strategy,
		dims:     r.dims,
		alpha:    slices.Clone(r.alpha),
	}
}

func (r *Representation[P]) checkOut(out []float32) {
	if len(out) < r.dims {
		panic(&ErrBufferSize{Need: r.dims, Got: len(out)})
	}
}
