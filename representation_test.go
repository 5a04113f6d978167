package pointrep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointrep/point"
)

func TestVectorizeWithoutRescale(t *testing.T) {
	rep, err := NewDefault[point.XYZ]()
	require.NoError(t, err)

	p := point.XYZ{X: -1.5, Y: 1e30, Z: 0.25}

	copied := make([]float32, 3)
	rep.CopyToFloatSlice(p, copied)

	vectorized := make([]float32, 3)
	rep.Vectorize(p, vectorized)

	assert.Equal(t, copied, vectorized)
}

func TestVectorizeWithRescale(t *testing.T) {
	rep, err := NewDefault[point.XYZ]()
	require.NoError(t, err)
	require.NoError(t, rep.SetRescaleValues([]float32{2.0, 0.5, 1.0}))

	out := make([]float32, 3)
	rep.Vectorize(point.XYZ{X: 1.0, Y: 4.0, Z: 3.0}, out)

	assert.Equal(t, []float32{2.0, 2.0, 3.0}, out)
}

func TestVectorizeFunc(t *testing.T) {
	rep, err := NewDefault[point.XYZ]()
	require.NoError(t, err)
	require.NoError(t, rep.SetRescaleValues([]float32{2.0, 0.5, 1.0}))

	got := map[int]float32{}
	rep.VectorizeFunc(point.XYZ{X: 1.0, Y: 4.0, Z: 3.0}, func(i int, v float32) {
		got[i] = v
	})

	assert.Equal(t, map[int]float32{0: 2.0, 1: 2.0, 2: 3.0}, got)
}

func TestSetRescaleValues(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		rep, err := NewDefault[point.XYZ]()
		require.NoError(t, err)

		err = rep.SetRescaleValues([]float32{1, 2})
		var lenErr *ErrRescaleLength
		require.ErrorAs(t, err, &lenErr)
		assert.Equal(t, 3, lenErr.Expected)
		assert.Equal(t, 2, lenErr.Actual)

		// Factors stay unconfigured after the rejected call.
		assert.Nil(t, rep.RescaleValues())
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		rep, err := NewDefault[point.XYZ]()
		require.NoError(t, err)

		alpha := []float32{2, 2, 2}
		require.NoError(t, rep.SetRescaleValues(alpha))
		alpha[0] = 100

		out := make([]float32, 3)
		rep.Vectorize(point.XYZ{X: 1, Y: 1, Z: 1}, out)
		assert.Equal(t, []float32{2, 2, 2}, out)
	})
}

func TestClone(t *testing.T) {
	rep, err := NewDefault[point.XYZ]()
	require.NoError(t, err)
	require.NoError(t, rep.SetRescaleValues([]float32{2, 2, 2}))

	clone := rep.Clone()
	require.NoError(t, clone.SetRescaleValues([]float32{5, 5, 5}))

	out := make([]float32, 3)
	rep.Vectorize(point.XYZ{X: 1, Y: 1, Z: 1}, out)
	assert.Equal(t, []float32{2, 2, 2}, out)

	clone.Vectorize(point.XYZ{X: 1, Y: 1, Z: 1}, out)
	assert.Equal(t, []float32{5, 5, 5}, out)
}

func TestShortOutputPanics(t *testing.T) {
	rep, err := NewDefault[point.XYZ]()
	require.NoError(t, err)

	short := make([]float32, 2)
	assert.Panics(t, func() { rep.CopyToFloatSlice(point.XYZ{}, short) })
	assert.Panics(t, func() { rep.Vectorize(point.XYZ{}, short) })
}

func TestIsValid(t *testing.T) {
	rep, err := NewDefault[point.XYZ]()
	require.NoError(t, err)

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name  string
		p     point.XYZ
		valid bool
	}{
		{"AllZero", point.XYZ{}, true},
		{"Finite", point.XYZ{X: 1, Y: -2, Z: 3}, true},
		{"LargeFinite", point.XYZ{X: -3.4e38, Y: 3.4e38, Z: 1e-38}, true},
		{"NaNX", point.XYZ{X: nan, Y: 2, Z: 3}, false},
		{"NaNZ", point.XYZ{X: 1, Y: 2, Z: nan}, false},
		{"PosInf", point.XYZ{X: 1, Y: inf, Z: 3}, false},
		{"NegInf", point.XYZ{X: float32(math.Inf(-1)), Y: 2, Z: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, rep.IsValid(tt.p))
		})
	}
}

// Dimensions outside the projected window never affect validity.
func TestIsValidIgnoresDroppedFields(t *testing.T) {
	rep, err := NewDefault[point.XYZI]()
	require.NoError(t, err)

	p := point.XYZI{X: 1, Y: 2, Z: 3, Intensity: float32(math.NaN())}
	assert.True(t, rep.IsValid(p))
}

func TestIdempotence(t *testing.T) {
	rep, err := NewDefault[point.Normal]()
	require.NoError(t, err)
	require.NoError(t, rep.SetRescaleValues([]float32{1.5, 0.25, 3}))

	p := point.Normal{X: 0.1, Y: -0.2, Z: 0.3, NX: 1, NY: 0, NZ: 0, Curvature: 0.7}

	first := make([]float32, 3)
	rep.Vectorize(p, first)
	for range 100 {
		again := make([]float32, 3)
		rep.Vectorize(p, again)
		require.Equal(t, first, again)
	}
}
