package pointrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointrep/fieldspec"
	"github.com/hupe1980/pointrep/point"
)

type scalarThenArray struct {
	Scalar float32
	Values [32]float32
}

func TestFeatureScalarThenArray(t *testing.T) {
	layout, err := fieldspec.Of[scalarThenArray]()
	require.NoError(t, err)

	rep, err := NewFeature[scalarThenArray](layout)
	require.NoError(t, err)
	require.Equal(t, 33, rep.NumberOfDimensions())

	p := scalarThenArray{Scalar: 99}
	for i := range p.Values {
		p.Values[i] = float32(i + 1)
	}

	out := make([]float32, 33)
	rep.CopyToFloatSlice(p, out)

	assert.Equal(t, float32(99), out[0])
	for i := range p.Values {
		assert.Equal(t, float32(i+1), out[i+1])
	}
}

func TestFeatureDescriptorDimensions(t *testing.T) {
	t.Run("FPFHSignature33", func(t *testing.T) {
		rep, err := NewFeatureFor[point.FPFHSignature33]()
		require.NoError(t, err)
		assert.Equal(t, 33, rep.NumberOfDimensions())
	})

	t.Run("PFHSignature125", func(t *testing.T) {
		rep, err := NewFeatureFor[point.PFHSignature125]()
		require.NoError(t, err)
		assert.Equal(t, 125, rep.NumberOfDimensions())
	})

	t.Run("VFHSignature308", func(t *testing.T) {
		rep, err := NewFeatureFor[point.VFHSignature308]()
		require.NoError(t, err)
		assert.Equal(t, 308, rep.NumberOfDimensions())
	})

	t.Run("PPFSignature", func(t *testing.T) {
		rep, err := NewFeatureFor[point.PPFSignature]()
		require.NoError(t, err)
		assert.Equal(t, 5, rep.NumberOfDimensions())
	})

	t.Run("NormalBasedSignature12", func(t *testing.T) {
		rep, err := NewFeatureFor[point.NormalBasedSignature12]()
		require.NoError(t, err)
		assert.Equal(t, 12, rep.NumberOfDimensions())
	})
}

func TestFeatureFieldOrder(t *testing.T) {
	rep, err := NewFeatureFor[point.PPFSignature]()
	require.NoError(t, err)

	p := point.PPFSignature{F1: 1, F2: 2, F3: 3, F4: 4, AlphaM: 5}
	out := make([]float32, 5)
	rep.CopyToFloatSlice(p, out)

	assert.Equal(t, []float32{1, 2, 3, 4, 5}, out)
}

func TestFeatureHistogramCopy(t *testing.T) {
	rep, err := NewFeatureFor[point.FPFHSignature33]()
	require.NoError(t, err)

	var p point.FPFHSignature33
	for i := range p.Histogram {
		p.Histogram[i] = float32(i) * 0.5
	}

	out := make([]float32, 33)
	rep.CopyToFloatSlice(p, out)
	assert.Equal(t, p.Histogram[:], out)
}

func TestFeatureConstructionErrors(t *testing.T) {
	t.Run("empty layout", func(t *testing.T) {
		_, err := NewFeature[point.FPFHSignature33](fieldspec.Layout{})
		var layoutErr *ErrLayout
		require.ErrorAs(t, err, &layoutErr)
	})

	t.Run("layout exceeds record", func(t *testing.T) {
		// A 125-bin layout cannot apply to a 33-bin record.
		layout, err := fieldspec.Of[point.PFHSignature125]()
		require.NoError(t, err)

		_, err = NewFeature[point.FPFHSignature33](layout)
		var boundsErr *ErrFieldBounds
		require.ErrorAs(t, err, &boundsErr)
	})

	t.Run("no registered layout", func(t *testing.T) {
		_, err := NewFeatureFor[vec5]()
		require.ErrorIs(t, err, ErrNoLayout)
	})
}

func TestFeatureSizingAndCopyAgree(t *testing.T) {
	// The dimension count and the copied slot count derive from one
	// layout traversal; every registered descriptor must fill exactly
	// its dimension count.
	rep, err := NewFeatureFor[point.VFHSignature308]()
	require.NoError(t, err)

	sentinel := float32(-12345)
	out := make([]float32, rep.NumberOfDimensions()+1)
	out[rep.NumberOfDimensions()] = sentinel

	var p point.VFHSignature308
	for i := range p.Histogram {
		p.Histogram[i] = 1
	}
	rep.CopyToFloatSlice(p, out)

	for i := range rep.NumberOfDimensions() {
		require.Equal(t, float32(1), out[i])
	}
	assert.Equal(t, sentinel, out[rep.NumberOfDimensions()])
}
