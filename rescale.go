package pointrep

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/pointrep/internal/math32"
)

// UnitVarianceRescale derives per-dimension rescale factors of 1/stddev
// from the given samples, so that every dimension contributes comparably
// to a Euclidean distance. Records with non-finite projections are
// skipped; dimensions with zero variance get factor 1.
//
// The factors are returned, not applied; pass them to SetRescaleValues.
// Returns ErrTooFewSamples when fewer than two finite samples remain.
func UnitVarianceRescale[P any](r *Representation[P], samples []P) ([]float32, error) {
	cols, err := sampleColumns(r, samples)
	if err != nil {
		return nil, err
	}

	alpha := make([]float32, r.dims)
	for d := range alpha {
		sd := stat.StdDev(cols[d], nil)
		if sd == 0 || math.IsNaN(sd) {
			alpha[d] = 1
			continue
		}
		alpha[d] = float32(1 / sd)
	}
	return alpha, nil
}

// RangeRescale derives per-dimension rescale factors of 1/(max-min) from
// the given samples. Records with non-finite projections are skipped;
// dimensions with zero range get factor 1.
//
// The factors are returned, not applied; pass them to SetRescaleValues.
// Returns ErrTooFewSamples when fewer than two finite samples remain.
func RangeRescale[P any](r *Representation[P], samples []P) ([]float32, error) {
	cols, err := sampleColumns(r, samples)
	if err != nil {
		return nil, err
	}

	alpha := make([]float32, r.dims)
	for d := range alpha {
		span := floats.Max(cols[d]) - floats.Min(cols[d])
		if span == 0 {
			alpha[d] = 1
			continue
		}
		alpha[d] = float32(1 / span)
	}
	return alpha, nil
}

// sampleColumns projects the finite samples into per-dimension columns.
func sampleColumns[P any](r *Representation[P], samples []P) ([][]float64, error) {
	cols := make([][]float64, r.dims)
	tmp := make([]float32, r.dims)
	for _, p := range samples {
		r.strategy.CopyToFloatSlice(p, tmp)
		if !math32.AllFinite(tmp) {
			continue
		}
		for d, v := range tmp {
			cols[d] = append(cols[d], float64(v))
		}
	}
	if len(cols) == 0 || len(cols[0]) < 2 {
		return nil, ErrTooFewSamples
	}
	return cols, nil
}
