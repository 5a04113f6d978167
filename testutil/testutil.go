// Package testutil provides deterministic test data generation for
// pointrep tests and benchmarks.
package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/pointrep/point"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test data only
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// UniformXYZ generates num random coordinates with axes in [0, 1).
func (r *RNG) UniformXYZ(num int) []point.XYZ {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]point.XYZ, num)
	for i := range pts {
		pts[i] = point.XYZ{
			X: r.rand.Float32(),
			Y: r.rand.Float32(),
			Z: r.rand.Float32(),
		}
	}
	return pts
}

// UniformFPFH generates num random FPFH descriptors with bins in [0, 1).
func (r *RNG) UniformFPFH(num int) []point.FPFHSignature33 {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]point.FPFHSignature33, num)
	for i := range pts {
		for j := range pts[i].Histogram {
			pts[i].Histogram[j] = r.rand.Float32()
		}
	}
	return pts
}

// CorruptXYZ sets one random axis of n distinct points to NaN and
// returns the corrupted indices in ascending order of selection.
// Panics if n exceeds len(pts).
func (r *RNG) CorruptXYZ(pts []point.XYZ, n int) []int {
	if n > len(pts) {
		panic("testutil: cannot corrupt more points than provided")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	nan := float32(math.NaN())
	corrupted := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for len(corrupted) < n {
		i := r.rand.Intn(len(pts))
		if seen[i] {
			continue
		}
		seen[i] = true
		switch r.rand.Intn(3) {
		case 0:
			pts[i].X = nan
		case 1:
			pts[i].Y = nan
		default:
			pts[i].Z = nan
		}
		corrupted = append(corrupted, i)
	}
	return corrupted
}
