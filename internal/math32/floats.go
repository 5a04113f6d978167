// Package math32 provides float32 helpers for projected vectors.
// This is an internal package - external users should use the pointrep package.
package math32

import "math"

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AllFinite reports whether every element of a is finite.
func AllFinite(a []float32) bool {
	for _, v := range a {
		if !IsFinite(v) {
			return false
		}
	}

	return true
}

// MulInPlace multiplies a element-wise by b.
// Assumes len(b) >= len(a) (caller's responsibility).
func MulInPlace(a, b []float32) {
	for i := range a {
		a[i] *= b[i]
	}
}
