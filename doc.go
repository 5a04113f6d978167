// Package pointrep projects typed point records into uniform float32
// vectors for distance-based algorithms.
//
// Nearest-neighbor search, clustering and registration all want the same
// thing from a point: a fixed-length numeric vector they can index
// generically. Point types disagree wildly on layout (a plain 3D
// coordinate, a coordinate plus normal, a 33-bin feature histogram), so
// pointrep provides one contract ("how many dimensions, copy them into
// this slice") with a strategy decided once per record type and reused
// across millions of calls.
//
// # Strategies
//
// Three strategies cover the common cases:
//
//	// Raw-layout default: leading floats of the record, capped at 3.
//	// Coordinate types (point.XYZ, point.XYZI, point.Normal) copy their
//	// spatial axes explicitly; XYZI deliberately drops intensity.
//	rep, _ := pointrep.NewDefault[point.XYZ]()
//
//	// Field enumeration: every field of a descriptor record, driven by
//	// its registered fieldspec layout.
//	rep, _ := pointrep.NewFeatureFor[point.FPFHSignature33]()
//
//	// Custom sub-range: an offset/length window over the raw layout,
//	// e.g. to keep the intensity field the default drops.
//	rep, _ := pointrep.NewCustom[point.XYZI](pointrep.WithMaxDim(4))
//
// NewAuto picks the feature strategy for types with a registered layout
// and the raw default otherwise.
//
// # Validity and rescaling
//
// Projection never fails: a record with NaN or infinite fields still
// produces a vector. IsValid reports the condition so callers can skip
// degenerate records before they pollute an index:
//
//	if rep.IsValid(p) {
//	    rep.Vectorize(p, buf)
//	}
//
// Per-dimension rescale factors weight heterogeneous dimensions (meters
// vs. curvature) before Euclidean comparison. UnitVarianceRescale and
// RangeRescale derive factors from sample statistics.
//
// A Representation is configured once, then safe for unsynchronized
// concurrent reads.
package pointrep
