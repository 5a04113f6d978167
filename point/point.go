// Package point declares the standard point and feature descriptor
// record types projected by pointrep.
//
// All types are fixed-layout aggregates of float32 scalars and arrays,
// matching the shapes produced by common point cloud pipelines. The
// descriptor types register their field layouts with fieldspec at init,
// so pointrep.NewAuto and pointrep.NewFeatureFor find them without any
// setup.
package point

import (
	"fmt"

	"github.com/hupe1980/pointrep/fieldspec"
)

// Coordinates is implemented by record types whose first three projected
// dimensions are the spatial x, y, z axes. The raw-layout default
// strategy copies through this accessor instead of reading record
// memory.
type Coordinates interface {
	Coordinates() (x, y, z float32)
}

// XYZ is a plain 3D coordinate.
type XYZ struct {
	X, Y, Z float32
}

func (p XYZ) Coordinates() (float32, float32, float32) { return p.X, p.Y, p.Z }

// XYZI is a 3D coordinate with a sensor intensity reading. Intensity is
// not part of the default vectorization: it is not commensurable with
// spatial distance unless a consumer opts in via a custom
// representation.
type XYZI struct {
	X, Y, Z   float32
	Intensity float32
}

func (p XYZI) Coordinates() (float32, float32, float32) { return p.X, p.Y, p.Z }

// Normal is a 3D coordinate with a surface normal and curvature
// estimate. Only the positional axes are part of the default
// vectorization.
type Normal struct {
	X, Y, Z    float32
	NX, NY, NZ float32
	Curvature  float32
}

func (p Normal) Coordinates() (float32, float32, float32) { return p.X, p.Y, p.Z }

// FPFHSignature33 is a Fast Point Feature Histogram descriptor.
type FPFHSignature33 struct {
	Histogram [33]float32
}

// PFHSignature125 is a Point Feature Histogram descriptor.
type PFHSignature125 struct {
	Histogram [125]float32
}

// VFHSignature308 is a Viewpoint Feature Histogram descriptor.
type VFHSignature308 struct {
	Histogram [308]float32
}

// PPFSignature is a Point Pair Feature descriptor.
type PPFSignature struct {
	F1, F2, F3, F4 float32
	AlphaM         float32
}

// NormalBasedSignature12 is a normal-based signature descriptor.
type NormalBasedSignature12 struct {
	Values [12]float32
}

func init() {
	registerLayout[FPFHSignature33]()
	registerLayout[PFHSignature125]()
	registerLayout[VFHSignature308]()
	registerLayout[PPFSignature]()
	registerLayout[NormalBasedSignature12]()
}

func registerLayout[P any]() {
	l, err := fieldspec.Of[P]()
	if err != nil {
		panic(fmt.Sprintf("point: deriving layout: %v", err))
	}
	fieldspec.Register[P](l)
}
