// Package visibility answers, for a camera pose and lens, which rows and
// index ranges of a mesh fall inside the camera's field of view. It is the
// bridge between a Mesh (built once per height) and a particular frame's
// pose and lens parameters (which change every frame).
package visibility

import (
	"github.com/achilleasa/visualmesh/geometry"
	"github.com/achilleasa/visualmesh/types"
)

// Scalar is an alias of geometry.Scalar so callers don't need to import
// both packages for a single type.
type Scalar = geometry.Scalar

// Projection distinguishes the radial lens's inverse mapping, which the
// oracle doesn't need (the frustum cone's shape is the same regardless of
// projection) but the projection engine does.
type Projection int

const (
	Equidistant Projection = iota
	Equisolid
	Rectilinear
)

// Lens describes a camera's optics. Exactly one of Equirectangular or
// Radial fields is meaningful, selected by Kind. FocalLengthPixels and
// Dimensions/Centre are shared by both families: the oracle only reads
// the fields it needs, but the projection engine reads FocalLengthPixels
// for both (as a rectangular-frustum focal length for Equirectangular, or
// as the fisheye focal length for Radial).
type Lens struct {
	Kind Kind

	// Equirectangular fields.
	FovY, FovZ Scalar

	// Radial fields.
	Fov        Scalar
	Projection Projection

	FocalLengthPixels Scalar
	Dimensions        [2]int
	Centre            types.Vec2
}

type Kind int

const (
	Equirectangular Kind = iota
	Radial
)

// Oracle answers visibility queries for one camera pose and lens,
// independent of any particular mesh.
type Oracle interface {
	// ThetaLimits returns the set of [begin,end) azimuthal intervals
	// (each in [0, 2pi)) visible at the given polar angle. An empty
	// slice means nothing at that phi is visible.
	ThetaLimits(phi Scalar) ([][2]Scalar, error)
}

// NewOracle builds the Oracle for the given pose and lens. Hoc is the
// camera-to-observation-plane transform (H_oc): its 3x3 block is the
// camera's orientation and its translation's z component is the camera's
// height above the ground.
func NewOracle(lens Lens, hoc types.Mat4) (Oracle, error) {
	switch lens.Kind {
	case Equirectangular:
		return newEquirectOracle(lens, hoc), nil
	case Radial:
		return newRadialOracle(lens, hoc), nil
	default:
		return nil, errUnknownLens
	}
}
