package visibility

import (
	"math"

	"github.com/achilleasa/visualmesh/types"
)

type radialOracle struct {
	cosHalfFov Scalar
	halfFov    Scalar
	cam        vec3
	camInc     Scalar
}

func newRadialOracle(lens Lens, hoc types.Mat4) *radialOracle {
	roc := rocRows(hoc)
	cam := camForward(roc)
	return &radialOracle{
		cosHalfFov: math.Cos(lens.Fov * 0.5),
		halfFov:    lens.Fov * 0.5,
		cam:        cam,
		camInc:     math.Acos(-cam[2]),
	}
}

// ThetaLimits implements Oracle by intersecting the view cone at phi with
// the circular edge of the radial lens's field of view. The lens's edge is
// the intersection of a unit sphere, the cone at phi, and the plane of the
// field-of-view circle; the solve assumes the camera vector lies in the
// x/z plane, so the camera vector is first rotated into that plane and the
// result rotated back.
func (o *radialOracle) ThetaLimits(phi Scalar) ([][2]Scalar, error) {
	upper := phi > math.Pi/2

	if (upper && o.halfFov-(math.Pi-o.camInc) > math.Pi-phi) ||
		(!upper && o.halfFov-o.camInc > phi) {
		return [][2]Scalar{{0, 2 * math.Pi}}, nil
	}
	if (upper && o.halfFov+(math.Pi-o.camInc) < math.Pi-phi) ||
		(!upper && o.halfFov+o.camInc < phi) {
		return nil, nil
	}

	offset := math.Atan2(o.cam[1], o.cam[0])
	sinOffset, cosOffset := math.Sin(offset), math.Cos(offset)

	rx := o.cam[0]*cosOffset + o.cam[1]*sinOffset

	z := -math.Cos(phi)
	a := 1 - z*z
	x := (o.cosHalfFov - o.cam[2]*z) / rx

	yDisc := a - x*x
	if yDisc < 0 {
		return nil, nil
	}
	y := math.Sqrt(yDisc)

	t1 := offset + math.Atan2(-y, x)
	t2 := offset + math.Atan2(y, x)

	return [][2]Scalar{{normalizeAngle(t1), normalizeAngle(t2)}}, nil
}
