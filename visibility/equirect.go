package visibility

import (
	"math"

	"github.com/achilleasa/visualmesh/types"
)

// eqEdgeConstants holds the per-edge precomputed coefficients used by the
// quadratic solve in ThetaLimits. They depend only on the camera pose and
// field of view, not on phi, so they're computed once per oracle.
type eqEdgeConstants struct {
	origin, dir vec3
	// c0, c1 are the c2-dependent and constant parts of the numerator.
	c0, c1 Scalar
	// c2, c3 are the c2-dependent and constant parts of the discriminant.
	c2, c3 Scalar
	// c4, c5 are the c2-dependent and constant parts of the denominator.
	c4, c5 Scalar
}

type equirectOracle struct {
	height Scalar
	camZ   Scalar
	edges  [4]vec3
	eq     [4]eqEdgeConstants
}

func newEquirectOracle(lens Lens, hoc types.Mat4) *equirectOracle {
	roc := rocRows(hoc)
	cam := camForward(roc)

	yExtent := math.Tan(lens.FovY * 0.5)
	zExtent := math.Tan(lens.FovZ * 0.5)

	// Corners of the frustum in camera space, labelled clockwise
	// starting top-left: T, U, V, W.
	cornersCam := [4]vec3{
		{1, +yExtent, +zExtent},
		{1, -yExtent, +zExtent},
		{1, -yExtent, -zExtent},
		{1, +yExtent, -zExtent},
	}

	var cornersObs [4]vec3
	for i, c := range cornersCam {
		cornersObs[i] = roc.mulVec(c)
	}

	col1, col2 := roc.col(1), roc.col(2)
	edgeDirs := [4]vec3{
		col1.scale(-2 * yExtent),
		col2.scale(-2 * zExtent),
		col1.scale(2 * yExtent),
		col2.scale(2 * zExtent),
	}

	o := &equirectOracle{height: cameraHeight(hoc), camZ: cam[2]}
	for i := 0; i < 4; i++ {
		o.edges[i] = cornersObs[i].cross(cornersObs[(i+1)%4])

		d, orig := edgeDirs[i], cornersObs[i]
		o.eq[i] = eqEdgeConstants{
			origin: orig,
			dir:    d,
			c0:     d[2] * orig[2],
			c1:     -d[1]*orig[1] - d[0]*orig[0],
			c2: d[0]*d[0]*orig[2]*orig[2] - 2*d[0]*d[2]*orig[0]*orig[2] +
				d[1]*d[1]*orig[2]*orig[2] - 2*d[1]*d[2]*orig[1]*orig[2] +
				d[2]*d[2]*orig[0]*orig[0] + d[2]*d[2]*orig[1]*orig[1],
			c3: -d[0]*d[0]*orig[1]*orig[1] + 2*d[0]*d[1]*orig[0]*orig[1] -
				d[1]*d[1]*orig[0]*orig[0],
			c4: -d[2] * d[2],
			c5: d[0]*d[0] + d[1]*d[1],
		}
	}
	return o
}

// ThetaLimits implements Oracle by intersecting the view cone at phi with
// the four great-circle planes bounding the equirectangular frustum.
func (o *equirectOracle) ThetaLimits(phi Scalar) ([][2]Scalar, error) {
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	tanPhi := math.Tan(phi)
	c2 := tanPhi * tanPhi

	var limits []Scalar
	complexSols := 0

	for i := 0; i < 4; i++ {
		e := o.eq[i]
		num := c2*e.c0 + e.c1
		disc := c2*e.c2 + e.c3
		denom := c2*e.c4 + e.c5

		if disc <= 0 {
			complexSols++
			continue
		}
		if denom == 0 {
			continue
		}

		root := math.Sqrt(disc)
		for _, t := range [2]Scalar{(num + root) / denom, (num - root) / denom} {
			if t < 0 || t > 1 {
				continue
			}
			z := e.origin[2] + e.dir[2]*t
			if (z > 0) != (phi > math.Pi/2) {
				continue
			}
			x := e.origin[0] + e.dir[0]*t
			y := e.origin[1] + e.dir[1]*t
			limits = append(limits, normalizeAngle(math.Atan2(y, x)))
		}
	}

	if complexSols == 4 && (cosPhi > 0) == (o.camZ < 0) {
		testVec := vec3{sinPhi, 0, -cosPhi}
		external := false
		for i := 0; i < 4 && !external; i++ {
			external = testVec.dot(o.edges[i]) < 0
		}
		if !external {
			return [][2]Scalar{{0, 2 * math.Pi}}, nil
		}
	}

	if len(limits) == 0 {
		return nil, nil
	}
	if len(limits)%2 != 0 {
		return nil, errOddIntersectionCount()
	}

	sortScalars(limits)

	testTheta := (limits[0] + limits[1]) * 0.5
	sinTheta, cosTheta := math.Sin(testTheta), math.Cos(testTheta)
	testVec := vec3{cosTheta * sinPhi, sinTheta * sinPhi, -cosPhi}

	firstIsEnd := false
	for i := 0; i < 4 && !firstIsEnd; i++ {
		firstIsEnd = testVec.dot(o.edges[i]) < 0
	}

	var out [][2]Scalar
	start := 0
	if firstIsEnd {
		start = 1
	}
	for i := start; i < len(limits)-1; i += 2 {
		out = append(out, [2]Scalar{limits[i], limits[i+1]})
	}
	if firstIsEnd {
		out = append(out, [2]Scalar{limits[len(limits)-1], limits[0]})
	}
	return out, nil
}

func sortScalars(s []Scalar) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
