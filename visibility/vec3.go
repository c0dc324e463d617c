package visibility

import "math"

// vec3 is a plain float64 3-vector used for the oracle's internal
// geometry, kept separate from types.Vec3 (float32) since the frustum/cone
// intersection math needs double precision near the horizon.
type vec3 [3]float64

func (v vec3) dot(o vec3) Scalar {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v vec3) cross(o vec3) vec3 {
	return vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v vec3) scale(s Scalar) vec3 {
	return vec3{v[0] * s, v[1] * s, v[2] * s}
}

// mat3Rows holds a 3x3 rotation as explicit row vectors for the dot
// products the oracle needs.
type mat3Rows [3]vec3

func (m mat3Rows) mulVec(v vec3) vec3 {
	return vec3{m[0].dot(v), m[1].dot(v), m[2].dot(v)}
}

func (m mat3Rows) col(j int) vec3 {
	return vec3{m[0][j], m[1][j], m[2][j]}
}

func normalizeAngle(theta Scalar) Scalar {
	if theta >= 0 {
		return theta
	}
	return theta + 2*math.Pi
}
