package types

import "math"

// Mat3 is a 3x3 row-major matrix stored as a flat 9-element array.
type Mat3 [9]float32

// Mat4 is a 4x4 row-major matrix stored as a flat 16-element array. It is
// used as a homogeneous rigid transform with the 3x3 rotation in the
// top-left and the translation in the last column.
type Mat4 [16]float32

// Ident3 returns the 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Row-major accessor; r and c are both in [0,3].
func (m Mat4) At(r, c int) float32 {
	return m[r*4+c]
}

// Set the row-major element at (r,c).
func (m *Mat4) Set(r, c int, v float32) {
	m[r*4+c] = v
}

func (m Mat3) At(r, c int) float32 {
	return m[r*3+c]
}

// Mat3 extracts the top-left 3x3 rotation block from a Mat4.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Translation returns the last column's first three components, i.e. the
// rigid transform's translation vector.
func (m Mat4) Translation() Vec3 {
	return Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
}

// Height returns the z component of the translation, i.e. the camera's
// height above the observation plane encoded in a H_oc transform.
func (m Mat4) Height() float32 {
	return m.At(2, 3)
}

// Mul3 multiplies two row-major 3x3 matrices.
func (m Mat3) Mul3(o Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m.At(r, k) * o.At(k, c)
			}
			out[r*3+c] = sum
		}
	}
	return out
}

// MulVec3 applies the 3x3 matrix to a column vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m.At(0, 0)*v[0] + m.At(0, 1)*v[1] + m.At(0, 2)*v[2],
		m.At(1, 0)*v[0] + m.At(1, 1)*v[1] + m.At(1, 2)*v[2],
		m.At(2, 0)*v[0] + m.At(2, 1)*v[1] + m.At(2, 2)*v[2],
	}
}

// Transpose3 returns the transpose of a 3x3 matrix. Used to flip between
// R_oc (observation from camera) and R_co (camera from observation).
func (m Mat3) Transpose3() Mat3 {
	return Mat3{
		m.At(0, 0), m.At(1, 0), m.At(2, 0),
		m.At(0, 1), m.At(1, 1), m.At(2, 1),
		m.At(0, 2), m.At(1, 2), m.At(2, 2),
	}
}

// Mul4 multiplies two row-major 4x4 matrices, returning m*o.
func (m Mat4) Mul4(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(r, k) * o.At(k, c)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

// Mul4x1 multiplies the matrix by a column Vec4.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m.At(0, 0)*v[0] + m.At(0, 1)*v[1] + m.At(0, 2)*v[2] + m.At(0, 3)*v[3],
		m.At(1, 0)*v[0] + m.At(1, 1)*v[1] + m.At(1, 2)*v[2] + m.At(1, 3)*v[3],
		m.At(2, 0)*v[0] + m.At(2, 1)*v[1] + m.At(2, 2)*v[2] + m.At(2, 3)*v[3],
		m.At(3, 0)*v[0] + m.At(3, 1)*v[1] + m.At(3, 2)*v[2] + m.At(3, 3)*v[3],
	}
}

// Inv inverts a rigid transform (rotation + translation) Mat4. It assumes
// the top-left 3x3 block is orthonormal, which holds for every H_oc this
// package constructs or accepts.
func (m Mat4) Inv() Mat4 {
	rot := m.Mat3().Transpose3()
	t := m.Translation()
	invT := rot.MulVec3(t).Mul(-1)

	out := Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Set(r, c, rot.At(r, c))
		}
		out.Set(r, 3, invT[r])
	}
	return out
}

// FromRows3 builds a Mat3 from three row vectors.
func FromRows3(row0, row1, row2 Vec3) Mat3 {
	return Mat3{
		row0[0], row0[1], row0[2],
		row1[0], row1[1], row1[2],
		row2[0], row2[1], row2[2],
	}
}

// RigidTransform builds a H_oc homogeneous transform from a 3x3 rotation
// and the camera height above the observation plane (z translation).
func RigidTransform(rot Mat3, height float32) Mat4 {
	out := Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Set(r, c, rot.At(r, c))
		}
	}
	out.Set(2, 3, height)
	return out
}

// RotationAboutZ returns the 3x3 rotation matrix for a right-handed
// rotation of angle (radians) about the world z (up) axis. Used by tests
// to check the visibility oracle's rotational symmetry.
func RotationAboutZ(angle float32) Mat3 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}
