package visibility

import "github.com/achilleasa/visualmesh/types"

// rocRows extracts the 3x3 rotation block of H_oc as float64 row vectors.
func rocRows(hoc types.Mat4) mat3Rows {
	return mat3Rows{
		{Scalar(hoc.At(0, 0)), Scalar(hoc.At(0, 1)), Scalar(hoc.At(0, 2))},
		{Scalar(hoc.At(1, 0)), Scalar(hoc.At(1, 1)), Scalar(hoc.At(1, 2))},
		{Scalar(hoc.At(2, 0)), Scalar(hoc.At(2, 1)), Scalar(hoc.At(2, 2))},
	}
}

// camForward returns the camera's forward axis (the first column of H_oc's
// rotation block) expressed in the observation frame.
func camForward(roc mat3Rows) vec3 {
	return roc.col(0)
}

func cameraHeight(hoc types.Mat4) Scalar {
	return Scalar(hoc.Height())
}
