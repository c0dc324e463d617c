// Package operator exposes the visual mesh as a single request/response
// call, mirroring the input/output contract of the TensorFlow custom op
// this library's algorithms were originally built to serve: given a lens,
// a camera pose, a target object, and a height, it returns the on-screen
// pixel coordinates and neighbour graph of the mesh nodes visible from
// that pose.
package operator

import "github.com/achilleasa/visualmesh/visibility"

// Request bundles everything one projection call needs. Field names and
// units mirror the original tensor inputs: angles in radians, lengths in
// metres except FocalLengthPixels and LensCentre, which are in pixels.
type Request struct {
	ImageWidth, ImageHeight int

	LensKind visibility.Kind
	// FOV holds [horizontal, vertical] for an Equirectangular lens, or
	// [full angle, unused] for a Radial lens.
	FOV               [2]float64
	FocalLengthPixels float64
	// LensCentre is [x, y] in pixels.
	LensCentre [2]float64
	// RadialProjection selects a Radial lens's fisheye model; ignored
	// for Equirectangular.
	RadialProjection visibility.Projection

	// Roc is the row-major 3x3 rotation from camera to the observation
	// plane.
	Roc    [3][3]float64
	Height float64

	N             float64
	CacheCapacity int
	Tolerance     float64
	MaxDistance   float64

	// Geometry selects the target object: "SPHERE" or "CIRCLE".
	Geometry string
	Radius   float64
}

// Response holds the projected mesh in the operator's output layout.
type Response struct {
	// Pixels is N rows of [y, x] pixel coordinates, one per visible node.
	Pixels [][2]float64
	// Neighbours is N+1 rows of 7 columns: column 0 is the node's own
	// index within Pixels, columns 1..6 are its six neighbours' indices
	// (or N, the off-screen sentinel, within Pixels). Row N is the
	// sentinel row, every column pointing at N.
	Neighbours [][7]int
}
