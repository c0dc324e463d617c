package cpu

import (
	"math"

	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/visibility"
)

// projectRay maps a unit ray expressed in the camera's own frame (x
// forward) to a pixel coordinate under lens, reporting whether the result
// falls within the lens's image dimensions.
//
// Equirectangular is projected as a simple rectangular-frustum pinhole:
// the y/z camera-frame components, scaled by the focal length and divided
// by the forward component, give the pixel offset from the lens centre.
// Radial lenses instead measure the angle from the optical axis and map
// it to a pixel radius with one of three standard fisheye models, then
// place it at that radius around the lens centre at the ray's azimuth in
// the image plane.
func projectRay(ray types.Vec3, lens visibility.Lens) (types.Vec2, bool) {
	var px, py float32

	switch lens.Kind {
	case visibility.Equirectangular:
		if ray[0] <= 0 {
			return types.Vec2{}, false
		}
		f := float32(lens.FocalLengthPixels)
		px = lens.Centre[0] - f*(ray[1]/ray[0])
		py = lens.Centre[1] - f*(ray[2]/ray[0])

	case visibility.Radial:
		x := ray[0]
		if x > 1 {
			x = 1
		} else if x < -1 {
			x = -1
		}
		theta := math.Acos(float64(x))
		f := float32(lens.FocalLengthPixels)

		var r float32
		switch lens.Projection {
		case visibility.Equidistant:
			r = f * float32(theta)
		case visibility.Equisolid:
			r = 2 * f * float32(math.Sin(theta/2))
		case visibility.Rectilinear:
			r = f * float32(math.Tan(theta))
		}

		imgAngle := math.Atan2(float64(ray[2]), float64(ray[1]))
		px = lens.Centre[0] + r*float32(math.Cos(imgAngle))
		py = lens.Centre[1] + r*float32(math.Sin(imgAngle))

	default:
		return types.Vec2{}, false
	}

	onScreen := px >= 0 && px < float32(lens.Dimensions[0]) && py >= 0 && py < float32(lens.Dimensions[1])
	return types.Vec2{px, py}, onScreen
}
