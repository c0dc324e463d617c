package geometry

import "math"

// Circle models a flat disc of the given radius lying on the ground
// plane. Unlike Sphere, its apparent radial extent foreshortens with the
// cosine of the viewing angle, so Phi differs from Sphere's even though
// Theta (its azimuthal extent, unaffected by foreshortening) does not.
type Circle struct {
	Radius Scalar
}

// NewCircle constructs a disc shape model of the given radius.
func NewCircle(radius Scalar) *Circle {
	return &Circle{Radius: radius}
}

// Theta implements the Shape contract. A disc's azimuthal angular width
// at a given ring matches a sphere of the same radius: the curvature that
// makes a sphere round doesn't affect the azimuthal cross-section of a
// flat disc viewed edge-on around the ring.
func (c *Circle) Theta(phi, h Scalar) Scalar {
	return 2 * halfAngle(c.Radius, slantDistance(phi, h))
}

// Phi implements the Shape contract. The disc's radial footprint
// foreshortens by cos(phi) relative to a sphere of the same radius, so its
// angular step is never larger than the sphere's: the two nearly match at
// the nadir, and the disc's step shrinks faster toward the horizon.
func (c *Circle) Phi(phi, h Scalar) Scalar {
	d := slantDistance(phi, h)
	if math.IsInf(d, 1) {
		return math.NaN()
	}
	foreshortened := c.Radius * math.Abs(math.Cos(phi))
	step := 2 * halfAngle(foreshortened, d)
	if math.IsNaN(step) {
		return math.NaN()
	}
	if phi < math.Pi/2 {
		return phi + step
	}
	return phi - step
}

// K returns the ratio of intersection counts when a mesh generated at h0
// is reused at h1. As with Sphere, the disc's apparent size scales with
// 1/distance and distance scales with height at fixed phi, giving h0/h1
// to leading order.
func (c *Circle) K(h0, h1 Scalar) Scalar {
	if h1 == 0 {
		return math.NaN()
	}
	return h0 / h1
}
