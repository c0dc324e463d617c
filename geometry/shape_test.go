package geometry

import (
	"math"
	"testing"
)

func TestSpherePhiMonotonicBelowHorizon(t *testing.T) {
	s := NewSphere(0.1)
	h := Scalar(1.0)
	phi := s.Phi(0, h) / 2
	for i := 0; i < 20; i++ {
		next := s.Phi(phi, h)
		if math.IsNaN(next) {
			t.Fatalf("unexpected NaN at phi=%v", phi)
		}
		if next <= phi {
			t.Fatalf("phi did not increase: phi=%v next=%v", phi, next)
		}
		if next >= math.Pi/2 {
			break
		}
		phi = next
	}
}

func TestSpherePhiMonotonicAboveHorizon(t *testing.T) {
	s := NewSphere(0.1)
	h := Scalar(1.0)
	phi := math.Pi - 0.01
	for i := 0; i < 20; i++ {
		next := s.Phi(phi, h)
		if math.IsNaN(next) {
			t.Fatalf("unexpected NaN at phi=%v", phi)
		}
		if next >= phi {
			t.Fatalf("phi did not decrease: phi=%v next=%v", phi, next)
		}
		if next <= math.Pi/2 {
			break
		}
		phi = next
	}
}

func TestSphereThetaPositive(t *testing.T) {
	s := NewSphere(0.1)
	h := Scalar(1.5)
	for _, phi := range []Scalar{0.01, 0.4, 1.0, 1.5} {
		theta := s.Theta(phi, h)
		if math.IsNaN(theta) || theta <= 0 {
			t.Fatalf("expected positive theta at phi=%v, got %v", phi, theta)
		}
	}
}

func TestSphereDegenerateInsideSilhouette(t *testing.T) {
	s := NewSphere(10) // camera well within the sphere's silhouette at h=1
	if !math.IsNaN(s.Theta(0.1, 1)) {
		t.Fatalf("expected NaN for a degenerate sphere/camera configuration")
	}
}

func TestSphereKIdentityAtSameHeight(t *testing.T) {
	s := NewSphere(0.1)
	if k := s.K(2, 2); k != 1 {
		t.Fatalf("expected K(h,h) == 1, got %v", k)
	}
}

func TestCircleThetaMatchesSphereAzimuthal(t *testing.T) {
	r := Scalar(0.1)
	h := Scalar(1.0)
	sph := NewSphere(r)
	circ := NewCircle(r)
	for _, phi := range []Scalar{0.1, 0.5, 1.0} {
		if math.Abs(sph.Theta(phi, h)-circ.Theta(phi, h)) > 1e-12 {
			t.Fatalf("expected circle/sphere theta to match at phi=%v", phi)
		}
	}
}

func TestCirclePhiForeshortensRelativeToSphere(t *testing.T) {
	r := Scalar(0.1)
	h := Scalar(1.0)
	sph := NewSphere(r)
	circ := NewCircle(r)
	phi := Scalar(0.6)
	sphStep := sph.Phi(phi, h) - phi
	circStep := circ.Phi(phi, h) - phi
	if circStep >= sphStep {
		t.Fatalf("expected disc's foreshortened step (%v) to be smaller than the sphere's (%v)", circStep, sphStep)
	}
}

func TestCircleKIdentityAtSameHeight(t *testing.T) {
	c := NewCircle(0.1)
	if k := c.K(3, 3); k != 1 {
		t.Fatalf("expected K(h,h) == 1, got %v", k)
	}
}
