package visibility

import (
	"math"
	"testing"

	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/vmerrors"
)

func identityHoc(height float32) types.Mat4 {
	return types.RigidTransform(types.Ident3(), height)
}

func TestEquirectStraightDownSeesNadir(t *testing.T) {
	lens := Lens{Kind: Equirectangular, FovY: math.Pi / 2, FovZ: math.Pi / 2}
	oracle, err := NewOracle(lens, identityHoc(1))
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	limits, err := oracle.ThetaLimits(0.01)
	if err != nil {
		t.Fatalf("ThetaLimits: %v", err)
	}
	// A ring this close to the nadir sits entirely inside a square frustum
	// centred on the camera axis: rotational symmetry about that axis
	// means no edge can clip it into a partial interval.
	if len(limits) != 1 || limits[0] != [2]Scalar{0, 2 * math.Pi} {
		t.Fatalf("expected a single full-circle interval, got %v", limits)
	}
}

func TestEquirectBehindCameraNotVisible(t *testing.T) {
	lens := Lens{Kind: Equirectangular, FovY: math.Pi / 4, FovZ: math.Pi / 4}
	oracle, err := NewOracle(lens, identityHoc(1))
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	// Straight up, directly behind a downward-looking camera's narrow FOV.
	limits, err := oracle.ThetaLimits(math.Pi - 0.01)
	if err != nil {
		t.Fatalf("ThetaLimits: %v", err)
	}
	if len(limits) != 0 {
		t.Fatalf("expected no visibility directly opposite a narrow FOV, got %v", limits)
	}
}

func TestRadialNarrowFovNearAxis(t *testing.T) {
	lens := Lens{Kind: Radial, Fov: math.Pi / 6}
	oracle, err := NewOracle(lens, identityHoc(1))
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	limits, err := oracle.ThetaLimits(0.01)
	if err != nil {
		t.Fatalf("ThetaLimits: %v", err)
	}
	if len(limits) == 0 {
		t.Fatalf("expected visibility near the camera axis")
	}
}

func TestRadialOppositeHemisphereNotVisible(t *testing.T) {
	lens := Lens{Kind: Radial, Fov: math.Pi / 6}
	oracle, err := NewOracle(lens, identityHoc(1))
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	limits, err := oracle.ThetaLimits(math.Pi - 0.01)
	if err != nil {
		t.Fatalf("ThetaLimits: %v", err)
	}
	if len(limits) != 0 {
		t.Fatalf("expected no visibility opposite a narrow radial FOV, got %v", limits)
	}
}

func TestThetaToIndexWrapsAtRowSize(t *testing.T) {
	if idx := thetaToIndex(2*math.Pi, 16); idx != 16 {
		t.Fatalf("expected full-circle theta to map to rowSize, got %d", idx)
	}
	if idx := thetaToIndex(0, 16); idx != 0 {
		t.Fatalf("expected zero theta to map to index 0, got %d", idx)
	}
}

func TestOracleRotationalSymmetry(t *testing.T) {
	lens := Lens{Kind: Radial, Fov: math.Pi / 3}
	base, err := NewOracle(lens, identityHoc(1))
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	rotated, err := NewOracle(lens, types.RigidTransform(types.RotationAboutZ(math.Pi/2), 1))
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}

	baseLimits, err := base.ThetaLimits(0.2)
	if err != nil {
		t.Fatalf("ThetaLimits: %v", err)
	}
	rotLimits, err := rotated.ThetaLimits(0.2)
	if err != nil {
		t.Fatalf("ThetaLimits: %v", err)
	}
	if len(baseLimits) != len(rotLimits) {
		t.Fatalf("expected rotating the camera about its own axis to preserve visibility width")
	}
}

// TestEquirectOddIntersectionCountIsNumericalFailure builds an oracle whose
// per-edge coefficients are chosen directly (rather than derived from a
// pose/lens) so that exactly three of its four edges accept a root: two
// from the first edge, one from the second, and none from the other two
// (whose zeroed coefficients force a non-positive discriminant). That odd
// total should never happen for a real frustum, so ThetaLimits reports it
// as a numerical failure instead of returning a malformed interval list.
func TestEquirectOddIntersectionCountIsNumericalFailure(t *testing.T) {
	o := &equirectOracle{
		height: 1,
		camZ:   -1,
		eq: [4]eqEdgeConstants{
			{origin: vec3{0, 0, -1}, dir: vec3{1, 0, 0}, c1: 0.5, c3: 0.01709, c5: 1},
			{origin: vec3{0, 0, -1}, dir: vec3{0, 1, 0}, c3: 4, c5: 2},
			{},
			{},
		},
	}

	_, err := o.ThetaLimits(0.5)
	if !vmerrors.Is(err, vmerrors.NumericalFailure) {
		t.Fatalf("expected a numerical failure for an odd intersection count, got %v", err)
	}
}
