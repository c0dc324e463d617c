package cpu

import (
	"math"
	"testing"

	"github.com/achilleasa/visualmesh/geometry"
	"github.com/achilleasa/visualmesh/mesh"
	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/visibility"
)

func buildTestMesh(t *testing.T) *mesh.Mesh {
	shape := geometry.NewSphere(0.1)
	m, err := mesh.Generate(shape, 1.0, 1.0, math.Inf(1), 1e-3, 1000)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m
}

func TestProjectEquirectangularProducesOnScreenNodes(t *testing.T) {
	m := buildTestMesh(t)
	lens := visibility.Lens{
		Kind:              visibility.Equirectangular,
		FovY:              math.Pi / 2,
		FovZ:              math.Pi / 2,
		FocalLengthPixels: 200,
		Dimensions:        [2]int{400, 400},
		Centre:            types.Vec2{200, 200},
	}
	pose := types.RigidTransform(types.Ident3(), 1)

	oracle, err := visibility.NewOracle(lens, pose)
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	ranges, err := visibility.IndexRanges(m, oracle)
	if err != nil {
		t.Fatalf("IndexRanges: %v", err)
	}

	e := &Engine{}
	projected, err := e.Project(m, ranges, pose, lens)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if len(projected.GlobalIndices) == 0 {
		t.Fatalf("expected at least one node to project on screen")
	}
	if len(projected.PixelCoordinates) != len(projected.GlobalIndices) {
		t.Fatalf("pixel coordinates and global indices must be parallel slices")
	}
}

func TestProjectNeighbourSentinelForOffScreenLinks(t *testing.T) {
	m := buildTestMesh(t)
	lens := visibility.Lens{
		Kind:              visibility.Equirectangular,
		FovY:              math.Pi / 8,
		FovZ:              math.Pi / 8,
		FocalLengthPixels: 200,
		Dimensions:        [2]int{100, 100},
		Centre:            types.Vec2{50, 50},
	}
	pose := types.RigidTransform(types.Ident3(), 1)

	oracle, err := visibility.NewOracle(lens, pose)
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}
	ranges, err := visibility.IndexRanges(m, oracle)
	if err != nil {
		t.Fatalf("IndexRanges: %v", err)
	}

	e := &Engine{}
	projected, err := e.Project(m, ranges, pose, lens)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	sentinel := len(projected.GlobalIndices)
	sawSentinel := false
	for _, nbs := range projected.Neighbourhood {
		for _, nb := range nbs {
			if nb == sentinel {
				sawSentinel = true
			}
			if nb < 0 || nb > sentinel {
				t.Fatalf("neighbour index %d out of valid range [0,%d]", nb, sentinel)
			}
		}
	}
	if !sawSentinel {
		t.Fatalf("expected a narrow FOV to produce at least one off-screen neighbour")
	}
}
