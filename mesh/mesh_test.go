package mesh

import (
	"math"
	"testing"

	"github.com/achilleasa/visualmesh/geometry"
)

func TestGenerateFlatBelowSphere(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	m, err := Generate(shape, 1.0, 1.0, math.Inf(1), 1e-3, 1000)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(m.Rows) == 0 {
		t.Fatalf("expected at least one row")
	}
	if len(m.Nodes) == 0 {
		t.Fatalf("expected at least one node")
	}

	// Rows must be sorted by phi.
	for i := 1; i < len(m.Rows); i++ {
		if m.Rows[i].Phi < m.Rows[i-1].Phi {
			t.Fatalf("rows not sorted by phi at index %d", i)
		}
	}
}

func TestGenerateEveryNodeHasSixNeighbours(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	m, err := Generate(shape, 1.0, 1.0, math.Inf(1), 1e-3, 1000)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, n := range m.Nodes {
		for slot, offset := range n.Neighbours {
			nb := i + offset
			if nb < 0 || nb >= len(m.Nodes) {
				t.Fatalf("node %d neighbour slot %d points out of range: %d", i, slot, nb)
			}
		}
	}
}

func TestGenerateNeighboursAreReciprocalWithinRow(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	m, err := Generate(shape, 1.0, 1.0, math.Inf(1), 1e-3, 1000)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, row := range m.Rows {
		size := row.End - row.Begin
		if size < 3 {
			t.Fatalf("expected at least 3 nodes per ring, got %d", size)
		}
		for i := row.Begin; i < row.End; i++ {
			l := i + m.Nodes[i].Neighbours[nbL]
			r := i + m.Nodes[i].Neighbours[nbR]
			if r+m.Nodes[r].Neighbours[nbL] != i {
				t.Fatalf("right neighbour of %d is %d but its left neighbour is not %d", i, r, i)
			}
			if l+m.Nodes[l].Neighbours[nbR] != i {
				t.Fatalf("left neighbour of %d is %d but its right neighbour is not %d", i, l, i)
			}
		}
	}
}

func TestGenerateRaysAreUnitLength(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	m, err := Generate(shape, 1.0, 1.0, math.Inf(1), 1e-3, 1000)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i, n := range m.Nodes {
		l := n.Ray.Vec3().Len()
		if math.Abs(float64(l)-1) > 1e-4 {
			t.Fatalf("node %d ray is not unit length: %v", i, l)
		}
	}
}

func TestGenerateRespectsRingCap(t *testing.T) {
	shape := geometry.NewSphere(0.0001) // tiny object forces many intersections per ring
	_, err := Generate(shape, 1.0, 1.0, math.Inf(1), 1e-4, 8)
	if err == nil {
		t.Fatalf("expected an out-of-memory failure for a too-small ring cap")
	}
}

func TestGenerateRespectsMaxGroundDistance(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	near, err := Generate(shape, 1.0, 1.0, 2.0, 1e-3, 10000)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	far, err := Generate(shape, 1.0, 1.0, math.Inf(1), 1e-3, 10000)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(near.Rows) > len(far.Rows) {
		t.Fatalf("bounding max ground distance should not produce more rows: near=%d far=%d", len(near.Rows), len(far.Rows))
	}
}

func TestGenerateRejectsNonPositiveN(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	if _, err := Generate(shape, 1.0, 0, math.Inf(1), 1e-3, 1000); err == nil {
		t.Fatalf("expected an error for n <= 0")
	}
}

// TestLinkPoleMatchesRelativeOffsetFormula checks linkRows on a mesh with a
// single size-6 ring: every node converges on the same pole in both
// directions, so node k's TL/TR neighbours must be the nodes diametrically
// opposite it, stored as the relative offsets (k+3)%6-k and (k+4)%6-k.
func TestLinkPoleMatchesRelativeOffsetFormula(t *testing.T) {
	const size = 6
	m := &Mesh{
		Nodes: make([]Node, size),
		Rows:  []Row{{Phi: 0, Begin: 0, End: size}},
	}
	linkRows(m)

	for k := 0; k < size; k++ {
		wantTL := (k+3)%size - k
		wantTR := (k+4)%size - k
		if got := m.Nodes[k].Neighbours[nbTL]; got != wantTL {
			t.Fatalf("node %d TL offset = %d, want %d", k, got, wantTL)
		}
		if got := m.Nodes[k].Neighbours[nbTR]; got != wantTR {
			t.Fatalf("node %d TR offset = %d, want %d", k, got, wantTR)
		}
		if k+wantTL < 0 || k+wantTL >= size {
			t.Fatalf("node %d TL offset %d resolves out of range", k, wantTL)
		}
	}
}
