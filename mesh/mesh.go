// Package mesh builds the ray-sampling lattice a camera height and shape
// model produce: rings of nodes at increasing polar angle, each node
// carrying a unit view ray and six neighbour links.
package mesh

import (
	"errors"
	"math"
	"sort"

	"github.com/achilleasa/visualmesh/geometry"
	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/vmerrors"
)

// ErrEmptyMesh is returned when a shape/height combination produces no
// rings at all (e.g. the shape is degenerate everywhere).
var ErrEmptyMesh = errors.New("mesh: generated zero rows")

// Node is a single sample point: a unit ray in the camera's observation
// frame plus six signed offsets into the node table, ordered TL, TR, L, R,
// BL, BR. Adding a neighbour offset to the node's own index yields the
// neighbour's absolute index.
type Node struct {
	Ray        types.Vec4
	Neighbours [6]int
}

// Row records where one ring of constant phi lives in Mesh.Nodes. End is
// one past the last node in the row, as with Go slice bounds.
type Row struct {
	Phi   geometry.Scalar
	Begin int
	End   int
}

// Mesh is an immutable lattice generated for one shape/height pair. Once
// built it is never mutated, so it may be shared across goroutines and
// across cache entries without copying.
type Mesh struct {
	Height geometry.Scalar
	Nodes  []Node
	Rows   []Row
}

// ringPhi pairs a ring's polar angle with the number of nodes the shape
// says it needs, before any nodes exist.
type ringPhi struct {
	phi   geometry.Scalar
	steps int
}

// Generate builds a mesh for the given shape and camera height.
//
//   - n is the desired number of object intersections per ring; each
//     ring's theta step is divided by it, so raising it puts more nodes in
//     every ring. The phi spacing between rings does not depend on n.
//   - dMax bounds how far along the ground the downward sweep extends;
//     rings whose ground distance would exceed it are not generated.
//   - minAngularRes floors both the phi step and the per-ring theta step,
//     so the sweep always terminates near the horizon and the poles.
//   - maxRingSize caps how many nodes a single ring may contain. A sweep
//     stops at the first ring that would exceed it, so the mesh ends short
//     of the horizon on that side; the returned Mesh does not record that
//     this happened. If neither sweep keeps a single ring, Generate fails
//     with vmerrors.OutOfMemory.
func Generate(shape geometry.Shape, h, n, dMax, minAngularRes geometry.Scalar, maxRingSize int) (*Mesh, error) {
	if n <= 0 {
		return nil, vmerrors.New(vmerrors.InvalidInput, "mesh.Generate", "n must be positive, got %v", n)
	}
	if minAngularRes <= 0 {
		return nil, vmerrors.New(vmerrors.InvalidInput, "mesh.Generate", "minAngularRes must be positive, got %v", minAngularRes)
	}

	var rings []ringPhi
	truncated := false

	// Downward sweep: from just past the nadir up to (not including) the
	// horizon. Starting half a step in from zero avoids a single,
	// redundant node sitting exactly at the nadir.
	for phi := shape.Phi(0, h) * 0.5; phi < math.Pi/2; {
		if steps, ok := ringSteps(shape, phi, h, n, dMax, minAngularRes); ok {
			if steps > maxRingSize {
				truncated = true
				break
			}
			rings = append(rings, ringPhi{phi: phi, steps: steps})
		}

		next := shape.Phi(phi, h)
		floor := phi + minAngularRes
		if math.IsNaN(next) || next < floor {
			next = floor
		}
		if next <= phi {
			break
		}
		phi = next
	}

	// Upward sweep: from just short of the zenith down to (not including)
	// the horizon.
	for phi := (math.Pi + shape.Phi(math.Pi, h)) * 0.5; phi > math.Pi/2; {
		if steps, ok := ringSteps(shape, phi, h, n, math.Inf(1), minAngularRes); ok {
			if steps > maxRingSize {
				truncated = true
				break
			}
			rings = append(rings, ringPhi{phi: phi, steps: steps})
		}

		next := shape.Phi(phi, h)
		ceil := phi - minAngularRes
		if math.IsNaN(next) || next > ceil {
			next = ceil
		}
		if next >= phi {
			break
		}
		phi = next
	}

	if len(rings) == 0 {
		if truncated {
			return nil, vmerrors.New(vmerrors.OutOfMemory, "mesh.Generate",
				"the first ring of every sweep needs more than %d nodes", maxRingSize)
		}
		return nil, ErrEmptyMesh
	}

	sort.Slice(rings, func(i, j int) bool { return rings[i].phi < rings[j].phi })

	m := &Mesh{Height: h}
	emitNodes(m, rings)
	linkRows(m)

	return m, nil
}

// ringSteps evaluates the shape at phi and returns the number of nodes the
// ring needs, or ok=false if the ring should be skipped (degenerate theta,
// or its ground distance exceeds dMax).
func ringSteps(shape geometry.Shape, phi, h, n, dMax, minAngularRes geometry.Scalar) (int, bool) {
	if phi < math.Pi/2 && !math.IsInf(dMax, 1) {
		if ground := h * math.Tan(phi); ground > dMax {
			return 0, false
		}
	}

	theta := shape.Theta(phi, h)
	if math.IsNaN(theta) {
		return 0, false
	}
	theta = theta / n
	if theta < minAngularRes {
		theta = minAngularRes
	}

	steps := int(math.Ceil(2 * math.Pi / theta))
	if steps < 3 {
		steps = 3
	}
	return steps, true
}

// emitNodes lays out every ring's nodes contiguously in phi order and
// records each row's [begin,end) span, following the sorted ring list.
func emitNodes(m *Mesh, rings []ringPhi) {
	total := 0
	for _, r := range rings {
		total += r.steps
	}
	m.Nodes = make([]Node, 0, total)
	m.Rows = make([]Row, 0, len(rings))

	for _, r := range rings {
		sinPhi, cosPhi := math.Sin(r.phi), math.Cos(r.phi)
		dtheta := 2 * math.Pi / float64(r.steps)
		begin := len(m.Nodes)

		theta := 0.0
		for i := 0; i < r.steps; i++ {
			m.Nodes = append(m.Nodes, Node{
				Ray: types.Vec4{
					float32(math.Cos(theta) * sinPhi),
					float32(math.Sin(theta) * sinPhi),
					float32(-cosPhi),
					0,
				},
			})
			theta += dtheta
		}

		m.Rows = append(m.Rows, Row{Phi: r.phi, Begin: begin, End: len(m.Nodes)})
	}
}
