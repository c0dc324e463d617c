// Package engine projects a mesh's visible nodes into pixel coordinates
// for a given camera pose and lens, remapping each projected node's
// neighbour links to indices within the projected subset.
package engine

import (
	"github.com/achilleasa/visualmesh/mesh"
	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/visibility"
)

// NumNeighbours is the width of a visual mesh node's neighbour table.
const NumNeighbours = 6

// ProjectedMesh is the result of projecting a subset of a Mesh's nodes
// through a lens. PixelCoordinates and Neighbourhood are parallel slices:
// PixelCoordinates[i] is where node GlobalIndices[i] lands on screen, and
// Neighbourhood[i] holds the position (within this same projected subset)
// of each of that node's six neighbours, or len(GlobalIndices) if a
// neighbour fell outside the subset (the off-screen sentinel).
type ProjectedMesh struct {
	PixelCoordinates []types.Vec2
	Neighbourhood    [][NumNeighbours]int
	GlobalIndices    []int
}

// Engine projects a mesh's nodes within ranges through lens at the given
// camera pose.
type Engine interface {
	Project(m *mesh.Mesh, ranges []mesh.IndexRange, pose types.Mat4, lens visibility.Lens) (*ProjectedMesh, error)
}
