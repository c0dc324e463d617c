// Package cpu implements the pure-Go projection engine: a bounded
// worker-pool parallel map over the mesh's visible nodes, with no
// cross-node dependencies, followed by a binary-search neighbour remap.
package cpu

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/achilleasa/visualmesh/engine"
	"github.com/achilleasa/visualmesh/mesh"
	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/visibility"
)

// Engine is the pure-Go, non-accelerated projection backend.
type Engine struct {
	// Workers bounds how many goroutines process projection chunks
	// concurrently. Zero means runtime.GOMAXPROCS(0).
	Workers int
}

var _ engine.Engine = (*Engine)(nil)

type candidate struct {
	globalIndex int
	pixel       types.Vec2
	onScreen    bool
}

// Project implements engine.Engine.
func (e *Engine) Project(m *mesh.Mesh, ranges []mesh.IndexRange, pose types.Mat4, lens visibility.Lens) (*engine.ProjectedMesh, error) {
	indices := flatten(ranges)
	if len(indices) == 0 {
		return &engine.ProjectedMesh{}, nil
	}

	rco := pose.Mat3().Transpose3()
	candidates := make([]candidate, len(indices))

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(indices) {
		workers = len(indices)
	}

	var g errgroup.Group
	chunk := (len(indices) + workers - 1) / workers
	for start := 0; start < len(indices); start += chunk {
		end := start + chunk
		if end > len(indices) {
			end = len(indices)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				idx := indices[i]
				ray := rco.MulVec3(m.Nodes[idx].Ray.Vec3())
				px, onScreen := projectRay(ray, lens)
				candidates[i] = candidate{globalIndex: idx, pixel: px, onScreen: onScreen}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &engine.ProjectedMesh{}
	for _, c := range candidates {
		if !c.onScreen {
			continue
		}
		out.GlobalIndices = append(out.GlobalIndices, c.globalIndex)
		out.PixelCoordinates = append(out.PixelCoordinates, c.pixel)
	}

	out.Neighbourhood = make([][engine.NumNeighbours]int, len(out.GlobalIndices))
	sentinel := len(out.GlobalIndices)
	for i, idx := range out.GlobalIndices {
		for slot, offset := range m.Nodes[idx].Neighbours {
			nb := idx + offset
			pos := sort.SearchInts(out.GlobalIndices, nb)
			if pos < len(out.GlobalIndices) && out.GlobalIndices[pos] == nb {
				out.Neighbourhood[i][slot] = pos
			} else {
				out.Neighbourhood[i][slot] = sentinel
			}
		}
	}

	return out, nil
}

// flatten expands a non-overlapping set of index ranges, in any order, into
// a single sorted slice of absolute indices.
func flatten(ranges []mesh.IndexRange) []int {
	n := 0
	for _, r := range ranges {
		n += r.End - r.Begin
	}
	out := make([]int, 0, n)
	for _, r := range ranges {
		for i := r.Begin; i < r.End; i++ {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
