package operator

import (
	"sync"

	"github.com/achilleasa/visualmesh/cache"
	"github.com/achilleasa/visualmesh/engine"
	"github.com/achilleasa/visualmesh/engine/cpu"
	"github.com/achilleasa/visualmesh/geometry"
	"github.com/achilleasa/visualmesh/types"
	"github.com/achilleasa/visualmesh/visibility"
)

// minAngularRes and maxRingSize bound every mesh this package generates;
// they aren't request parameters because, unlike height/n/tolerance, a
// caller has no real reason to vary them between calls.
const (
	minAngularRes = 1e-4
	maxRingSize   = 1 << 20
)

type cacheKey struct {
	geometry string
	radius   float64
	capacity int
}

var (
	cachesMu sync.Mutex
	caches   = map[cacheKey]*cache.Cache{}
)

func cacheFor(geom string, radius float64, capacity int) *cache.Cache {
	key := cacheKey{geometry: geom, radius: radius, capacity: capacity}

	cachesMu.Lock()
	defer cachesMu.Unlock()

	if c, ok := caches[key]; ok {
		return c
	}

	var shape geometry.Shape
	if geom == "SPHERE" {
		shape = geometry.NewSphere(radius)
	} else {
		shape = geometry.NewCircle(radius)
	}
	c := cache.New(shape, minAngularRes, maxRingSize, capacity)
	caches[key] = c
	return c
}

// DefaultEngine is the projection backend used by Run. It defaults to the
// CPU engine; swap it (e.g. in an init() guarded by a build tag) to use
// the OpenCL accelerator instead.
var DefaultEngine engine.Engine = &cpu.Engine{}

// Run projects the mesh for req's shape, pose, and lens, returning pixel
// coordinates and the neighbour graph for every node that lands on
// screen.
func Run(req Request) (Response, error) {
	if err := req.validate(); err != nil {
		return Response{}, err
	}

	c := cacheFor(req.Geometry, req.Radius, req.CacheCapacity)
	m, err := c.Get(req.Height, req.N, req.Tolerance, req.MaxDistance)
	if err != nil {
		return Response{}, err
	}

	hoc := hocFromRequest(req)
	lens := lensFromRequest(req)

	oracle, err := visibility.NewOracle(lens, hoc)
	if err != nil {
		return Response{}, err
	}
	ranges, err := visibility.IndexRanges(m, oracle)
	if err != nil {
		return Response{}, err
	}

	projected, err := DefaultEngine.Project(m, ranges, hoc, lens)
	if err != nil {
		return Response{}, err
	}

	return toResponse(projected), nil
}

func hocFromRequest(req Request) types.Mat4 {
	rot := types.FromRows3(
		types.Vec3{float32(req.Roc[0][0]), float32(req.Roc[0][1]), float32(req.Roc[0][2])},
		types.Vec3{float32(req.Roc[1][0]), float32(req.Roc[1][1]), float32(req.Roc[1][2])},
		types.Vec3{float32(req.Roc[2][0]), float32(req.Roc[2][1]), float32(req.Roc[2][2])},
	)
	return types.RigidTransform(rot, float32(req.Height))
}

func lensFromRequest(req Request) visibility.Lens {
	lens := visibility.Lens{
		Kind:              req.LensKind,
		FovY:              req.FOV[0],
		FovZ:              req.FOV[1],
		Fov:               req.FOV[0],
		Projection:        req.RadialProjection,
		FocalLengthPixels: req.FocalLengthPixels,
		Dimensions:        [2]int{req.ImageWidth, req.ImageHeight},
		// The request and the engine both order the centre as [x, y];
		// only the output pixels are swapped to [y, x] (see toResponse).
		Centre: types.Vec2{float32(req.LensCentre[0]), float32(req.LensCentre[1])},
	}
	return lens
}

func toResponse(p *engine.ProjectedMesh) Response {
	n := len(p.GlobalIndices)
	resp := Response{
		Pixels:     make([][2]float64, n),
		Neighbours: make([][7]int, n+1),
	}
	for i, px := range p.PixelCoordinates {
		resp.Pixels[i] = [2]float64{float64(px[1]), float64(px[0])}
	}
	for i := 0; i < n; i++ {
		resp.Neighbours[i][0] = i
		for slot, nb := range p.Neighbourhood[i] {
			resp.Neighbours[i][slot+1] = nb
		}
	}
	for col := 0; col < 7; col++ {
		resp.Neighbours[n][col] = n
	}
	return resp
}
