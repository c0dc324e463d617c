// Package cache maintains a bounded set of generated meshes for one shape,
// keyed loosely by camera height: a request is satisfied by any cached
// mesh whose implied intersection count at the requested height is still
// within tolerance, not just an exact height match.
package cache

import (
	"container/list"
	"sync"

	"github.com/achilleasa/visualmesh/geometry"
	"github.com/achilleasa/visualmesh/mesh"
)

// Stats records cumulative cache activity for diagnostics.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}

type entry struct {
	height geometry.Scalar
	dMax   geometry.Scalar
	mesh   *mesh.Mesh
}

// Cache holds meshes generated for a single shape model. A shape that
// needs different radii or object kinds should use a separate Cache.
type Cache struct {
	mu            sync.Mutex
	shape         geometry.Shape
	minAngularRes geometry.Scalar
	maxRingSize   int
	capacity      int

	// list's front is most recently used; evictions happen from the back.
	list  *list.List
	stats Stats
}

// New builds a Cache bounded to capacity entries. minAngularRes and
// maxRingSize are forwarded to mesh.Generate whenever a new mesh must be
// built.
func New(shape geometry.Shape, minAngularRes geometry.Scalar, maxRingSize, capacity int) *Cache {
	return &Cache{
		shape:         shape,
		minAngularRes: minAngularRes,
		maxRingSize:   maxRingSize,
		capacity:      capacity,
		list:          list.New(),
	}
}

// Get returns a mesh usable at height h with n desired intersections and
// maximum ground distance dMax, generating and caching one if no cached
// mesh is within tol of n intersections at h.
//
// The lock is held only while searching the cache and while updating it;
// building a brand new mesh happens outside the lock so other callers can
// keep querying. After building, the cache is re-checked in case another
// goroutine concurrently satisfied (or is about to satisfy) the same
// request, so concurrent misses for the same height don't pile up
// redundant meshes.
func (c *Cache) Get(h, n, tol, dMax geometry.Scalar) (*mesh.Mesh, error) {
	c.mu.Lock()
	if el := c.findAcceptable(h, n, tol, dMax); el != nil {
		c.list.MoveToFront(el)
		c.stats.Hits++
		m := el.Value.(*entry).mesh
		c.mu.Unlock()
		return m, nil
	}
	c.mu.Unlock()

	built, err := mesh.Generate(c.shape, h, n, dMax, c.minAngularRes, c.maxRingSize)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el := c.findAcceptable(h, n, tol, dMax); el != nil {

		c.list.MoveToFront(el)
		c.stats.Hits++
		return el.Value.(*entry).mesh, nil
	}

	c.stats.Misses++
	c.list.PushFront(&entry{height: h, dMax: dMax, mesh: built})
	for c.list.Len() > c.capacity {
		c.list.Remove(c.list.Back())
		c.stats.Evictions++
	}

	return built, nil
}

// findAcceptable returns the list element with the lowest k-error among
// those built for dMax, provided that error is within tol*n — the
// tolerance is a fraction of the desired intersection count, not a raw
// error bound. Caller must hold c.mu.
func (c *Cache) findAcceptable(h, n, tol, dMax geometry.Scalar) *list.Element {
	var best *list.Element
	bestErr := geometry.Scalar(0)

	for el := c.list.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry)
		if e.dMax != dMax {
			continue
		}
		err := kError(c.shape, e.height, h, n)
		if best == nil || err < bestErr {
			best, bestErr = el, err
		}
	}

	if best == nil || bestErr > tol*n {
		return nil
	}
	return best
}

// kError is the absolute multiplicative deviation between the number of
// intersections a mesh built for h0 was designed to see (n) and how many
// it would see if reused at h1.
func kError(shape geometry.Shape, h0, h1, n geometry.Scalar) geometry.Scalar {
	k := shape.K(h0, h1)
	diff := n - n*k
	if diff < 0 {
		return -diff
	}
	return diff
}

// Stats returns a snapshot of the cache's cumulative activity.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
