package cache

import (
	"math"
	"testing"

	"github.com/achilleasa/visualmesh/geometry"
)

func TestGetReusesWithinTolerance(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	c := New(shape, 1e-3, 10000, 4)

	m1, err := c.Get(1.0, 1.0, 0.5, math.Inf(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m2, err := c.Get(1.0, 1.0, 0.5, math.Inf(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m1 != m2 {
		t.Fatalf("expected an identical height to reuse the same mesh")
	}
	if s := c.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Fatalf("expected 1 hit and 1 miss, got %+v", s)
	}
}

func TestGetBuildsNewMeshOutsideTolerance(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	c := New(shape, 1e-3, 10000, 4)

	m1, err := c.Get(1.0, 1.0, 0.01, math.Inf(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m2, err := c.Get(100.0, 1.0, 0.01, math.Inf(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m1 == m2 {
		t.Fatalf("expected a drastically different height to require a new mesh")
	}
	if s := c.Stats(); s.Misses != 2 {
		t.Fatalf("expected 2 misses, got %+v", s)
	}
}

func TestGetEvictsLeastRecentlyUsed(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	c := New(shape, 1e-3, 10000, 2)

	heights := []geometry.Scalar{1, 50, 500}

	first, err := c.Get(heights[0], 1.0, 1e-6, math.Inf(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := c.Get(heights[1], 1.0, 1e-6, math.Inf(1)); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := c.Get(heights[2], 1.0, 1e-6, math.Inf(1)); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if s := c.Stats(); s.Evictions == 0 {
		t.Fatalf("expected at least one eviction once capacity was exceeded")
	}

	// The first mesh should have been evicted; requesting its height again
	// should be a fresh miss, not a hit against a kept pointer.
	again, err := c.Get(heights[0], 1.0, 1e-6, math.Inf(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again == first {
		t.Fatalf("expected the evicted mesh to have been rebuilt, not reused")
	}
}

func TestGetRespectsMaxDistancePartition(t *testing.T) {
	shape := geometry.NewSphere(0.1)
	c := New(shape, 1e-3, 10000, 4)

	m1, err := c.Get(1.0, 1.0, 10, 5.0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m2, err := c.Get(1.0, 1.0, 10, math.Inf(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m1 == m2 {
		t.Fatalf("expected different max distances to never share a cached mesh even with a huge tolerance")
	}
}
