package kdtree

import (
	"testing"

	"github.com/lixenwraith/turbocow/geometry"
)

// E1 Triangle hit.
func TestTriangleIntersectHit(t *testing.T) {
	tri := NewTriangle(
		geometry.IdentityTransform(),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.Zero, geometry.Zero, geometry.Zero,
	)

	r := geometry.NewRay(geometry.NewVector3(0.25, 0.25, 1), geometry.NewVector3(0, 0, -1))
	hit, ok := tri.Intersect(r)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if diff := hit.RayDistance - 1.0; diff < -1e-4 || diff > 1e-4 {
		t.Fatalf("RayDistance = %v, want ~1", hit.RayDistance)
	}
	if !hit.Normal.Eq(geometry.NewVector3(0, 0, 1)) {
		t.Fatalf("Normal = %v, want (0,0,1)", hit.Normal)
	}
}

func TestTriangleIntersectMiss(t *testing.T) {
	tri := NewTriangle(
		geometry.IdentityTransform(),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.Zero, geometry.Zero, geometry.Zero,
	)

	r := geometry.NewRay(geometry.NewVector3(5, 5, 1), geometry.NewVector3(0, 0, -1))
	if _, ok := tri.Intersect(r); ok {
		t.Fatalf("expected a miss")
	}
}

func TestTriangleNormalFallbackToGeometric(t *testing.T) {
	tri := NewTriangle(
		geometry.IdentityTransform(),
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.Zero, geometry.NewVector3(1, 0, 0), geometry.NewVector3(1, 0, 0),
	)
	r := geometry.NewRay(geometry.NewVector3(0.25, 0.25, 1), geometry.NewVector3(0, 0, -1))
	hit, ok := tri.Intersect(r)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !hit.Normal.Eq(geometry.NewVector3(0, 0, 1)) {
		t.Fatalf("Normal = %v, want geometric (0,0,1)", hit.Normal)
	}
}
