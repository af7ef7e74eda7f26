package sceneobj

import (
	"testing"

	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/materials"
)

var _ Object = (*Sphere)(nil)
var _ Object = (*Plane)(nil)
var _ Object = (*TriangleObject)(nil)
var _ Object = (*PolygonObject)(nil)

func TestSphereHit(t *testing.T) {
	s := NewSphere(geometry.NewTransform(geometry.NewVector3(0, 0, 5), geometry.Zero),
		materials.Lambertian(1, materials.RGB{R: 1}), 1)
	r := geometry.NewRay(geometry.Zero, geometry.NewVector3(0, 0, 1))

	hit, ok := s.CheckIntersection(r)
	if !ok {
		t.Fatal("expected a hit on a sphere directly ahead of the ray")
	}
	if hit.RayDistance <= 0 || hit.RayDistance >= 5 {
		t.Fatalf("unexpected hit distance %v, want in (0, 5)", hit.RayDistance)
	}
}

// TestSphereMiss covers spec.md E2: a ray that passes the sphere entirely
// (negative discriminant) reports no intersection.
func TestSphereMiss(t *testing.T) {
	s := NewSphere(geometry.NewTransform(geometry.NewVector3(0, 0, 5), geometry.Zero),
		materials.Lambertian(1, materials.RGB{R: 1}), 1)
	r := geometry.NewRay(geometry.Zero, geometry.NewVector3(1, 0, 0))

	if _, ok := s.CheckIntersection(r); ok {
		t.Fatal("expected no hit for a ray that never crosses the sphere")
	}
}

func TestSphereMissBehindOrigin(t *testing.T) {
	s := NewSphere(geometry.NewTransform(geometry.NewVector3(0, 0, -5), geometry.Zero),
		materials.Lambertian(1, materials.RGB{R: 1}), 1)
	r := geometry.NewRay(geometry.Zero, geometry.NewVector3(0, 0, 1))

	if _, ok := s.CheckIntersection(r); ok {
		t.Fatal("expected no hit when the sphere is entirely behind the ray origin")
	}
}

func TestPlaneHit(t *testing.T) {
	p := NewPlane(geometry.IdentityTransform(), materials.Lambertian(1, materials.RGB{G: 1}))
	r := geometry.NewRay(geometry.NewVector3(0, 1, 0), geometry.NewVector3(0, -1, 0))

	hit, ok := p.CheckIntersection(r)
	if !ok {
		t.Fatal("expected a hit on the plane directly below the ray")
	}
	if hit.RayDistance != 1 {
		t.Fatalf("hit distance = %v, want 1", hit.RayDistance)
	}
}

func TestPlaneMissParallel(t *testing.T) {
	p := NewPlane(geometry.IdentityTransform(), materials.Lambertian(1, materials.RGB{G: 1}))
	r := geometry.NewRay(geometry.NewVector3(0, 1, 0), geometry.NewVector3(1, 0, 0))

	if _, ok := p.CheckIntersection(r); ok {
		t.Fatal("expected no hit for a ray parallel to the plane")
	}
}
