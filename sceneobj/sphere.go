package sceneobj

import (
	"math"

	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/kdtree"
	"github.com/lixenwraith/turbocow/materials"
)

// Sphere is centered at its transform's position with a world-space radius.
type Sphere struct {
	transform geometry.Transform
	material  materials.Material
	radius    float64
}

// NewSphere builds a sphere.
func NewSphere(transform geometry.Transform, material materials.Material, radius float64) *Sphere {
	return &Sphere{transform: transform, material: material, radius: radius}
}

// Transform implements Object.
func (s *Sphere) Transform() geometry.Transform { return s.transform }

// Material implements Object.
func (s *Sphere) Material() materials.Material { return s.material }

// CheckIntersection solves |o + t*d - c|^2 = r^2 and returns the smallest
// non-negative root (§4.2 "Sphere").
func (s *Sphere) CheckIntersection(r geometry.Ray) (kdtree.Intersection, bool) {
	center := s.transform.Position
	oc := r.Origin.Sub(center)

	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return kdtree.Intersection{}, false
	}

	sqrtDisc := math.Sqrt(disc)
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)

	t, ok := smallestNonNegative(t0, t1)
	if !ok {
		return kdtree.Intersection{}, false
	}

	hit := r.Point(t)
	normal := hit.Sub(center).Normalized()
	return kdtree.Intersection{RayDistance: t, Normal: normal}, true
}

func smallestNonNegative(a, b float64) (float64, bool) {
	if a > b {
		a, b = b, a
	}
	if a >= 0 {
		return a, true
	}
	if b >= 0 {
		return b, true
	}
	return 0, false
}
