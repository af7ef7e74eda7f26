package sceneobj

import (
	"math"

	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/kdtree"
	"github.com/lixenwraith/turbocow/materials"
)

// planeParallelEpsilon guards against rays parallel to the plane (§4.2).
const planeParallelEpsilon = 1e-10

// Plane is an infinite plane oriented by -Y under the transform's rotation,
// passing through the transform's position.
type Plane struct {
	transform geometry.Transform
	material  materials.Material
	normal    geometry.Vector3
}

// NewPlane builds a plane whose orientation is -Y rotated by transform.
func NewPlane(transform geometry.Transform, material materials.Material) *Plane {
	n := transform.ApplyToVector(geometry.NewVector3(0, -1, 0)).Normalized()
	return &Plane{transform: transform, material: material, normal: n}
}

// Transform implements Object.
func (p *Plane) Transform() geometry.Transform { return p.transform }

// Material implements Object.
func (p *Plane) Material() materials.Material { return p.material }

// CheckIntersection implements Object (§4.2 "Plane").
func (p *Plane) CheckIntersection(r geometry.Ray) (kdtree.Intersection, bool) {
	denom := p.normal.Dot(r.Direction)
	if math.Abs(denom) <= planeParallelEpsilon {
		return kdtree.Intersection{}, false
	}

	t := p.transform.Position.Sub(r.Origin).Dot(p.normal) / denom
	if t < 0 {
		return kdtree.Intersection{}, false
	}

	return kdtree.Intersection{RayDistance: t, Normal: p.normal.Negate()}, true
}
