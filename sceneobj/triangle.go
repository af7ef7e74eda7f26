package sceneobj

import (
	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/kdtree"
	"github.com/lixenwraith/turbocow/materials"
)

// TriangleObject is a single-triangle SceneObject, as distinct from
// PolygonObject which wraps an entire mesh behind a KD-tree.
type TriangleObject struct {
	transform geometry.Transform
	material  materials.Material
	tri       kdtree.Triangle
}

// NewTriangleObject builds a standalone triangle scene object.
func NewTriangleObject(transform geometry.Transform, material materials.Material, v0, v1, v2, n0, n1, n2 geometry.Vector3) *TriangleObject {
	return &TriangleObject{
		transform: transform,
		material:  material,
		tri:       kdtree.NewTriangle(transform, v0, v1, v2, n0, n1, n2),
	}
}

// Transform implements Object.
func (t *TriangleObject) Transform() geometry.Transform { return t.transform }

// Material implements Object.
func (t *TriangleObject) Material() materials.Material { return t.material }

// CheckIntersection implements Object by delegating to the cached triangle.
func (t *TriangleObject) CheckIntersection(r geometry.Ray) (kdtree.Intersection, bool) {
	return t.tri.Intersect(r)
}
