// Package sceneobj implements the SceneObject sum type's variants: Sphere,
// Plane, Triangle, and PolygonObject (§3 DATA MODEL, §4.2).
package sceneobj

import (
	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/kdtree"
	"github.com/lixenwraith/turbocow/materials"
)

// Object is the common contract every SceneObject variant satisfies. No
// hierarchy tree is owned here, just the flat variant set (§9 DESIGN NOTES).
type Object interface {
	Transform() geometry.Transform
	Material() materials.Material
	CheckIntersection(r geometry.Ray) (kdtree.Intersection, bool)
}
