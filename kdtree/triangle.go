// Package kdtree implements the triangle primitive, the SAH-built
// acceleration structure over triangles, and ray traversal (§3, §4.1,
// §4.2 "Triangle (Möller–Trumbore)").
package kdtree

import "github.com/lixenwraith/turbocow/geometry"

// moellerEpsilon guards the Möller–Trumbore determinant test against
// near-parallel rays.
const moellerEpsilon = 1e-6

// Intersection is the result of a successful ray/surface hit.
type Intersection struct {
	RayDistance float64
	Normal      geometry.Vector3
}

// Triangle holds three vertices (with optional per-vertex normals) owned
// by a transform. Transformed positions and edges are precomputed once at
// construction and never recomputed during intersection.
type Triangle struct {
	v0, v1, v2    geometry.Vector3 // original (object-space) vertices
	n0, n1, n2    geometry.Vector3 // original (object-space) normals, may be zero
	tv0, tv1, tv2 geometry.Vector3 // transformed (world-space) vertices
	e1, e2        geometry.Vector3 // tv1-tv0, tv2-tv0
	geomNormal    geometry.Vector3 // fallback geometric normal
}

// NewTriangle builds a Triangle, applying transform to the vertices once.
// Per-vertex normals may be the zero vector, in which case the geometric
// normal is used as a fallback at intersection time.
func NewTriangle(transform geometry.Transform, v0, v1, v2, n0, n1, n2 geometry.Vector3) Triangle {
	tv0 := transform.ApplyToPoint(v0)
	tv1 := transform.ApplyToPoint(v1)
	tv2 := transform.ApplyToPoint(v2)
	e1 := tv1.Sub(tv0)
	e2 := tv2.Sub(tv0)

	return Triangle{
		v0: v0, v1: v1, v2: v2,
		n0: n0, n1: n1, n2: n2,
		tv0: tv0, tv1: tv1, tv2: tv2,
		e1: e1, e2: e2,
		geomNormal: e1.Cross(e2).Normalized(),
	}
}

// Vertices returns the triangle's transformed (world-space) vertices.
func (t *Triangle) Vertices() (geometry.Vector3, geometry.Vector3, geometry.Vector3) {
	return t.tv0, t.tv1, t.tv2
}

// BoundingBox returns the box enclosing the triangle's transformed vertices.
func (t *Triangle) BoundingBox() geometry.BoundingBox {
	return geometry.BoundingBoxFromTriangle(t.tv0, t.tv1, t.tv2)
}

// Intersect performs the Möller–Trumbore ray-triangle test against the
// precomputed transformed vertices and edges (§4.2).
func (t *Triangle) Intersect(r geometry.Ray) (Intersection, bool) {
	p := r.Direction.Cross(t.e2)
	det := t.e1.Dot(p)
	if det > -moellerEpsilon && det < moellerEpsilon {
		return Intersection{}, false
	}
	inv := 1 / det

	s := r.Origin.Sub(t.tv0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return Intersection{}, false
	}

	q := s.Cross(t.e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return Intersection{}, false
	}

	dist := t.e2.Dot(q) * inv
	if dist < 0 {
		return Intersection{}, false
	}

	return Intersection{RayDistance: dist, Normal: t.normalAt(u, v)}, true
}

// normalAt interpolates the per-vertex normals at barycentric (u,v),
// falling back to the geometric normal when any vertex normal is zero.
func (t *Triangle) normalAt(u, v float64) geometry.Vector3 {
	if t.n0 == geometry.Zero || t.n1 == geometry.Zero || t.n2 == geometry.Zero {
		return t.geomNormal
	}
	w := 1 - u - v
	n := t.n0.Scale(w).Add(t.n1.Scale(u)).Add(t.n2.Scale(v))
	return n.Normalized()
}
