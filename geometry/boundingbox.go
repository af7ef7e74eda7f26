package geometry

import "math"

// BoundingBox is an axis-aligned bounding box.
type BoundingBox struct {
	Min, Max Vector3
}

func minComponents(a, b Vector3) Vector3 {
	return Vector3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

func maxComponents(a, b Vector3) Vector3 {
	return Vector3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// BoundingBoxFromTriangle builds the box enclosing three vertices.
func BoundingBoxFromTriangle(v0, v1, v2 Vector3) BoundingBox {
	min := minComponents(minComponents(v0, v1), v2)
	max := maxComponents(maxComponents(v0, v1), v2)
	return BoundingBox{Min: min, Max: max}
}

// Extend mutates the box to include the given triangle's vertices.
func (b *BoundingBox) Extend(v0, v1, v2 Vector3) {
	t := BoundingBoxFromTriangle(v0, v1, v2)
	b.Min = minComponents(b.Min, t.Min)
	b.Max = maxComponents(b.Max, t.Max)
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Min: minComponents(b.Min, o.Min),
		Max: maxComponents(b.Max, o.Max),
	}
}

// Area returns the box's surface area, used by the SAH cost function.
func (b BoundingBox) Area() float64 {
	d := b.Max.Sub(b.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// slabEpsilon guards against divide-by-zero when a ray direction component
// is zero, per spec.md §4.1.
const slabEpsilon = 1e-6

// Hit performs the slab-method ray/AABB intersection test used during
// KD-tree traversal. It reports only whether the ray intersects the box,
// not the hit distance.
func (b BoundingBox) Hit(r Ray) bool {
	tMin, tMax := math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := r.Origin.Component(axis)
		dir := r.Direction.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if math.Abs(dir) < slabEpsilon {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		inv := 1 / dir
		t0 := (lo - origin) * inv
		t1 := (hi - origin) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}

	return tMax >= math.Max(tMin, 0)
}
