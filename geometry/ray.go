package geometry

// Ray is a parametric ray: point(t) = origin + direction*t.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay builds a ray from an origin and direction. The direction is not
// normalized by the constructor; callers normalize where the spec requires it.
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Point returns the point at parameter t along the ray.
func (r Ray) Point(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
