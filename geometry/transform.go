package geometry

// Transform is an immutable position + Euler rotation (degrees) pair with
// its composed matrix precomputed at construction time.
type Transform struct {
	Position Vector3
	Rotation Vector3 // Euler angles in degrees, applied X then Y then Z
	matrix   Matrix44
}

// NewTransform builds a Transform and precomputes its matrix.
func NewTransform(position, rotationDeg Vector3) Transform {
	return Transform{
		Position: position,
		Rotation: rotationDeg,
		matrix:   ComposeTransform(position, rotationDeg),
	}
}

// IdentityTransform returns the identity transform (no translation or rotation).
func IdentityTransform() Transform {
	return NewTransform(Zero, Zero)
}

// Matrix returns the precomputed composed matrix.
func (t Transform) Matrix() Matrix44 {
	return t.matrix
}

// ApplyToPoint transforms a point by this transform's matrix.
func (t Transform) ApplyToPoint(p Vector3) Vector3 {
	return t.matrix.ApplyToPoint(p)
}

// ApplyToVector transforms a direction vector, ignoring translation.
func (t Transform) ApplyToVector(d Vector3) Vector3 {
	return t.matrix.ApplyToVector(d)
}

// Up returns the transform's rotation applied to (0,1,0), normalized. The
// lighting package negates it to get a light's illumination direction.
func (t Transform) Up() Vector3 {
	return t.matrix.ApplyToVector(NewVector3(0, 1, 0)).Normalized()
}
