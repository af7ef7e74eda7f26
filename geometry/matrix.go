package geometry

import "math"

// Matrix44 is a row-major 4x4 affine matrix.
type Matrix44 struct {
	m [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix44 {
	var mat Matrix44
	for i := 0; i < 4; i++ {
		mat.m[i][i] = 1
	}
	return mat
}

// Translation returns a matrix that translates by v.
func Translation(v Vector3) Matrix44 {
	mat := Identity()
	mat.m[0][3] = v.X
	mat.m[1][3] = v.Y
	mat.m[2][3] = v.Z
	return mat
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RotationX returns a matrix rotating about the X axis by degDeg degrees.
func RotationX(degDeg float64) Matrix44 {
	a := degToRad(degDeg)
	s, c := math.Sin(a), math.Cos(a)
	mat := Identity()
	mat.m[1][1], mat.m[1][2] = c, -s
	mat.m[2][1], mat.m[2][2] = s, c
	return mat
}

// RotationY returns a matrix rotating about the Y axis by degDeg degrees.
func RotationY(degDeg float64) Matrix44 {
	a := degToRad(degDeg)
	s, c := math.Sin(a), math.Cos(a)
	mat := Identity()
	mat.m[0][0], mat.m[0][2] = c, s
	mat.m[2][0], mat.m[2][2] = -s, c
	return mat
}

// RotationZ returns a matrix rotating about the Z axis by degDeg degrees.
func RotationZ(degDeg float64) Matrix44 {
	a := degToRad(degDeg)
	s, c := math.Sin(a), math.Cos(a)
	mat := Identity()
	mat.m[0][0], mat.m[0][1] = c, -s
	mat.m[1][0], mat.m[1][1] = s, c
	return mat
}

// Mul returns the matrix product v*o (v applied after o, i.e. (v*o)*p == v*(o*p)).
func (v Matrix44) Mul(o Matrix44) Matrix44 {
	var out Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += v.m[i][k] * o.m[k][j]
			}
			out.m[i][j] = sum
		}
	}
	return out
}

// ComposeTransform builds the matrix for a position + Euler rotation
// (degrees), rotation order X then Y then Z, applied before translation:
// M = T * (Rz * Ry * Rx).
func ComposeTransform(position, rotationDeg Vector3) Matrix44 {
	rot := RotationZ(rotationDeg.Z).Mul(RotationY(rotationDeg.Y)).Mul(RotationX(rotationDeg.X))
	return Translation(position).Mul(rot)
}

// ApplyToPoint transforms a point, including translation.
func (v Matrix44) ApplyToPoint(p Vector3) Vector3 {
	x := v.m[0][0]*p.X + v.m[0][1]*p.Y + v.m[0][2]*p.Z + v.m[0][3]
	y := v.m[1][0]*p.X + v.m[1][1]*p.Y + v.m[1][2]*p.Z + v.m[1][3]
	z := v.m[2][0]*p.X + v.m[2][1]*p.Y + v.m[2][2]*p.Z + v.m[2][3]
	return Vector3{x, y, z}
}

// ApplyToVector transforms a direction vector, ignoring translation.
func (v Matrix44) ApplyToVector(d Vector3) Vector3 {
	x := v.m[0][0]*d.X + v.m[0][1]*d.Y + v.m[0][2]*d.Z
	y := v.m[1][0]*d.X + v.m[1][1]*d.Y + v.m[1][2]*d.Z
	z := v.m[2][0]*d.X + v.m[2][1]*d.Y + v.m[2][2]*d.Z
	return Vector3{x, y, z}
}
