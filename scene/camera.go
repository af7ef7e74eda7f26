package scene

import (
	"math"

	"github.com/lixenwraith/turbocow/geometry"
)

// Camera is a transform plus a field of view in radians (§3 DATA MODEL).
type Camera struct {
	Transform geometry.Transform
	FoV       float64
}

// NewCameraFromHalfSize builds a camera whose field of view is derived
// from a "half-size" value via 2*atan(h), matching the scene format's
// lens convention.
func NewCameraFromHalfSize(transform geometry.Transform, halfSize float64) Camera {
	return Camera{Transform: transform, FoV: 2 * math.Atan(halfSize)}
}

// NewCamera builds a camera from an explicit field of view in radians.
func NewCamera(transform geometry.Transform, fov float64) Camera {
	return Camera{Transform: transform, FoV: fov}
}
