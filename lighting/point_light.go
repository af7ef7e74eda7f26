package lighting

import (
	"math"

	"github.com/lixenwraith/turbocow/geometry"
)

// PointLight falls off with the inverse square of distance.
type PointLight struct {
	transform geometry.Transform
	Intensity float64
}

// NewPointLight builds a point light with the given transform and intensity.
func NewPointLight(transform geometry.Transform, intensity float64) *PointLight {
	return &PointLight{transform: transform, Intensity: intensity}
}

// Transform implements Light.
func (l *PointLight) Transform() geometry.Transform {
	return l.transform
}

// Illuminate implements Light: intensity * max(0, n·(-rotation)) / (4*pi*distance^2).
func (l *PointLight) Illuminate(normal geometry.Vector3, distance float64) float64 {
	dir := direction(l.transform)
	falloff := 4 * math.Pi * distance * distance
	if falloff == 0 {
		return 0
	}
	return l.Intensity * clamp0(normal.Dot(dir)) / falloff
}
