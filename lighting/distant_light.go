package lighting

import "github.com/lixenwraith/turbocow/geometry"

// DistantLight approximates a light source infinitely far away: intensity
// does not fall off with distance.
type DistantLight struct {
	transform geometry.Transform
	Intensity float64
}

// NewDistantLight builds a distant light with the given transform and intensity.
func NewDistantLight(transform geometry.Transform, intensity float64) *DistantLight {
	return &DistantLight{transform: transform, Intensity: intensity}
}

// Transform implements Light.
func (l *DistantLight) Transform() geometry.Transform {
	return l.transform
}

// Illuminate implements Light: intensity * max(0, n·(-rotation)).
// Canonical per spec.md §9 Open Questions: always clamp with max(0, ...).
func (l *DistantLight) Illuminate(normal geometry.Vector3, _ float64) float64 {
	dir := direction(l.transform)
	return l.Intensity * clamp0(normal.Dot(dir))
}
