// Package lighting implements the Light sum type and illumination math
// (§3 DATA MODEL, §4.3 "Lights").
package lighting

import "github.com/lixenwraith/turbocow/geometry"

// Light is the common contract for every light variant: it knows its own
// transform and can score illumination reaching a surface.
type Light interface {
	Transform() geometry.Transform
	// Illuminate returns the scalar intensity >= 0 contributed to a
	// surface with the given unit normal at the given distance from the light.
	Illuminate(normal geometry.Vector3, distance float64) float64
}

func clamp0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// direction returns the light's canonical illumination direction: the
// negated, rotated up vector of its transform.
func direction(t geometry.Transform) geometry.Vector3 {
	return t.Up().Negate()
}
