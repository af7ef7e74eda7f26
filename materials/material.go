// Package materials defines the shading material sum type (§3 DATA MODEL).
package materials

// RGB is a color with 0-1 float components per channel.
type RGB struct {
	R, G, B float64
}

// Scale returns the color scaled by a uniform intensity.
func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Mul returns the componentwise product of two colors.
func (c RGB) Mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Kind distinguishes the Material sum type's variants.
type Kind uint8

const (
	// KindLambertian is a diffuse material shaded with color*(albedo/pi)*illumination.
	KindLambertian Kind = iota
	// KindReflective mirrors incoming rays about the surface normal.
	KindReflective
)

// Material is a sum type: Lambertian{albedo, color} or Reflective.
type Material struct {
	Kind    Kind
	Albedo  float64
	Color   RGB
}

// Lambertian constructs a diffuse material.
func Lambertian(albedo float64, color RGB) Material {
	return Material{Kind: KindLambertian, Albedo: albedo, Color: color}
}

// Reflective constructs a mirror material.
func Reflective() Material {
	return Material{Kind: KindReflective}
}
