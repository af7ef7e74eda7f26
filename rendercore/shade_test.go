package rendercore

import (
	"testing"

	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/materials"
	"github.com/lixenwraith/turbocow/scene"
	"github.com/lixenwraith/turbocow/sceneobj"
)

func TestRenderRayPastMaxDepthReturnsBackground(t *testing.T) {
	s := scene.New()
	// An unlit Lambertian sphere in the ray's path would otherwise return
	// its color, so only the depth guard can produce the background here.
	s.AddObject(sceneobj.NewSphere(geometry.NewTransform(geometry.NewVector3(0, 0, -5), geometry.Zero),
		materials.Lambertian(0.18, materials.RGB{R: 1}), 1.0))
	r := geometry.NewRay(geometry.Zero, geometry.NewVector3(0, 0, -1))
	got := RenderRay(r, s, MaxDepth+1)
	if got != BackgroundColor {
		t.Fatalf("RenderRay over budget = %v, want background", got)
	}
}

func TestRenderRayMissReturnsBackground(t *testing.T) {
	s := scene.New()
	r := geometry.NewRay(geometry.NewVector3(0, 0, 5), geometry.NewVector3(0, 0, 1))
	got := RenderRay(r, s, 0)
	if got != BackgroundColor {
		t.Fatalf("RenderRay miss = %v, want background", got)
	}
}

func TestRenderRayUnlitLambertianReturnsUnshadedColor(t *testing.T) {
	s := scene.New()
	color := materials.RGB{R: 0.5, G: 0.25, B: 0.1}
	sphere := sceneobj.NewSphere(geometry.IdentityTransform(), materials.Lambertian(0.18, color), 1.0)
	s.AddObject(sphere)

	r := geometry.NewRay(geometry.NewVector3(0, 0, 5), geometry.NewVector3(0, 0, -1))
	got := RenderRay(r, s, 0)
	if got != color {
		t.Fatalf("RenderRay unlit = %v, want %v", got, color)
	}
}

// Lambertian shading is componentwise <= material color (§8 property 4).
func TestShadeLambertianClampedToColor(t *testing.T) {
	s := scene.New()
	color := materials.RGB{R: 0.8, G: 0.6, B: 0.4}
	sphere := sceneobj.NewSphere(geometry.IdentityTransform(), materials.Lambertian(0.18, color), 1.0)
	s.AddObject(sphere)
	s.AddLight(brightDistantLight())

	r := geometry.NewRay(geometry.NewVector3(0, 0, 5), geometry.NewVector3(0, 0, -1))
	got := RenderRay(r, s, 0)

	if got.R > color.R+1e-9 || got.G > color.G+1e-9 || got.B > color.B+1e-9 {
		t.Fatalf("shaded color %v exceeds material color %v", got, color)
	}
}

type stubLight struct {
	transform geometry.Transform
}

func (l stubLight) Transform() geometry.Transform { return l.transform }
func (l stubLight) Illuminate(normal geometry.Vector3, distance float64) float64 {
	return 1000 // deliberately oversaturating, to exercise the intensity clamp
}

func brightDistantLight() stubLight {
	return stubLight{transform: geometry.NewTransform(geometry.NewVector3(0, 0, 10), geometry.Zero)}
}
