package scene

import (
	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/lighting"
	"github.com/lixenwraith/turbocow/materials"
	"github.com/lixenwraith/turbocow/sceneobj"
)

// Demo builds a small in-memory scene with no file dependency: a camera, a
// reflective sphere over a solid-colored plane, lit by one point light.
// Useful for smoke-testing the render pipeline without a ".cowscene"
// fixture (supplemented feature, grounded on
// original_source/turbocow/src/scenes/demo.rs).
func Demo() *Scene {
	s := New()
	s.Width, s.Height = defaultResolution, defaultResolution

	s.SetCamera(NewCameraFromHalfSize(
		geometry.NewTransform(geometry.NewVector3(0, 0.5, 5), geometry.Zero),
		1.0,
	))

	solidBlue := materials.Lambertian(0.18, materials.RGB{R: 13.0 / 255, G: 71.0 / 255, B: 161.0 / 255})
	s.AddObject(sceneobj.NewPlane(geometry.IdentityTransform(), solidBlue))

	s.AddObject(sceneobj.NewSphere(
		geometry.NewTransform(geometry.NewVector3(0, 2, 0), geometry.Zero),
		materials.Reflective(),
		1.0,
	))

	s.AddLight(lighting.NewPointLight(
		geometry.NewTransform(geometry.NewVector3(0, 8, 10), geometry.NewVector3(45, -45, -70)),
		1000.0,
	))

	return s
}
