package scene

import (
	"testing"

	"github.com/lixenwraith/turbocow/geometry"
)

func TestDescriptionRoundTrip(t *testing.T) {
	want := SceneDescription{
		Cameras: []CameraDescription{
			{Position: geometry.NewVector3(0, 1, 5), Rotation: geometry.Zero, HalfSize: 1},
		},
		Objects: []ObjectDescription{
			{ID: 1, Mesh: MeshSphere, SphereRadius: 2, Material: MaterialDescription{Kind: MaterialReflective}},
		},
		Lights: []LightDescription{
			{Kind: LightPoint, Intensity: 100, Position: geometry.NewVector3(0, 5, 0)},
		},
		RenderOptions: RenderOptions{Width: 640, Height: 480},
	}

	data, err := EncodeDescription(want)
	if err != nil {
		t.Fatalf("EncodeDescription: %v", err)
	}

	got, err := DecodeDescription(data)
	if err != nil {
		t.Fatalf("DecodeDescription: %v", err)
	}

	if len(got.Cameras) != 1 || got.Cameras[0].HalfSize != 1 {
		t.Fatalf("camera round trip mismatch: %+v", got.Cameras)
	}
	if len(got.Objects) != 1 || got.Objects[0].SphereRadius != 2 {
		t.Fatalf("object round trip mismatch: %+v", got.Objects)
	}
	if got.RenderOptions != want.RenderOptions {
		t.Fatalf("render options mismatch: got %+v, want %+v", got.RenderOptions, want.RenderOptions)
	}
}
