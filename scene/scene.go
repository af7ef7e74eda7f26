package scene

import (
	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/internal/xerrors"
	"github.com/lixenwraith/turbocow/lighting"
	"github.com/lixenwraith/turbocow/materials"
	"github.com/lixenwraith/turbocow/sceneobj"
)

// MeshProvider resolves a PolygonMeshRef to the mesh an OBJ loader (an
// external collaborator, spec.md §1) would return.
type MeshProvider interface {
	Load(ref string) (sceneobj.Mesh, error)
}

// Scene is one optional camera, an ordered list of scene objects, and an
// ordered list of lights (§3 DATA MODEL).
type Scene struct {
	camera  *Camera
	objects []sceneobj.Object
	lights  []lighting.Light

	Width, Height int
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// SetCamera installs the scene's camera.
func (s *Scene) SetCamera(c Camera) { s.camera = &c }

// Camera returns the scene's camera. Panics if none was set, matching the
// original's "expected camera to be present" invariant. FromDescription
// does not check for a camera: a description without one builds a scene
// whose Camera call panics.
func (s *Scene) Camera() Camera {
	if s.camera == nil {
		panic("scene: expected camera to be present")
	}
	return *s.camera
}

// HasCamera reports whether a camera has been set.
func (s *Scene) HasCamera() bool { return s.camera != nil }

// AddObject appends a scene object.
func (s *Scene) AddObject(o sceneobj.Object) { s.objects = append(s.objects, o) }

// Objects returns the ordered scene object list.
func (s *Scene) Objects() []sceneobj.Object { return s.objects }

// AddLight appends a light.
func (s *Scene) AddLight(l lighting.Light) { s.lights = append(s.lights, l) }

// Lights returns the ordered light list.
func (s *Scene) Lights() []lighting.Light { return s.lights }

// defaultResolution is used when a SceneDescription doesn't specify one
// (§4.5 step 4).
const defaultResolution = 1000

// FromDescription builds a Scene from a SceneDescription. Construction is
// total: every object description produces a scene object, or the first
// dangling mesh reference is returned as a *xerrors.MeshReferenceError,
// fatal to the caller (§3, §7) — matching the original's per-object
// panic, surfaced here as a Go error rather than an actual panic so a
// caller can log and exit cleanly instead of unwinding the stack.
func FromDescription(desc SceneDescription, meshes MeshProvider) (*Scene, error) {
	s := New()

	s.Width, s.Height = desc.RenderOptions.Width, desc.RenderOptions.Height
	if s.Width <= 0 || s.Height <= 0 {
		s.Width, s.Height = defaultResolution, defaultResolution
	}

	for _, cd := range desc.Cameras {
		transform := geometry.NewTransform(cd.Position, cd.Rotation)
		s.SetCamera(NewCameraFromHalfSize(transform, cd.HalfSize))
	}

	for _, od := range desc.Objects {
		obj, err := objectFromDescription(od, meshes)
		if err != nil {
			return nil, xerrors.NewMeshReferenceError(od.ID, err)
		}
		s.AddObject(obj)
	}

	for _, ld := range desc.Lights {
		s.AddLight(lightFromDescription(ld))
	}

	return s, nil
}

func materialFromDescription(md MaterialDescription) materials.Material {
	switch md.Kind {
	case MaterialReflective:
		return materials.Reflective()
	default:
		color := materials.RGB{
			R: float64(md.R) / 255,
			G: float64(md.G) / 255,
			B: float64(md.B) / 255,
		}
		return materials.Lambertian(md.Albedo, color)
	}
}

func objectFromDescription(od ObjectDescription, meshes MeshProvider) (sceneobj.Object, error) {
	transform := geometry.NewTransform(od.Position, od.Rotation)
	material := materialFromDescription(od.Material)

	switch od.Mesh {
	case MeshSphere:
		return sceneobj.NewSphere(transform, material, od.SphereRadius), nil
	case MeshPlane:
		return sceneobj.NewPlane(transform, material), nil
	case MeshTriangle:
		return sceneobj.NewTriangleObject(transform, material,
			od.TriangleV0, od.TriangleV1, od.TriangleV2,
			od.TriangleN0, od.TriangleN1, od.TriangleN2), nil
	case MeshPolygon:
		if meshes == nil {
			return nil, errNoMeshProvider
		}
		mesh, err := meshes.Load(od.PolygonMeshRef)
		if err != nil {
			return nil, err
		}
		return sceneobj.NewPolygonObject(transform, material, mesh)
	default:
		return nil, errUnknownMeshKind
	}
}

func lightFromDescription(ld LightDescription) lighting.Light {
	transform := geometry.NewTransform(ld.Position, ld.Rotation)
	if ld.Kind == LightPoint {
		return lighting.NewPointLight(transform, ld.Intensity)
	}
	return lighting.NewDistantLight(transform, ld.Intensity)
}
