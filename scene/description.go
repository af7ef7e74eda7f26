package scene

import "github.com/lixenwraith/turbocow/geometry"

// SceneDescription is the logical schema a scene file parser (an external
// collaborator, spec.md §1 Out-of-scope) produces: cameras, objects with
// transforms, material references, mesh references, and render options.
// Only this logical model is owned by the core; the on-disk ".cowscene"
// format and its parser live outside this package.
type SceneDescription struct {
	Cameras      []CameraDescription
	Objects      []ObjectDescription
	Lights       []LightDescription
	RenderOptions RenderOptions
}

// CameraDescription describes one camera entry.
type CameraDescription struct {
	Position geometry.Vector3
	Rotation geometry.Vector3 // Euler degrees
	HalfSize float64
}

// MeshKind distinguishes the geometric variant an ObjectDescription refers to.
type MeshKind uint8

const (
	MeshSphere MeshKind = iota
	MeshPlane
	MeshTriangle
	MeshPolygon
)

// ObjectDescription describes one scene object entry, referencing a mesh
// and an (optional) material by value rather than by a separate id table —
// the spec.md schema allows either; this core only consumes the resolved
// form, with id-based lookups the responsibility of the external parser.
type ObjectDescription struct {
	ID       int
	Position geometry.Vector3
	Rotation geometry.Vector3

	Mesh MeshKind

	SphereRadius float64

	TriangleV0, TriangleV1, TriangleV2 geometry.Vector3
	TriangleN0, TriangleN1, TriangleN2 geometry.Vector3

	// PolygonMeshRef names the external OBJ resource to resolve via
	// MeshProvider; empty unless Mesh == MeshPolygon.
	PolygonMeshRef string

	Material MaterialDescription
}

// MaterialKind distinguishes the Material sum type for description purposes.
type MaterialKind uint8

const (
	MaterialLambertian MaterialKind = iota
	MaterialReflective
)

// MaterialDescription describes a material reference (§3 DATA MODEL).
type MaterialDescription struct {
	Kind   MaterialKind
	Albedo float64
	R, G, B uint8
}

// LightKind distinguishes the Light sum type for description purposes.
type LightKind uint8

const (
	LightDistant LightKind = iota
	LightPoint
)

// LightDescription describes a light entry.
type LightDescription struct {
	Kind      LightKind
	Position  geometry.Vector3
	Rotation  geometry.Vector3
	Intensity float64
}

// RenderOptions holds the render resolution. Width/Height of 0 mean
// "unspecified", triggering the coordinator's 1000x1000 fallback (§4.5).
type RenderOptions struct {
	Width, Height int
}
