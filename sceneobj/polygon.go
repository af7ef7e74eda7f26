package sceneobj

import (
	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/kdtree"
	"github.com/lixenwraith/turbocow/materials"
)

// MeshVertex is one vertex+normal pair in a loaded mesh's vertex buffer.
// The OBJ loader that produces these is an external collaborator (spec.md
// §1 Out-of-scope); this is the logical shape it hands back.
type MeshVertex struct {
	Position geometry.Vector3
	Normal   geometry.Vector3
}

// MeshFace is one triangulated polygon face.
type MeshFace struct {
	V0, V1, V2 MeshVertex
}

// Mesh is the list of polygons an OBJ loader returns for one object.
type Mesh struct {
	Faces []MeshFace
}

// PolygonObject wraps a mesh as triangles and delegates intersection to a
// KD-tree built once over them (§4.5 C5).
type PolygonObject struct {
	transform geometry.Transform
	material  materials.Material
	tree      *kdtree.Tree
}

// NewPolygonObject builds the KD-tree for mesh's faces under transform.
// Returns an error (propagated as a fatal MeshReferenceError by the scene
// builder) when the mesh has no faces.
func NewPolygonObject(transform geometry.Transform, material materials.Material, mesh Mesh) (*PolygonObject, error) {
	triangles := make([]kdtree.Triangle, len(mesh.Faces))
	for i, f := range mesh.Faces {
		triangles[i] = kdtree.NewTriangle(
			transform,
			f.V0.Position, f.V1.Position, f.V2.Position,
			f.V0.Normal, f.V1.Normal, f.V2.Normal,
		)
	}

	tree, err := kdtree.Build(triangles)
	if err != nil {
		return nil, err
	}

	return &PolygonObject{transform: transform, material: material, tree: tree}, nil
}

// Transform implements Object.
func (p *PolygonObject) Transform() geometry.Transform { return p.transform }

// Material implements Object.
func (p *PolygonObject) Material() materials.Material { return p.material }

// CheckIntersection implements Object by delegating to the KD-tree.
func (p *PolygonObject) CheckIntersection(r geometry.Ray) (kdtree.Intersection, bool) {
	return p.tree.Intersect(r)
}
