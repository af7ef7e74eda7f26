package scene

import "errors"

var (
	errNoMeshProvider  = errors.New("scene: object references a polygon mesh but no MeshProvider was given")
	errUnknownMeshKind = errors.New("scene: object has an unknown mesh kind")
)
