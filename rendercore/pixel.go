// Package rendercore implements per-pixel camera ray generation and
// recursive ray-scene shading (§4.3 PIXEL RENDER).
package rendercore

import (
	"math"

	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/scene"
)

// PrimaryRay computes the world-space camera ray through pixel (x,y) of a
// width x height image rendered from cam (§4.3 step 1-2).
func PrimaryRay(cam scene.Camera, width, height, x, y int) geometry.Ray {
	aspect := float64(width) / float64(height)

	nx := 2*(float64(x)+0.5)/float64(width) - 1
	ny := 1 - 2*(float64(y)+0.5)/float64(height)

	halfFoV := math.Tan(cam.FoV / 2)
	cx := nx * aspect * halfFoV
	cy := ny * halfFoV

	dCam := geometry.NewVector3(cx, cy, -1).Normalized()

	origin := cam.Transform.Position
	direction := cam.Transform.ApplyToVector(dCam).Normalized()

	return geometry.NewRay(origin, direction)
}
