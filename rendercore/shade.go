package rendercore

import (
	"math"

	"github.com/lixenwraith/turbocow/geometry"
	"github.com/lixenwraith/turbocow/kdtree"
	"github.com/lixenwraith/turbocow/materials"
	"github.com/lixenwraith/turbocow/sceneobj"
	"github.com/lixenwraith/turbocow/scene"
)

// MaxDepth is the recursion budget for secondary rays (§4.3).
const MaxDepth = 10

// ShadowBias offsets secondary ray origins along the surface normal to
// avoid self-intersection (§4.3, glossary "Bias").
const ShadowBias = 0.001

// ReflectionAttenuation is the factor applied to a reflective surface's
// recursive contribution.
const ReflectionAttenuation = 0.8

// BackgroundColor is returned when a ray hits nothing, or exceeds MaxDepth.
var BackgroundColor = materials.RGB{R: 192.0 / 255, G: 212.0 / 255, B: 250.0 / 255}

// nearestHitWithMaterial performs a linear scan over scene objects
// (§4.3: "by linear scan over scene objects") and returns the nearest
// intersection and the material of the object it belongs to.
func nearestHitWithMaterial(r geometry.Ray, objects []sceneobj.Object) (kdtree.Intersection, materials.Material, bool) {
	best := kdtree.Intersection{}
	var bestMat materials.Material
	found := false

	for _, obj := range objects {
		hit, ok := obj.CheckIntersection(r)
		if !ok {
			continue
		}
		if !found || hit.RayDistance < best.RayDistance {
			best, bestMat, found = hit, obj.Material(), true
		}
	}
	return best, bestMat, found
}

// occluded reports whether any scene object intersects the shadow ray
// before the light (distance strictly less than maxDist).
func occluded(r geometry.Ray, maxDist float64, objects []sceneobj.Object) bool {
	for _, obj := range objects {
		hit, ok := obj.CheckIntersection(r)
		if ok && hit.RayDistance < maxDist {
			return true
		}
	}
	return false
}

// RenderRay casts r into s and returns the shaded color, recursing into
// secondary rays up to MaxDepth (§4.3 step 3).
func RenderRay(r geometry.Ray, s *scene.Scene, depth int) materials.RGB {
	if depth > MaxDepth {
		return BackgroundColor
	}

	hit, mat, ok := nearestHitWithMaterial(r, s.Objects())
	if !ok {
		return BackgroundColor
	}

	point := r.Point(hit.RayDistance)
	normal := hit.Normal

	if len(s.Lights()) == 0 && mat.Kind == materials.KindLambertian {
		return mat.Color
	}

	switch mat.Kind {
	case materials.KindReflective:
		reflected := r.Direction.Reflect(normal)
		origin := point.Add(normal.Scale(ShadowBias))
		bounced := RenderRay(geometry.NewRay(origin, reflected), s, depth+1)
		return bounced.Scale(ReflectionAttenuation)
	default:
		return shadeLambertian(point, normal, mat, s)
	}
}

// shadeLambertian accumulates illumination from every unoccluded light,
// clamped to <= 1 total intensity (§4.3 "Lambertian").
func shadeLambertian(point, normal geometry.Vector3, mat materials.Material, s *scene.Scene) materials.RGB {
	intensity := 0.0

	for _, light := range s.Lights() {
		lightPos := light.Transform().Position
		toLight := lightPos.Sub(point)
		distance := toLight.Length()

		var direction geometry.Vector3
		if distance == 0 {
			direction = toLight
		} else {
			direction = toLight.Scale(1 / distance)
		}

		shadowOrigin := point.Add(normal.Scale(ShadowBias))
		shadowRay := geometry.NewRay(shadowOrigin, direction)
		if occluded(shadowRay, distance, s.Objects()) {
			continue
		}

		intensity += (mat.Albedo / math.Pi) * light.Illuminate(normal, distance)
	}

	if intensity > 1 {
		intensity = 1
	}

	return mat.Color.Scale(intensity)
}
