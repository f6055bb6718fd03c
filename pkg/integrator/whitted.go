package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// WhittedIntegrator implements recursive Whitted ray tracing: local Phong shading with
// shadow attenuation plus mirror reflection and refraction
type WhittedIntegrator struct {
	scene Scene
}

// NewWhittedIntegrator creates an integrator over scene
func NewWhittedIntegrator(scene Scene) *WhittedIntegrator {
	return &WhittedIntegrator{scene: scene}
}

// GetColor returns the color along ray clamped to [0, 1] per channel. It returns black
// when depth is exhausted, when every channel of colorLimit exceeds 1, or on a miss.
func (w *WhittedIntegrator) GetColor(ray core.Ray, depth int, colorLimit core.Vec3, lightSamples int, random *rand.Rand, stats *core.RayStats) core.Vec3 {
	if depth <= 0 || colorLimit.AllGreater(1) {
		return core.Vec3{}
	}
	root := w.scene.GetRoot()
	if root == nil {
		return core.Vec3{}
	}

	stats.AddRay()
	t, hit := root.Intersect(ray, core.DefaultRange(), nil, stats)
	if math.IsInf(t, 1) || hit.Material == nil {
		return core.Vec3{}
	}
	mat := hit.Material.Textured(hit.TexCoord)
	hit.Material = mat

	color := mat.Emissive.Add(w.surfaceColor(ray, hit, colorLimit, lightSamples, random, stats))

	// Reflection only off the front face
	if ray.Direction.Dot(hit.Normal) < 0 && !mat.Specular.IsZero() {
		reflected := Reflect(ray.Direction, hit.Normal)
		next := core.NewRay(hit.Position.Add(reflected.Multiply(core.Epsilon)), reflected)
		contrib := w.GetColor(next, depth-1, colorLimit.DivideVec(mat.Specular), lightSamples, random, stats)
		color = color.Add(contrib.MultiplyVec(mat.Specular))
	}

	if !mat.Transparent.IsZero() {
		if refracted, ok := Refract(ray.Direction, hit.Normal, mat.IndexOfRefraction); ok {
			next := core.NewRay(hit.Position.Add(refracted.Multiply(core.Epsilon)), refracted)
			contrib := w.GetColor(next, depth-1, colorLimit.DivideVec(mat.Transparent), lightSamples, random, stats)
			color = color.Add(contrib.MultiplyVec(mat.Transparent))
		}
	}

	return color.Clamp(0, 1)
}

// surfaceColor sums the local contribution of every light. The material's ambient
// coefficient scales the ambient light of all lights once per light, so ambient
// brightness grows with the number of lights.
func (w *WhittedIntegrator) surfaceColor(ray core.Ray, hit geometry.IntersectionInfo, colorLimit core.Vec3, lightSamples int, random *rand.Rand, stats *core.RayStats) core.Vec3 {
	sceneLights := w.scene.GetLights()
	var ambientLight core.Vec3
	for _, light := range sceneLights {
		ambientLight = ambientLight.Add(light.Ambient(ray, hit))
	}
	ambient := hit.Material.Ambient.MultiplyVec(ambientLight)

	root := w.scene.GetRoot()
	var sum core.Vec3
	for _, light := range sceneLights {
		direct := light.Diffuse(ray, hit).Add(light.Specular(ray, hit))
		if !direct.IsZero() {
			direct = direct.MultiplyVec(light.Transparency(hit, root, colorLimit, lightSamples, random, stats))
		}
		sum = sum.Add(ambient).Add(direct)
	}
	return sum
}
