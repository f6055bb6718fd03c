package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// diffuseTerm returns Kd * max(0, N·L) * intensity for the unit direction toLight
func diffuseTerm(hit geometry.IntersectionInfo, toLight, intensity core.Vec3) core.Vec3 {
	cosine := hit.Normal.Dot(toLight)
	if cosine <= 0 || hit.Material == nil {
		return core.Vec3{}
	}
	return hit.Material.Diffuse.MultiplyVec(intensity).Multiply(cosine)
}

// specularTerm returns Ks * (V·R)^n * intensity where R mirrors toLight about the normal
// and V points back along the incoming ray
func specularTerm(ray core.Ray, hit geometry.IntersectionInfo, toLight, intensity core.Vec3) core.Vec3 {
	cosine := hit.Normal.Dot(toLight)
	if cosine < 0 || hit.Material == nil {
		return core.Vec3{}
	}
	reflected := hit.Normal.Multiply(2 * cosine).Subtract(toLight).Normalize()
	view := ray.Direction.Normalize().Negate()
	vr := view.Dot(reflected)
	if vr < 0 {
		return core.Vec3{}
	}
	return hit.Material.Specular.MultiplyVec(intensity).Multiply(math.Pow(vr, hit.Material.SpecularFallOff))
}

// shadowMarch follows a shadow ray from the hit toward a light at distance maxDist along
// the unit direction toLight (+Inf for directional lights). Each occluder scales the
// result by its material's transparent color.
func shadowMarch(hit geometry.IntersectionInfo, toLight core.Vec3, maxDist float64, root geometry.Shape, colorLimit core.Vec3, stats *core.RayStats) core.Vec3 {
	shadow := core.NewVec3(1, 1, 1)
	if root == nil {
		return shadow
	}

	origin := hit.Position.Add(toLight.Multiply(core.Epsilon))
	remaining := maxDist - core.Epsilon
	for shadow.AnyGreater(colorLimit) && remaining > core.Epsilon {
		stats.AddShadowRay()
		t, occluder := root.Intersect(core.NewRay(origin, toLight), core.NewInterval(core.Epsilon, remaining), nil, stats)
		if math.IsInf(t, 1) {
			break
		}
		if occluder.Material == nil {
			return core.Vec3{}
		}
		shadow = shadow.MultiplyVec(occluder.Material.Transparent)
		origin = occluder.Position.Add(toLight.Multiply(core.Epsilon))
		remaining -= t + core.Epsilon
	}
	return shadow
}
