package lights

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// PointLight is a light at Location whose intensity falls off with distance
type PointLight struct {
	Colors
	Location    core.Vec3
	Attenuation Attenuation
}

// NewPointLight creates a new point light
func NewPointLight(location core.Vec3, colors Colors, attenuation Attenuation) *PointLight {
	return &PointLight{Colors: colors, Location: location, Attenuation: attenuation}
}

func (l *PointLight) Type() LightType {
	return LightTypePoint
}

// intensity attenuates color by the distance from the light to p
func (l *PointLight) intensity(color, p core.Vec3) core.Vec3 {
	return color.Multiply(l.Attenuation.Factor(l.Location.Subtract(p).Length()))
}

// Ambient returns the attenuated ambient color
func (l *PointLight) Ambient(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	return l.intensity(l.Colors.Ambient, hit.Position)
}

// Diffuse returns the attenuated Lambertian term
func (l *PointLight) Diffuse(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	toLight := l.Location.Subtract(hit.Position).Normalize()
	return diffuseTerm(hit, toLight, l.intensity(l.Colors.Diffuse, hit.Position))
}

// Specular returns the attenuated Phong term
func (l *PointLight) Specular(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	toLight := l.Location.Subtract(hit.Position).Normalize()
	return specularTerm(ray, hit, toLight, l.intensity(l.Colors.Specular, hit.Position))
}

// Transparency marches toward the light's location
func (l *PointLight) Transparency(hit geometry.IntersectionInfo, root geometry.Shape, colorLimit core.Vec3, samples int, random *rand.Rand, stats *core.RayStats) core.Vec3 {
	return marchToward(hit, l.Location, root, colorLimit, stats)
}

// marchToward runs a shadow march from the hit to a point
func marchToward(hit geometry.IntersectionInfo, target core.Vec3, root geometry.Shape, colorLimit core.Vec3, stats *core.RayStats) core.Vec3 {
	offset := target.Subtract(hit.Position)
	dist := offset.Length()
	if dist == 0 {
		return core.NewVec3(1, 1, 1)
	}
	return shadowMarch(hit, offset.Multiply(1/dist), dist, root, colorLimit, stats)
}
