package lights

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// SpotLight is a point light restricted to a cone around Direction. The cone admits
// surfaces whose angle to the axis satisfies cos(angle) > cos(2*CutOffAngle).
type SpotLight struct {
	Colors
	Location    core.Vec3
	Direction   core.Vec3 // Unit cone axis
	Attenuation Attenuation
	CutOffAngle float64 // Radians
	DropOffRate float64 // Exponent of the falloff toward the cone edge
}

// NewSpotLight creates a new spot light
func NewSpotLight(location, direction core.Vec3, colors Colors, attenuation Attenuation, cutOffAngle, dropOffRate float64) *SpotLight {
	return &SpotLight{
		Colors:      colors,
		Location:    location,
		Direction:   direction.Normalize(),
		Attenuation: attenuation,
		CutOffAngle: cutOffAngle,
		DropOffRate: dropOffRate,
	}
}

func (l *SpotLight) Type() LightType {
	return LightTypeSpot
}

// intensity applies the cone falloff and distance attenuation to color at p
func (l *SpotLight) intensity(color, p core.Vec3) core.Vec3 {
	toSurface := p.Subtract(l.Location)
	dist := toSurface.Length()
	dv := l.Direction.Dot(toSurface.Normalize())
	if dv <= math.Cos(2*l.CutOffAngle) {
		return core.Vec3{}
	}
	falloff := math.Pow(math.Max(0, dv), l.DropOffRate)
	return color.Multiply(falloff * l.Attenuation.Factor(dist))
}

// Ambient returns the ambient color inside the cone
func (l *SpotLight) Ambient(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	return l.intensity(l.Colors.Ambient, hit.Position)
}

// Diffuse returns the Lambertian term inside the cone
func (l *SpotLight) Diffuse(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	toLight := l.Location.Subtract(hit.Position).Normalize()
	return diffuseTerm(hit, toLight, l.intensity(l.Colors.Diffuse, hit.Position))
}

// Specular returns the Phong term inside the cone
func (l *SpotLight) Specular(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	toLight := l.Location.Subtract(hit.Position).Normalize()
	return specularTerm(ray, hit, toLight, l.intensity(l.Colors.Specular, hit.Position))
}

// Transparency marches toward the light's location
func (l *SpotLight) Transparency(hit geometry.IntersectionInfo, root geometry.Shape, colorLimit core.Vec3, samples int, random *rand.Rand, stats *core.RayStats) core.Vec3 {
	return marchToward(hit, l.Location, root, colorLimit, stats)
}
