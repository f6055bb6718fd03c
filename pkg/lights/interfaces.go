package lights

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
	LightTypeSphere      LightType = "sphere"
)

// Light is a Whitted light source. The ray passed to the shading methods is the ray
// that produced the hit; the hit carries the surface material.
type Light interface {
	Type() LightType

	// Ambient returns the light's ambient intensity at the hit, independent of the
	// surface orientation
	Ambient(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3

	// Diffuse returns the Lambertian term, zero when the surface faces away
	Diffuse(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3

	// Specular returns the Phong term, zero when the surface faces away from the light
	// or the reflection faces away from the viewer
	Specular(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3

	// Transparency returns the fraction of light per channel that reaches the hit
	// through the occluders of root. Marching stops once every channel falls to
	// colorLimit. Area lights average samples shadow rays drawn with random.
	Transparency(hit geometry.IntersectionInfo, root geometry.Shape, colorLimit core.Vec3, samples int, random *rand.Rand, stats *core.RayStats) core.Vec3
}

// Colors are the light's ambient, diffuse and specular intensities
type Colors struct {
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// UniformColors returns colors with the same intensity for every term
func UniformColors(c core.Vec3) Colors {
	return Colors{Ambient: c, Diffuse: c, Specular: c}
}

// Attenuation is the distance falloff 1 / (Constant + Linear*d + Quadratic*d²)
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// NoAttenuation keeps full intensity at every distance
func NoAttenuation() Attenuation {
	return Attenuation{Constant: 1}
}

// Factor returns the attenuation scale at distance d. A non-positive denominator
// yields no attenuation.
func (a Attenuation) Factor(d float64) float64 {
	denom := a.Constant + a.Linear*d + a.Quadratic*d*d
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}
