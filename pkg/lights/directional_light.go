package lights

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// DirectionalLight is an infinitely distant light shining along Direction
type DirectionalLight struct {
	Colors
	Direction core.Vec3 // Unit direction the light travels
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, colors Colors) *DirectionalLight {
	return &DirectionalLight{Colors: colors, Direction: direction.Normalize()}
}

func (l *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

func (l *DirectionalLight) toLight() core.Vec3 {
	return l.Direction.Negate()
}

// Ambient returns the ambient color
func (l *DirectionalLight) Ambient(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	return l.Colors.Ambient
}

// Diffuse returns the Lambertian term for the fixed light direction
func (l *DirectionalLight) Diffuse(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	return diffuseTerm(hit, l.toLight(), l.Colors.Diffuse)
}

// Specular returns the Phong term for the fixed light direction
func (l *DirectionalLight) Specular(ray core.Ray, hit geometry.IntersectionInfo) core.Vec3 {
	return specularTerm(ray, hit, l.toLight(), l.Colors.Specular)
}

// Transparency marches toward the light with no upper bound on distance
func (l *DirectionalLight) Transparency(hit geometry.IntersectionInfo, root geometry.Shape, colorLimit core.Vec3, samples int, random *rand.Rand, stats *core.RayStats) core.Vec3 {
	return shadowMarch(hit, l.toLight(), math.Inf(1), root, colorLimit, stats)
}
