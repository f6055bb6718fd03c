package lights

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// SphereLight is a point light with a spherical extent. It shades like a point light at
// its center and casts soft shadows by sampling its surface.
type SphereLight struct {
	PointLight
	Radius float64
}

// NewSphereLight creates a new spherical area light
func NewSphereLight(location core.Vec3, radius float64, colors Colors, attenuation Attenuation) *SphereLight {
	return &SphereLight{
		PointLight: PointLight{Colors: colors, Location: location, Attenuation: attenuation},
		Radius:     radius,
	}
}

func (l *SphereLight) Type() LightType {
	return LightTypeSphere
}

// SamplePoint returns a uniformly distributed point on the light's surface. A vector of
// independent normal deviates is uniform in direction once normalized.
func (l *SphereLight) SamplePoint(random *rand.Rand) core.Vec3 {
	for {
		dir := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		if !dir.IsZero() {
			return l.Location.Add(dir.Normalize().Multiply(l.Radius))
		}
	}
}

// Transparency averages shadow marches toward that many sampled points on the light's surface.
// Without a random source or with fewer than one sample it marches to the center.
func (l *SphereLight) Transparency(hit geometry.IntersectionInfo, root geometry.Shape, colorLimit core.Vec3, samples int, random *rand.Rand, stats *core.RayStats) core.Vec3 {
	if samples < 1 || random == nil || l.Radius <= 0 {
		return marchToward(hit, l.Location, root, colorLimit, stats)
	}

	var sum core.Vec3
	for i := 0; i < samples; i++ {
		sum = sum.Add(marchToward(hit, l.SamplePoint(random), root, colorLimit, stats))
	}
	return sum.Multiply(1 / float64(samples))
}
