package integrator

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene is the read-only view of a scene that the integrator traces against
type Scene interface {
	GetRoot() geometry.Shape
	GetLights() []lights.Light
}

// Integrator computes the color seen along a ray. Implementations must be safe for
// concurrent use; all per-call state is passed explicitly.
type Integrator interface {
	// GetColor traces ray with at most depth bounces. Contributions that colorLimit
	// proves invisible are skipped. Area lights use lightSamples shadow rays drawn
	// from random.
	GetColor(ray core.Ray, depth int, colorLimit core.Vec3, lightSamples int, random *rand.Rand, stats *core.RayStats) core.Vec3
}
