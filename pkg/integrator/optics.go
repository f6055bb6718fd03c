package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect mirrors direction about the unit normal
func Reflect(direction, normal core.Vec3) core.Vec3 {
	return direction.Subtract(normal.Multiply(2 * direction.Dot(normal)))
}

// Refract bends direction through a surface with outward unit normal and index of
// refraction ior using Snell's law. A ray leaving the medium (direction·normal > 0) sees
// the inverse index. It reports false on total internal reflection. The result has unit
// length.
func Refract(direction, normal core.Vec3, ior float64) (core.Vec3, bool) {
	if ior <= 0 {
		return core.Vec3{}, false
	}
	d := direction.Normalize()
	n := normal
	eta := 1 / ior
	cosI := -d.Dot(n)
	if cosI < 0 {
		// Exiting
		n = n.Negate()
		eta = ior
		cosI = -cosI
	}

	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	return d.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k))).Normalize(), true
}
