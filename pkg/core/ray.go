package core

// Epsilon is the offset used to move secondary ray origins off a surface and the
// default lower bound of an intersection range
const Epsilon = 1e-6

// Ray represents a ray with an origin and direction. The direction need not be
// unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
