package core

// RayStats counts ray-tracing work. Each render worker owns one and the renderer merges
// them at the end, so no counter is shared between goroutines. All methods accept a nil
// receiver and then do nothing.
type RayStats struct {
	Rays                   int64 // Primary and secondary rays traced by the integrator
	ShadowRays             int64 // Rays marched toward lights
	PrimitiveIntersections int64 // Ray/primitive intersection tests
	BoxIntersections       int64 // Ray/bounding-box intersection tests
}

// AddRay records a traced ray
func (s *RayStats) AddRay() {
	if s != nil {
		s.Rays++
	}
}

// AddShadowRay records a shadow ray
func (s *RayStats) AddShadowRay() {
	if s != nil {
		s.ShadowRays++
	}
}

// AddPrimitive records a ray/primitive test
func (s *RayStats) AddPrimitive() {
	if s != nil {
		s.PrimitiveIntersections++
	}
}

// AddBox records a ray/bounding-box test
func (s *RayStats) AddBox() {
	if s != nil {
		s.BoxIntersections++
	}
}

// Merge adds the counts of other into s
func (s *RayStats) Merge(other RayStats) {
	if s == nil {
		return
	}
	s.Rays += other.Rays
	s.ShadowRays += other.ShadowRays
	s.PrimitiveIntersections += other.PrimitiveIntersections
	s.BoxIntersections += other.BoxIntersections
}
