package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	MaterialIndex int

	material *material.Material
	bbox     core.AABB
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialIndex int) *Sphere {
	s := &Sphere{
		Center:        center,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
	s.UpdateBoundingBox()
	return s
}

// Init resolves the sphere's material
func (s *Sphere) Init(data *SceneData) error {
	m, err := resolveMaterial("sphere", s.MaterialIndex, data)
	if err != nil {
		return err
	}
	s.material = m
	return nil
}

// Intersect solves |o + t*d - c|² = r² for t
func (s *Sphere) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	stats.AddPrimitive()

	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	for _, t := range core.SolveQuadratic(c, b, a) {
		if !rng.Contains(t) || !valid.Accepts(t) {
			continue
		}
		p := ray.At(t)
		normal := p.Subtract(s.Center).Multiply(1.0 / s.Radius)
		return t, IntersectionInfo{
			Position: p,
			Normal:   normal.Normalize(),
			TexCoord: sphereTexCoord(normal),
			Material: s.material,
		}
	}
	return Miss()
}

// sphereTexCoord maps a unit normal to longitude/latitude coordinates
func sphereTexCoord(n core.Vec3) core.Vec2 {
	v := 0.5 + math.Asin(math.Max(-1, math.Min(1, n.Y)))/math.Pi
	return core.NewVec2(angleCoordinate(n.Z, n.X), v)
}

// IsInside reports whether p is within the radius of the center
func (s *Sphere) IsInside(p core.Vec3) bool {
	return p.Subtract(s.Center).LengthSquared() <= s.Radius*s.Radius
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// UpdateBoundingBox recomputes the box from the center and radius
func (s *Sphere) UpdateBoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	s.bbox = core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
	return s.bbox
}

// PrimitiveCount returns 1
func (s *Sphere) PrimitiveCount() int {
	return 1
}
