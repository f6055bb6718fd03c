package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cone has its base disc at Center and its apex at Center + (0, Height, 0)
type Cone struct {
	Center        core.Vec3
	Radius        float64
	Height        float64
	MaterialIndex int

	material *material.Material
	bbox     core.AABB
}

// NewCone creates a new cone
func NewCone(center core.Vec3, radius, height float64, materialIndex int) *Cone {
	c := &Cone{
		Center:        center,
		Radius:        radius,
		Height:        height,
		MaterialIndex: materialIndex,
	}
	c.UpdateBoundingBox()
	return c
}

// Init resolves the cone's material
func (c *Cone) Init(data *SceneData) error {
	m, err := resolveMaterial("cone", c.MaterialIndex, data)
	if err != nil {
		return err
	}
	c.material = m
	return nil
}

// Intersect solves x² + z² = k²(apexY - y)² with k = radius/height, then the base cap
func (c *Cone) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	stats.AddPrimitive()
	if c.Height <= 0 {
		return Miss()
	}

	o := ray.Origin.Subtract(c.Center)
	d := ray.Direction
	k2 := (c.Radius / c.Height) * (c.Radius / c.Height)
	y0 := c.Height - o.Y // apex height above the ray origin

	a := d.X*d.X + d.Z*d.Z - k2*d.Y*d.Y
	b := 2 * (o.X*d.X + o.Z*d.Z + k2*y0*d.Y)
	k := o.X*o.X + o.Z*o.Z - k2*y0*y0

	candidates := make([]candidate, 0, 3)
	for _, t := range core.SolveQuadratic(k, b, a) {
		p := o.Add(d.Multiply(t))
		if p.Y < 0 || p.Y > c.Height {
			continue
		}
		normal := core.NewVec3(p.X, k2*(c.Height-p.Y), p.Z)
		if normal.IsZero() {
			normal = core.NewVec3(0, 1, 0)
		}
		candidates = append(candidates, candidate{
			t:        t,
			normal:   normal,
			texCoord: core.NewVec2(angleCoordinate(p.Z, p.X), p.Y/c.Height),
		})
	}

	if d.Y != 0 {
		t := -o.Y / d.Y
		p := o.Add(d.Multiply(t))
		if p.X*p.X+p.Z*p.Z <= c.Radius*c.Radius {
			candidates = append(candidates, candidate{
				t:        t,
				normal:   core.NewVec3(0, -1, 0),
				texCoord: discTexCoord(p, c.Radius),
			})
		}
	}

	hit, ok := closestCandidate(candidates, rng, valid)
	if !ok {
		return Miss()
	}
	return hitInfo(ray, hit, c.material)
}

// IsInside reports whether p lies within the solid cone
func (c *Cone) IsInside(p core.Vec3) bool {
	if c.Height <= 0 {
		return false
	}
	rel := p.Subtract(c.Center)
	if rel.Y < 0 || rel.Y > c.Height {
		return false
	}
	r := c.Radius * (c.Height - rel.Y) / c.Height
	return rel.X*rel.X+rel.Z*rel.Z <= r*r
}

// BoundingBox returns the cone's bounding box
func (c *Cone) BoundingBox() core.AABB {
	return c.bbox
}

// UpdateBoundingBox recomputes the box from the base disc and apex
func (c *Cone) UpdateBoundingBox() core.AABB {
	c.bbox = core.NewAABB(
		c.Center.Subtract(core.NewVec3(c.Radius, 0, c.Radius)),
		c.Center.Add(core.NewVec3(c.Radius, math.Max(c.Height, 0), c.Radius)),
	)
	return c.bbox
}

// PrimitiveCount returns 1
func (c *Cone) PrimitiveCount() int {
	return 1
}
