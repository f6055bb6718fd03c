package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cylinder is a capped cylinder whose axis is parallel to y. Center is the midpoint of
// the axis.
type Cylinder struct {
	Center        core.Vec3
	Radius        float64
	Height        float64
	MaterialIndex int

	material *material.Material
	bbox     core.AABB
}

// NewCylinder creates a new cylinder
func NewCylinder(center core.Vec3, radius, height float64, materialIndex int) *Cylinder {
	c := &Cylinder{
		Center:        center,
		Radius:        radius,
		Height:        height,
		MaterialIndex: materialIndex,
	}
	c.UpdateBoundingBox()
	return c
}

// Init resolves the cylinder's material
func (c *Cylinder) Init(data *SceneData) error {
	m, err := resolveMaterial("cylinder", c.MaterialIndex, data)
	if err != nil {
		return err
	}
	c.material = m
	return nil
}

// Intersect solves the side quadratic in x and z and the two cap planes
func (c *Cylinder) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	stats.AddPrimitive()

	o := ray.Origin.Subtract(c.Center)
	d := ray.Direction
	half := c.Height / 2
	r2 := c.Radius * c.Radius

	candidates := make([]candidate, 0, 4)

	a := d.X*d.X + d.Z*d.Z
	b := 2 * (o.X*d.X + o.Z*d.Z)
	k := o.X*o.X + o.Z*o.Z - r2
	if a != 0 {
		for _, t := range core.SolveQuadratic(k, b, a) {
			p := o.Add(d.Multiply(t))
			if math.Abs(p.Y) > half {
				continue
			}
			candidates = append(candidates, candidate{
				t:        t,
				normal:   core.NewVec3(p.X, 0, p.Z),
				texCoord: core.NewVec2(angleCoordinate(p.Z, p.X), (p.Y+half)/c.Height),
			})
		}
	}

	if d.Y != 0 {
		for _, capY := range [2]float64{-half, half} {
			t := (capY - o.Y) / d.Y
			p := o.Add(d.Multiply(t))
			if p.X*p.X+p.Z*p.Z > r2 {
				continue
			}
			candidates = append(candidates, candidate{
				t:        t,
				normal:   core.NewVec3(0, math.Copysign(1, capY), 0),
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

// discTexCoord maps the x/z offset inside a disc of radius r to [0, 1]²
func discTexCoord(p core.Vec3, r float64) core.Vec2 {
	return core.NewVec2((p.X/r+1)/2, (p.Z/r+1)/2)
}

// IsInside reports whether p lies within the capped cylinder
func (c *Cylinder) IsInside(p core.Vec3) bool {
	rel := p.Subtract(c.Center)
	return math.Abs(rel.Y) <= c.Height/2 && rel.X*rel.X+rel.Z*rel.Z <= c.Radius*c.Radius
}

// BoundingBox returns the cylinder's bounding box
func (c *Cylinder) BoundingBox() core.AABB {
	return c.bbox
}

// UpdateBoundingBox recomputes the box from the center, radius and height
func (c *Cylinder) UpdateBoundingBox() core.AABB {
	extent := core.NewVec3(c.Radius, c.Height/2, c.Radius)
	c.bbox = core.NewAABB(c.Center.Subtract(extent), c.Center.Add(extent))
	return c.bbox
}

// PrimitiveCount returns 1
func (c *Cylinder) PrimitiveCount() int {
	return 1
}
