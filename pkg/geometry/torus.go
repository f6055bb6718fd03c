package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Torus is a ring around an axis parallel to y. MajorRadius is the distance from the
// center to the middle of the tube and MinorRadius the radius of the tube.
type Torus struct {
	Center        core.Vec3
	MajorRadius   float64
	MinorRadius   float64
	MaterialIndex int

	material *material.Material
	bbox     core.AABB
}

// NewTorus creates a new torus
func NewTorus(center core.Vec3, majorRadius, minorRadius float64, materialIndex int) *Torus {
	t := &Torus{
		Center:        center,
		MajorRadius:   majorRadius,
		MinorRadius:   minorRadius,
		MaterialIndex: materialIndex,
	}
	t.UpdateBoundingBox()
	return t
}

// Init resolves the torus' material
func (t *Torus) Init(data *SceneData) error {
	m, err := resolveMaterial("torus", t.MaterialIndex, data)
	if err != nil {
		return err
	}
	t.material = m
	return nil
}

// Intersect solves the torus quartic
//
//	(|p|² + R² - r²)² = 4R²(px² + pz²)
//
// along a unit-speed copy of the ray that starts at the bounding-box entry point, which
// keeps the coefficients well conditioned for distant origins.
func (t *Torus) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	stats.AddPrimitive()

	speed := ray.Direction.Length()
	if speed == 0 {
		return Miss()
	}
	span := t.bbox.Intersect(ray).Intersect(rng)
	if span.IsEmpty() {
		return Miss()
	}
	start := math.Max(span.Min, 0)

	o := ray.At(start).Subtract(t.Center)
	d := ray.Direction.Multiply(1 / speed)

	R2 := t.MajorRadius * t.MajorRadius
	g := d.Dot(d)
	h := 2 * o.Dot(d)
	i := o.Dot(o) + R2 - t.MinorRadius*t.MinorRadius

	a4 := g * g
	a3 := 2 * g * h
	a2 := h*h + 2*g*i - 4*R2*(d.X*d.X+d.Z*d.Z)
	a1 := 2*h*i - 8*R2*(o.X*d.X+o.Z*d.Z)
	a0 := i*i - 4*R2*(o.X*o.X+o.Z*o.Z)

	for _, s := range core.SolveQuartic(a0, a1, a2, a3, a4) {
		dist := start + s/speed
		if !rng.Contains(dist) || !valid.Accepts(dist) {
			continue
		}
		p := o.Add(d.Multiply(s))
		return dist, IntersectionInfo{
			Position: ray.At(dist),
			Normal:   t.normalAt(p),
			TexCoord: t.texCoord(p),
			Material: t.material,
		}
	}
	return Miss()
}

// normalAt returns the outward normal at local point p: the direction from the nearest
// point of the tube's center circle
func (t *Torus) normalAt(p core.Vec3) core.Vec3 {
	ring := core.NewVec3(p.X, 0, p.Z)
	if ring.IsZero() {
		return core.NewVec3(0, math.Copysign(1, p.Y), 0)
	}
	n := p.Subtract(ring.Normalize().Multiply(t.MajorRadius)).Normalize()
	if n.IsZero() {
		return ring.Normalize()
	}
	return n
}

func (t *Torus) texCoord(p core.Vec3) core.Vec2 {
	ring := math.Hypot(p.X, p.Z)
	return core.NewVec2(angleCoordinate(p.Z, p.X), angleCoordinate(p.Y, ring-t.MajorRadius))
}

// IsInside reports whether p lies within the tube
func (t *Torus) IsInside(p core.Vec3) bool {
	rel := p.Subtract(t.Center)
	q := math.Hypot(rel.X, rel.Z) - t.MajorRadius
	return q*q+rel.Y*rel.Y <= t.MinorRadius*t.MinorRadius
}

// BoundingBox returns the torus' bounding box
func (t *Torus) BoundingBox() core.AABB {
	return t.bbox
}

// UpdateBoundingBox recomputes the box; the ring extends R+r in x and z and r in y
func (t *Torus) UpdateBoundingBox() core.AABB {
	outer := t.MajorRadius + t.MinorRadius
	extent := core.NewVec3(outer, t.MinorRadius, outer)
	t.bbox = core.NewAABB(t.Center.Subtract(extent), t.Center.Add(extent))
	return t.bbox
}

// PrimitiveCount returns 1
func (t *Torus) PrimitiveCount() int {
	return 1
}
