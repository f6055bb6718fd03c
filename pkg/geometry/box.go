package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Box is an axis-aligned box given by its center and full side lengths
type Box struct {
	Center        core.Vec3
	Size          core.Vec3
	MaterialIndex int

	material *material.Material
	bbox     core.AABB
}

// NewBox creates a new box
func NewBox(center, size core.Vec3, materialIndex int) *Box {
	b := &Box{
		Center:        center,
		Size:          size,
		MaterialIndex: materialIndex,
	}
	b.UpdateBoundingBox()
	return b
}

// Init resolves the box's material
func (b *Box) Init(data *SceneData) error {
	m, err := resolveMaterial("box", b.MaterialIndex, data)
	if err != nil {
		return err
	}
	b.material = m
	return nil
}

// Intersect uses the slab method; the entry and exit faces are both candidates
func (b *Box) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	stats.AddPrimitive()

	tNear, tFar := math.Inf(-1), math.Inf(1)
	nearAxis, farAxis := -1, -1
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)
		min := b.bbox.Min.Component(axis)
		max := b.bbox.Max.Component(axis)

		if direction == 0 {
			if origin < min || origin > max {
				return Miss()
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear, nearAxis = t1, axis
		}
		if t2 < tFar {
			tFar, farAxis = t2, axis
		}
		if tNear > tFar {
			return Miss()
		}
	}
	if nearAxis < 0 || farAxis < 0 {
		return Miss()
	}

	near := candidate{t: tNear, normal: axisNormal(nearAxis, -ray.Direction.Component(nearAxis))}
	far := candidate{t: tFar, normal: axisNormal(farAxis, ray.Direction.Component(farAxis))}
	c, ok := closestCandidate([]candidate{near, far}, rng, valid)
	if !ok {
		return Miss()
	}
	dist, info := hitInfo(ray, c, b.material)
	info.TexCoord = b.texCoord(info.Position, c.normal)
	return dist, info
}

// axisNormal returns the unit vector along axis with the sign of s
func axisNormal(axis int, s float64) core.Vec3 {
	sign := 1.0
	if s < 0 {
		sign = -1
	}
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

// texCoord projects the hit point onto the face, spanning [0, 1] across it
func (b *Box) texCoord(p, normal core.Vec3) core.Vec2 {
	rel := p.Subtract(b.bbox.Min)
	ratio := func(axis int) float64 {
		size := b.Size.Component(axis)
		if size == 0 {
			return 0
		}
		return rel.Component(axis) / size
	}
	switch {
	case normal.X != 0:
		return core.NewVec2(ratio(2), ratio(1))
	case normal.Y != 0:
		return core.NewVec2(ratio(0), ratio(2))
	default:
		return core.NewVec2(ratio(0), ratio(1))
	}
}

// IsInside reports whether p lies within the box
func (b *Box) IsInside(p core.Vec3) bool {
	return b.bbox.Contains(p)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}

// UpdateBoundingBox recomputes the box extents from center and size
func (b *Box) UpdateBoundingBox() core.AABB {
	half := b.Size.Multiply(0.5)
	b.bbox = core.NewAABB(b.Center.Subtract(half), b.Center.Add(half))
	return b.bbox
}

// PrimitiveCount returns 1
func (b *Box) PrimitiveCount() int {
	return 1
}
