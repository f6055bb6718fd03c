package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns a box that contains nothing; its union with any box is that box
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Intersect returns the range of ray parameters for which the ray is inside the box,
// using the slab method. The returned interval is empty on a miss or when the box lies
// entirely behind the ray origin.
func (aabb AABB) Intersect(ray Ray) Interval {
	if !aabb.IsValid() {
		return EmptyInterval()
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Component(axis)
		max := aabb.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-12 {
			if origin < min || origin > max {
				return EmptyInterval()
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return EmptyInterval()
		}
	}

	if tMax < 0 {
		return EmptyInterval()
	}
	return Interval{Min: tMin, Max: tMax}
}

// Hit tests if a ray intersects with this AABB within [tMin, tMax]
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	return !aabb.Intersect(ray).Intersect(Interval{Min: tMin, Max: tMax}).IsEmpty()
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Overlap returns the intersection of two boxes, which may be empty
func (aabb AABB) Overlap(other AABB) AABB {
	min := Vec3{
		X: math.Max(aabb.Min.X, other.Min.X),
		Y: math.Max(aabb.Min.Y, other.Min.Y),
		Z: math.Max(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Min(aabb.Max.X, other.Max.X),
		Y: math.Min(aabb.Max.Y, other.Max.Y),
		Z: math.Min(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		corners[i] = Vec3{
			X: pick(i&1 == 0, aabb.Min.X, aabb.Max.X),
			Y: pick(i&2 == 0, aabb.Min.Y, aabb.Max.Y),
			Z: pick(i&4 == 0, aabb.Min.Z, aabb.Max.Z),
		}
	}
	return corners
}

func pick(first bool, a, b float64) float64 {
	if first {
		return a
	}
	return b
}
