package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Union is the boolean union of its children. A child's surface point belongs to the
// union's boundary only when no other child contains it.
type Union struct {
	Shapes []Shape

	bbox core.AABB
}

// NewUnion creates a new union
func NewUnion(shapes ...Shape) *Union {
	u := &Union{Shapes: shapes}
	u.UpdateBoundingBox()
	return u
}

// Init initializes every child
func (u *Union) Init(data *SceneData) error {
	return initChildren("union", u.Shapes, data)
}

// Intersect returns the closest child hit that lies outside all other children
func (u *Union) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	return closestChild(u.Shapes, ray, rng, stats, func(i int) Validity {
		return valid.And(func(t float64) bool {
			p := ray.At(t)
			for j, other := range u.Shapes {
				if j != i && other.IsInside(p) {
					return false
				}
			}
			return true
		})
	})
}

// IsInside reports whether p is inside any child
func (u *Union) IsInside(p core.Vec3) bool {
	for _, s := range u.Shapes {
		if s.IsInside(p) {
			return true
		}
	}
	return false
}

// BoundingBox returns the union of the children's boxes
func (u *Union) BoundingBox() core.AABB {
	return u.bbox
}

// UpdateBoundingBox updates the children and unions their boxes
func (u *Union) UpdateBoundingBox() core.AABB {
	u.bbox = core.EmptyAABB()
	for _, s := range u.Shapes {
		if s == nil {
			continue
		}
		u.bbox = u.bbox.Union(s.UpdateBoundingBox())
	}
	return u.bbox
}

// PrimitiveCount sums the children's primitive counts
func (u *Union) PrimitiveCount() int {
	return primitiveCount(u.Shapes)
}

// Intersection is the boolean intersection of its children. A child's surface point
// belongs to the boundary only when every other child contains it.
type Intersection struct {
	Shapes []Shape

	bbox core.AABB
}

// NewIntersection creates a new intersection
func NewIntersection(shapes ...Shape) *Intersection {
	n := &Intersection{Shapes: shapes}
	n.UpdateBoundingBox()
	return n
}

// Init initializes every child
func (n *Intersection) Init(data *SceneData) error {
	return initChildren("intersection", n.Shapes, data)
}

// Intersect returns the closest child hit that lies inside all other children
func (n *Intersection) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	if len(n.Shapes) == 0 {
		return Miss()
	}
	return closestChild(n.Shapes, ray, rng, stats, func(i int) Validity {
		return valid.And(func(t float64) bool {
			p := ray.At(t)
			for j, other := range n.Shapes {
				if j != i && !other.IsInside(p) {
					return false
				}
			}
			return true
		})
	})
}

// IsInside reports whether p is inside every child
func (n *Intersection) IsInside(p core.Vec3) bool {
	if len(n.Shapes) == 0 {
		return false
	}
	for _, s := range n.Shapes {
		if !s.IsInside(p) {
			return false
		}
	}
	return true
}

// BoundingBox returns the overlap of the children's boxes
func (n *Intersection) BoundingBox() core.AABB {
	return n.bbox
}

// UpdateBoundingBox updates the children and overlaps their boxes
func (n *Intersection) UpdateBoundingBox() core.AABB {
	n.bbox = core.EmptyAABB()
	for i, s := range n.Shapes {
		if s == nil {
			continue
		}
		box := s.UpdateBoundingBox()
		if i == 0 {
			n.bbox = box
		} else {
			n.bbox = n.bbox.Overlap(box)
		}
	}
	return n.bbox
}

// PrimitiveCount sums the children's primitive counts
func (n *Intersection) PrimitiveCount() int {
	return primitiveCount(n.Shapes)
}

// Difference is Minuend with Subtrahend carved out of it
type Difference struct {
	Minuend    Shape
	Subtrahend Shape
}

// NewDifference creates a new difference
func NewDifference(minuend, subtrahend Shape) *Difference {
	d := &Difference{Minuend: minuend, Subtrahend: subtrahend}
	d.UpdateBoundingBox()
	return d
}

// Init initializes both operands
func (d *Difference) Init(data *SceneData) error {
	return initChildren("difference", []Shape{d.Minuend, d.Subtrahend}, data)
}

// Intersect returns the closer of the minuend's surface outside the subtrahend and the
// subtrahend's surface inside the minuend. Hits on the subtrahend face the other way.
func (d *Difference) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	stats.AddBox()
	if d.Minuend.BoundingBox().Intersect(ray).Intersect(rng).IsEmpty() {
		return Miss()
	}

	outer, outerInfo := d.Minuend.Intersect(ray, rng, valid.And(func(t float64) bool {
		return !d.Subtrahend.IsInside(ray.At(t))
	}), stats)

	inner, innerInfo := d.Subtrahend.Intersect(ray, rng.WithMax(min(rng.Max, outer)), valid.And(func(t float64) bool {
		return d.Minuend.IsInside(ray.At(t))
	}), stats)

	if inner < outer {
		innerInfo.Normal = innerInfo.Normal.Negate()
		return inner, innerInfo
	}
	return outer, outerInfo
}

// IsInside reports whether p is inside the minuend and outside the subtrahend
func (d *Difference) IsInside(p core.Vec3) bool {
	return d.Minuend.IsInside(p) && !d.Subtrahend.IsInside(p)
}

// BoundingBox returns the minuend's box
func (d *Difference) BoundingBox() core.AABB {
	return d.Minuend.BoundingBox()
}

// UpdateBoundingBox updates both operands and returns the minuend's box
func (d *Difference) UpdateBoundingBox() core.AABB {
	if d.Subtrahend != nil {
		d.Subtrahend.UpdateBoundingBox()
	}
	if d.Minuend == nil {
		return core.EmptyAABB()
	}
	return d.Minuend.UpdateBoundingBox()
}

// PrimitiveCount sums both operands' primitive counts
func (d *Difference) PrimitiveCount() int {
	return primitiveCount([]Shape{d.Minuend, d.Subtrahend})
}
