package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ShapeList is a group of shapes intersected through their bounding boxes
type ShapeList struct {
	Shapes []Shape

	bbox core.AABB
}

// NewShapeList creates a new shape list
func NewShapeList(shapes ...Shape) *ShapeList {
	l := &ShapeList{Shapes: shapes}
	l.UpdateBoundingBox()
	return l
}

// Add appends shapes to the list. UpdateBoundingBox must be called before rendering.
func (l *ShapeList) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Init initializes every child
func (l *ShapeList) Init(data *SceneData) error {
	return initChildren("shape list", l.Shapes, data)
}

// Intersect returns the closest hit among the children
func (l *ShapeList) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	return closestChild(l.Shapes, ray, rng, stats, func(int) Validity { return valid })
}

// IsInside reports whether p is inside any child
func (l *ShapeList) IsInside(p core.Vec3) bool {
	for _, s := range l.Shapes {
		if s.IsInside(p) {
			return true
		}
	}
	return false
}

// BoundingBox returns the union of the children's boxes
func (l *ShapeList) BoundingBox() core.AABB {
	return l.bbox
}

// UpdateBoundingBox updates every child and unions their boxes
func (l *ShapeList) UpdateBoundingBox() core.AABB {
	l.bbox = core.EmptyAABB()
	for _, s := range l.Shapes {
		if s == nil {
			continue
		}
		l.bbox = l.bbox.Union(s.UpdateBoundingBox())
	}
	return l.bbox
}

// PrimitiveCount sums the children's primitive counts
func (l *ShapeList) PrimitiveCount() int {
	return primitiveCount(l.Shapes)
}

// boxCandidate is a child whose bounding box the ray enters at t
type boxCandidate struct {
	index int
	t     float64
}

// closestChild intersects the children whose boxes the ray crosses within rng, in order
// of box entry. It stops once the next box is entered beyond the best hit, so the result
// is the closest hit among all children regardless of their order. validFor returns the
// filter applied to child i.
func closestChild(shapes []Shape, ray core.Ray, rng core.Interval, stats *core.RayStats, validFor func(i int) Validity) (float64, IntersectionInfo) {
	candidates := make([]boxCandidate, 0, len(shapes))
	for i, s := range shapes {
		stats.AddBox()
		span := s.BoundingBox().Intersect(ray).Intersect(rng)
		if span.IsEmpty() {
			continue
		}
		candidates = append(candidates, boxCandidate{index: i, t: span.Min})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].t < candidates[j].t })

	best, bestInfo := Miss()
	for _, c := range candidates {
		if c.t > best {
			break
		}
		t, info := shapes[c.index].Intersect(ray, rng.WithMax(min(rng.Max, best)), validFor(c.index), stats)
		if t < best {
			best, bestInfo = t, info
		}
	}
	return best, bestInfo
}

func initChildren(kind string, shapes []Shape, data *SceneData) error {
	for i, s := range shapes {
		if s == nil {
			return missingChild(kind, i)
		}
		if err := s.Init(data); err != nil {
			return fmt.Errorf("%s child %d: %w", kind, i, err)
		}
	}
	return nil
}

func primitiveCount(shapes []Shape) int {
	count := 0
	for _, s := range shapes {
		if s != nil {
			count += s.PrimitiveCount()
		}
	}
	return count
}
