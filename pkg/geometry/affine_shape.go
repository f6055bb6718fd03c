package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// affineShape intersects a child shape in its local frame. The local ray keeps the
// transformed, unnormalized direction so that local and world ray parameters agree and
// the range and validity filter pass through unchanged.
type affineShape struct {
	child     Shape
	transform core.Affine
	bbox      core.AABB
}

func (a *affineShape) intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	local := core.NewRay(a.transform.InversePoint(ray.Origin), a.transform.InverseDirection(ray.Direction))
	t, info := a.child.Intersect(local, rng, valid, stats)
	if math.IsInf(t, 1) {
		return Miss()
	}

	info.Position = a.transform.TransformPoint(info.Position)
	info.Normal = a.transform.TransformNormal(info.Normal)

	// World distance in units of the ray's direction, clamped against rounding
	speed := ray.Direction.Length()
	if speed == 0 {
		return Miss()
	}
	dist := info.Position.Subtract(ray.Origin).Length() / speed
	dist = math.Min(math.Max(dist, rng.Min), rng.Max)
	return dist, info
}

func (a *affineShape) isInside(p core.Vec3) bool {
	return a.child.IsInside(a.transform.InversePoint(p))
}

func (a *affineShape) updateBoundingBox() core.AABB {
	a.bbox = a.transform.TransformBox(a.child.UpdateBoundingBox())
	return a.bbox
}

// StaticAffineShape places a child shape under a fixed transform
type StaticAffineShape struct {
	affineShape
}

// NewStaticAffineShape creates a shape transformed by m
func NewStaticAffineShape(child Shape, m mgl64.Mat4) *StaticAffineShape {
	s := &StaticAffineShape{affineShape{child: child, transform: core.NewAffine(m)}}
	s.UpdateBoundingBox()
	return s
}

// Child returns the transformed shape
func (s *StaticAffineShape) Child() Shape {
	return s.child
}

// Matrix returns the local-to-world matrix
func (s *StaticAffineShape) Matrix() mgl64.Mat4 {
	return s.transform.Matrix
}

// Init initializes the child
func (s *StaticAffineShape) Init(data *SceneData) error {
	return initChildren("static affine shape", []Shape{s.child}, data)
}

// Intersect intersects the child in its local frame
func (s *StaticAffineShape) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	return s.intersect(ray, rng, valid, stats)
}

// IsInside tests p in the child's local frame
func (s *StaticAffineShape) IsInside(p core.Vec3) bool {
	return s.isInside(p)
}

// BoundingBox returns the box of the transformed child box
func (s *StaticAffineShape) BoundingBox() core.AABB {
	return s.bbox
}

// UpdateBoundingBox updates the child and transforms its box
func (s *StaticAffineShape) UpdateBoundingBox() core.AABB {
	if s.child == nil {
		return core.EmptyAABB()
	}
	return s.updateBoundingBox()
}

// PrimitiveCount returns the child's primitive count
func (s *StaticAffineShape) PrimitiveCount() int {
	return s.child.PrimitiveCount()
}

// DynamicAffineShape places a child shape under a time-varying transform. The matrix
// is read from its source on every UpdateBoundingBox call, so the scene must update
// bounding boxes after changing the time.
type DynamicAffineShape struct {
	affineShape

	// TransformIndex selects an entry of the scene's transform table when Source is nil
	TransformIndex int
	Source         MatrixSource
}

// NewDynamicAffineShape creates a shape whose transform is the scene transform at index
func NewDynamicAffineShape(child Shape, transformIndex int) *DynamicAffineShape {
	return &DynamicAffineShape{
		affineShape:    affineShape{child: child, transform: core.IdentityAffine(), bbox: core.EmptyAABB()},
		TransformIndex: transformIndex,
	}
}

// Child returns the transformed shape
func (s *DynamicAffineShape) Child() Shape {
	return s.child
}

// Init resolves the transform source and initializes the child
func (s *DynamicAffineShape) Init(data *SceneData) error {
	if s.Source == nil {
		if err := checkIndex("dynamic affine shape", "transform index", s.TransformIndex, len(data.Transforms)); err != nil {
			return err
		}
		s.Source = data.Transforms[s.TransformIndex]
	}
	return initChildren("dynamic affine shape", []Shape{s.child}, data)
}

// Intersect intersects the child in its local frame
func (s *DynamicAffineShape) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	return s.intersect(ray, rng, valid, stats)
}

// IsInside tests p in the child's local frame
func (s *DynamicAffineShape) IsInside(p core.Vec3) bool {
	return s.isInside(p)
}

// BoundingBox returns the box computed at the last update
func (s *DynamicAffineShape) BoundingBox() core.AABB {
	return s.bbox
}

// UpdateBoundingBox reads the current matrix, then updates the child and transforms
// its box
func (s *DynamicAffineShape) UpdateBoundingBox() core.AABB {
	if s.Source != nil {
		s.transform = core.NewAffine(s.Source.Matrix())
	}
	if s.child == nil {
		return core.EmptyAABB()
	}
	return s.updateBoundingBox()
}

// PrimitiveCount returns the child's primitive count
func (s *DynamicAffineShape) PrimitiveCount() int {
	return s.child.PrimitiveCount()
}
