package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is implemented by every primitive and composite node of the scene graph
type Shape interface {
	// Intersect returns the distance along ray to the closest hit whose parameter lies in
	// rng and is accepted by valid, or +Inf when there is none. The returned info is only
	// meaningful for a finite distance.
	Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo)

	// IsInside reports whether p lies inside the closed volume of the shape. Surfaces
	// without an interior always return false.
	IsInside(p core.Vec3) bool

	// BoundingBox returns the box computed by the last UpdateBoundingBox call
	BoundingBox() core.AABB

	// UpdateBoundingBox recomputes the bounding boxes of the subtree bottom-up and
	// returns this shape's box
	UpdateBoundingBox() core.AABB

	// Init resolves material and vertex indices against the scene tables
	Init(data *SceneData) error

	// PrimitiveCount returns the number of leaf primitives in the subtree
	PrimitiveCount() int
}

// IntersectionInfo describes a ray/surface hit
type IntersectionInfo struct {
	Position core.Vec3          // World-space hit point
	Normal   core.Vec3          // Unit geometric outward normal
	TexCoord core.Vec2          // Texture coordinate, zero when the surface defines none
	Material *material.Material // Material of the surface
}

// Validity filters candidate hit parameters. A nil Validity accepts every parameter.
type Validity func(t float64) bool

// Accepts reports whether t passes the filter
func (v Validity) Accepts(t float64) bool {
	return v == nil || v(t)
}

// And combines two filters
func (v Validity) And(other func(t float64) bool) Validity {
	return func(t float64) bool {
		return v.Accepts(t) && other(t)
	}
}

// Vertex is an entry of the scene's vertex table
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3 // Zero for a triangle that should use its face normal
	TexCoord core.Vec2
}

// MatrixSource supplies the current matrix of a time-varying transform
type MatrixSource interface {
	Matrix() mgl64.Mat4
}

// SceneData holds the tables that shapes reference by index
type SceneData struct {
	Materials  []*material.Material
	Vertices   []Vertex
	Transforms []MatrixSource
}

// Miss is the distance returned when nothing is hit
func Miss() (float64, IntersectionInfo) {
	return infinity, IntersectionInfo{}
}
