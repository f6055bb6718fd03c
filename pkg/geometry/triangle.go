package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle is a triangle whose corners are entries of the scene's vertex table. Normals
// and texture coordinates are interpolated with barycentric weights.
type Triangle struct {
	VertexIndices [3]int
	MaterialIndex int

	vertices [3]Vertex
	material *material.Material
	normal   core.Vec3 // Unit face normal, oriented to agree with the vertex normals
	bbox     core.AABB

	// Barycentric precomputation
	edge0, edge1     core.Vec3
	d00, d01, d11    float64
	invDenom         float64
	degenerate       bool
	useVertexNormals [3]bool
}

// NewTriangle creates a triangle referencing three vertex indices
func NewTriangle(v0, v1, v2, materialIndex int) *Triangle {
	return &Triangle{
		VertexIndices: [3]int{v0, v1, v2},
		MaterialIndex: materialIndex,
		bbox:          core.EmptyAABB(),
	}
}

// Init resolves the vertices and material and precomputes the barycentric terms
func (t *Triangle) Init(data *SceneData) error {
	m, err := resolveMaterial("triangle", t.MaterialIndex, data)
	if err != nil {
		return err
	}
	for i, index := range t.VertexIndices {
		if err := checkIndex("triangle", "vertex index", index, len(data.Vertices)); err != nil {
			return err
		}
		t.vertices[i] = data.Vertices[index]
	}
	t.material = m
	t.precompute()
	t.UpdateBoundingBox()
	return nil
}

func (t *Triangle) precompute() {
	p0 := t.vertices[0].Position
	t.edge0 = t.vertices[1].Position.Subtract(p0)
	t.edge1 = t.vertices[2].Position.Subtract(p0)

	t.d00 = t.edge0.Dot(t.edge0)
	t.d01 = t.edge0.Dot(t.edge1)
	t.d11 = t.edge1.Dot(t.edge1)
	denom := t.d00*t.d11 - t.d01*t.d01

	t.normal = t.edge0.Cross(t.edge1).Normalize()
	t.degenerate = denom == 0 || t.normal.IsZero()
	if !t.degenerate {
		t.invDenom = 1 / denom
	}

	// Flip the face normal when the stored vertex normals point the other way
	var sum core.Vec3
	for i := range t.vertices {
		n := t.vertices[i].Normal.Normalize()
		t.vertices[i].Normal = n
		t.useVertexNormals[i] = !n.IsZero()
		sum = sum.Add(n)
	}
	if sum.Dot(t.normal) < 0 {
		t.normal = t.normal.Negate()
	}
}

// Barycentric returns the barycentric weights of p relative to the triangle's corners
func (t *Triangle) Barycentric(p core.Vec3) (float64, float64, float64) {
	v2 := p.Subtract(t.vertices[0].Position)
	d20 := v2.Dot(t.edge0)
	d21 := v2.Dot(t.edge1)
	b1 := (t.d11*d20 - t.d01*d21) * t.invDenom
	b2 := (t.d00*d21 - t.d01*d20) * t.invDenom
	return 1 - b1 - b2, b1, b2
}

// Intersect intersects the ray with the triangle's plane and rejects hits with a
// negative barycentric weight
func (t *Triangle) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	stats.AddPrimitive()
	if t.degenerate {
		return Miss()
	}

	// n·(o + t*d - p0) = 0
	plane := core.SolveLinear(t.normal.Dot(ray.Origin.Subtract(t.vertices[0].Position)), t.normal.Dot(ray.Direction))
	if len(plane) == 0 {
		return Miss()
	}
	dist := plane[0]
	if math.IsInf(dist, 0) || math.IsNaN(dist) || !rng.Contains(dist) || !valid.Accepts(dist) {
		return Miss()
	}

	p := ray.At(dist)
	w0, w1, w2 := t.Barycentric(p)
	if w0 < 0 || w1 < 0 || w2 < 0 {
		return Miss()
	}

	return dist, IntersectionInfo{
		Position: p,
		Normal:   t.interpolateNormal(w0, w1, w2),
		TexCoord: t.vertices[0].TexCoord.Multiply(w0).
			Add(t.vertices[1].TexCoord.Multiply(w1)).
			Add(t.vertices[2].TexCoord.Multiply(w2)),
		Material: t.material,
	}
}

func (t *Triangle) interpolateNormal(w0, w1, w2 float64) core.Vec3 {
	weights := [3]float64{w0, w1, w2}
	var n core.Vec3
	for i, w := range weights {
		if t.useVertexNormals[i] {
			n = n.Add(t.vertices[i].Normal.Multiply(w))
		} else {
			n = n.Add(t.normal.Multiply(w))
		}
	}
	n = n.Normalize()
	if n.IsZero() {
		return t.normal
	}
	return n
}

// Normal returns the unit face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// IsInside always returns false: a triangle bounds no volume
func (t *Triangle) IsInside(p core.Vec3) bool {
	return false
}

// BoundingBox returns the box of the three corners
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// UpdateBoundingBox recomputes the box from the resolved vertices
func (t *Triangle) UpdateBoundingBox() core.AABB {
	t.bbox = core.NewAABBFromPoints(t.vertices[0].Position, t.vertices[1].Position, t.vertices[2].Position)
	return t.bbox
}

// PrimitiveCount returns 1
func (t *Triangle) PrimitiveCount() int {
	return 1
}
