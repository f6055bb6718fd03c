package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TriangleList is a mesh of triangles sharing one material. Its material index
// overrides those of its triangles, and intersection goes through a BVH.
type TriangleList struct {
	Triangles     []*Triangle
	MaterialIndex int

	bvh  *BVH
	bbox core.AABB
}

// NewTriangleList creates a mesh from triangles
func NewTriangleList(materialIndex int, triangles ...*Triangle) *TriangleList {
	return &TriangleList{
		Triangles:     triangles,
		MaterialIndex: materialIndex,
		bvh:           &BVH{},
		bbox:          core.EmptyAABB(),
	}
}

// NewTriangleListFromFaces creates a mesh from a flat list of vertex indices, three per face
func NewTriangleListFromFaces(materialIndex int, faces []int) (*TriangleList, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	triangles := make([]*Triangle, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		triangles = append(triangles, NewTriangle(faces[i], faces[i+1], faces[i+2], materialIndex))
	}
	return NewTriangleList(materialIndex, triangles...), nil
}

// Init assigns the mesh material to every triangle and initializes them
func (l *TriangleList) Init(data *SceneData) error {
	if err := checkIndex("triangle list", "material index", l.MaterialIndex, len(data.Materials)); err != nil {
		return err
	}
	for i, tri := range l.Triangles {
		if tri == nil {
			return missingChild("triangle list", i)
		}
		tri.MaterialIndex = l.MaterialIndex
		if err := tri.Init(data); err != nil {
			return fmt.Errorf("triangle list face %d: %w", i, err)
		}
	}
	return nil
}

// Intersect returns the closest triangle hit
func (l *TriangleList) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	return l.bvh.Intersect(ray, rng, valid, stats)
}

// IsInside counts crossings of a ray from p; an odd count means p is enclosed. Only
// meaningful for closed meshes.
func (l *TriangleList) IsInside(p core.Vec3) bool {
	if !l.bbox.Contains(p) {
		return false
	}
	// Irrational direction components avoid grazing shared edges
	ray := core.NewRay(p, core.NewVec3(1, math.Sqrt2/10, math.Pi/100))
	rng := core.DefaultRange()
	crossings := 0
	for _, tri := range l.Triangles {
		if t, _ := tri.Intersect(ray, rng, nil, nil); !math.IsInf(t, 1) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// BoundingBox returns the mesh's bounding box
func (l *TriangleList) BoundingBox() core.AABB {
	return l.bbox
}

// UpdateBoundingBox updates the triangles and rebuilds the hierarchy over them
func (l *TriangleList) UpdateBoundingBox() core.AABB {
	shapes := make([]Shape, len(l.Triangles))
	for i, tri := range l.Triangles {
		tri.UpdateBoundingBox()
		shapes[i] = tri
	}
	l.bvh = NewBVH(shapes)
	l.bbox = l.bvh.BoundingBox()
	return l.bbox
}

// PrimitiveCount returns the number of triangles
func (l *TriangleList) PrimitiveCount() int {
	return len(l.Triangles)
}
