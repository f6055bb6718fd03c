package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Multiple shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes whose bounding boxes are current
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Copy so partitioning does not reorder the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 4

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := core.EmptyAABB()
	for _, s := range shapes {
		boundingBox = boundingBox.Union(s.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis, splitPos, ok := findSplit(boundingBox)
	if !ok {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	leftShapes, rightShapes := partitionShapes(shapes, axis, splitPos)

	// Ensure we don't create empty partitions
	if len(leftShapes) == 0 || len(rightShapes) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(leftShapes),
		Right:       buildBVH(rightShapes),
	}
}

// findSplit returns the longest axis of the box and its midpoint
func findSplit(boundingBox core.AABB) (axis int, splitPos float64, ok bool) {
	axis = boundingBox.LongestAxis()
	minVal := boundingBox.Min.Component(axis)
	maxVal := boundingBox.Max.Component(axis)

	// Skip if no extent along this axis
	if maxVal <= minVal {
		return 0, 0, false
	}
	return axis, (minVal + maxVal) * 0.5, true
}

// partitionShapes partitions shapes by the center of their boxes
func partitionShapes(shapes []Shape, axis int, splitPos float64) ([]Shape, []Shape) {
	var leftShapes, rightShapes []Shape
	for _, shape := range shapes {
		if shape.BoundingBox().Center().Component(axis) < splitPos {
			leftShapes = append(leftShapes, shape)
		} else {
			rightShapes = append(rightShapes, shape)
		}
	}
	return leftShapes, rightShapes
}

// Intersect returns the closest hit among the shapes in the hierarchy
func (bvh *BVH) Intersect(ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats) (float64, IntersectionInfo) {
	best, info := Miss()
	if bvh.Root == nil {
		return best, info
	}
	bvh.intersectNode(bvh.Root, ray, rng, valid, stats, &best, &info)
	return best, info
}

// intersectNode visits the nearer child first and skips boxes entered beyond the best hit
func (bvh *BVH) intersectNode(node *BVHNode, ray core.Ray, rng core.Interval, valid Validity, stats *core.RayStats, best *float64, info *IntersectionInfo) {
	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			t, hit := shape.Intersect(ray, rng.WithMax(min(rng.Max, *best)), valid, stats)
			if t < *best {
				*best, *info = t, hit
			}
		}
		return
	}

	type visit struct {
		node *BVHNode
		t    float64
	}
	var visits [2]visit
	n := 0
	for _, child := range [2]*BVHNode{node.Left, node.Right} {
		if child == nil {
			continue
		}
		stats.AddBox()
		span := child.BoundingBox.Intersect(ray).Intersect(rng)
		if span.IsEmpty() {
			continue
		}
		visits[n] = visit{child, span.Min}
		n++
	}
	if n == 2 && visits[1].t < visits[0].t {
		visits[0], visits[1] = visits[1], visits[0]
	}
	for _, v := range visits[:n] {
		if v.t > *best {
			break
		}
		bvh.intersectNode(v.node, ray, rng, valid, stats, best, info)
	}
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.EmptyAABB()
	}
	return bvh.Root.BoundingBox
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	totalShapes int
}

// getStats returns statistics about the BVH structure
func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	if bvh.Root != nil {
		bvh.collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if node.Shapes != nil {
		stats.leafNodes++
		stats.totalShapes += len(node.Shapes)
		return
	}
	if node.Left != nil {
		bvh.collectStats(node.Left, depth+1, stats)
	}
	if node.Right != nil {
		bvh.collectStats(node.Right, depth+1, stats)
	}
}
