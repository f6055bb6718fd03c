package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Two unit spheres centered at x=-0.5 and x=+0.5; a ray along x crosses their surfaces
// at -1.5, -0.5 (left exit is +0.5) and +0.5 (right entry is -0.5), +1.5
func overlappingSpheres() (Shape, Shape) {
	return NewSphere(core.NewVec3(-0.5, 0, 0), 1, 0), NewSphere(core.NewVec3(0.5, 0, 0), 1, 1)
}

func TestCSG_AlongAxis(t *testing.T) {
	left, right := overlappingSpheres()
	// Ray from x=-5 toward +x, so x = -5 + t
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))

	tests := []struct {
		name       string
		shape      Shape
		entry      float64
		normal     core.Vec3
		exitAfter  float64 // restart the query just past entry to find the next boundary
		exit       float64
		exitNormal core.Vec3
	}{
		{"union", NewUnion(left, right), 3.5, core.NewVec3(-1, 0, 0), 3.6, 6.5, core.NewVec3(1, 0, 0)},
		{"intersection", NewIntersection(left, right), 4.5, core.NewVec3(-1, 0, 0), 4.6, 5.5, core.NewVec3(1, 0, 0)},
		{"difference", NewDifference(left, right), 3.5, core.NewVec3(-1, 0, 0), 3.6, 4.5, core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustInit(t, tt.shape, testData())

			dist, info := tt.shape.Intersect(ray, core.DefaultRange(), nil, nil)
			if math.Abs(dist-tt.entry) > tolerance {
				t.Fatalf("Expected entry t=%f, got t=%f", tt.entry, dist)
			}
			if !vecClose(info.Normal, tt.normal, tolerance) {
				t.Errorf("Expected entry normal %v, got %v", tt.normal, info.Normal)
			}

			dist, info = tt.shape.Intersect(ray, core.NewInterval(tt.exitAfter, math.Inf(1)), nil, nil)
			if math.Abs(dist-tt.exit) > tolerance {
				t.Fatalf("Expected exit t=%f, got t=%f", tt.exit, dist)
			}
			if !vecClose(info.Normal, tt.exitNormal, tolerance) {
				t.Errorf("Expected exit normal %v, got %v", tt.exitNormal, info.Normal)
			}
		})
	}
}

func TestDifference_CarvedSurfaceUsesSubtrahendMaterial(t *testing.T) {
	left, right := overlappingSpheres()
	diff := NewDifference(left, right)
	data := testData()
	mustInit(t, diff, data)

	// From the right, the first boundary of the difference is the carved face at x=-0.5
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))
	dist, info := diff.Intersect(ray, core.DefaultRange(), nil, nil)
	if math.Abs(dist-5.5) > tolerance {
		t.Fatalf("Expected t=5.5, got t=%f", dist)
	}
	if !vecClose(info.Normal, core.NewVec3(1, 0, 0), tolerance) {
		t.Errorf("Carved face should point out of the difference, got %v", info.Normal)
	}
	if info.Material != data.Materials[1] {
		t.Error("Expected the subtrahend's material on the carved face")
	}
}

func TestCSG_IsInside(t *testing.T) {
	left, right := overlappingSpheres()
	onlyLeft := core.NewVec3(-1.2, 0, 0)
	both := core.NewVec3(0, 0, 0)
	neither := core.NewVec3(0, 3, 0)

	tests := []struct {
		name     string
		shape    Shape
		expected [3]bool
	}{
		{"union", NewUnion(left, right), [3]bool{true, true, false}},
		{"intersection", NewIntersection(left, right), [3]bool{false, true, false}},
		{"difference", NewDifference(left, right), [3]bool{true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, p := range []core.Vec3{onlyLeft, both, neither} {
				if got := tt.shape.IsInside(p); got != tt.expected[i] {
					t.Errorf("IsInside(%v): expected %t, got %t", p, tt.expected[i], got)
				}
			}
		})
	}
}

func TestIntersection_BoundingBoxOverlap(t *testing.T) {
	left, right := overlappingSpheres()
	box := NewIntersection(left, right).UpdateBoundingBox()
	if math.Abs(box.Min.X+0.5) > tolerance || math.Abs(box.Max.X-0.5) > tolerance {
		t.Errorf("Expected x extent [-0.5, 0.5], got [%f, %f]", box.Min.X, box.Max.X)
	}
}

func TestDisjointIntersectionIsEmpty(t *testing.T) {
	a := NewSphere(core.NewVec3(-5, 0, 0), 1, 0)
	b := NewSphere(core.NewVec3(5, 0, 0), 1, 0)
	n := NewIntersection(a, b)
	mustInit(t, n, testData())

	ray := core.NewRay(core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0))
	if dist, _ := n.Intersect(ray, core.DefaultRange(), nil, nil); !math.IsInf(dist, 1) {
		t.Errorf("Expected miss, got t=%f", dist)
	}
}
