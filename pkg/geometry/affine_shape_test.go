package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestStaticAffineShape_IdentityMatchesChild(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	data := testData()
	plain := NewSphere(core.NewVec3(0.3, -0.2, 0.1), 1.2, 0)
	wrapped := NewStaticAffineShape(NewSphere(core.NewVec3(0.3, -0.2, 0.1), 1.2, 0), mgl64.Ident4())
	mustInit(t, plain, data)
	mustInit(t, wrapped, data)

	for i := 0; i < 100; i++ {
		origin := core.NewVec3(random.Float64()*6-3, random.Float64()*6-3, 5)
		ray := core.NewRay(origin, core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, -1))

		d1, i1 := plain.Intersect(ray, core.DefaultRange(), nil, nil)
		d2, i2 := wrapped.Intersect(ray, core.DefaultRange(), nil, nil)

		if math.IsInf(d1, 1) != math.IsInf(d2, 1) {
			t.Fatalf("Ray %d: hit mismatch %f vs %f", i, d1, d2)
		}
		if math.IsInf(d1, 1) {
			continue
		}
		if math.Abs(d1-d2) > 1e-9 {
			t.Errorf("Ray %d: expected t=%f, got t=%f", i, d1, d2)
		}
		if !vecClose(i1.Position, i2.Position, 1e-9) || !vecClose(i1.Normal, i2.Normal, 1e-9) {
			t.Errorf("Ray %d: expected %v/%v, got %v/%v", i, i1.Position, i1.Normal, i2.Position, i2.Normal)
		}
	}
}

func TestStaticAffineShape_TranslatedAndScaled(t *testing.T) {
	// Unit sphere stretched to an ellipsoid of semi-axes (2, 1, 1) and moved to x=10
	m := mgl64.Translate3D(10, 0, 0).Mul4(mgl64.Scale3D(2, 1, 1))
	shape := NewStaticAffineShape(NewSphere(core.NewVec3(0, 0, 0), 1, 0), m)
	mustInit(t, shape, testData())

	tests := []struct {
		name     string
		ray      core.Ray
		expected float64
		position core.Vec3
		normal   core.Vec3
	}{
		{"along stretched axis", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 8, core.NewVec3(8, 0, 0), core.NewVec3(-1, 0, 0)},
		{"unnormalized direction", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(4, 0, 0)), 2, core.NewVec3(8, 0, 0), core.NewVec3(-1, 0, 0)},
		{"across unit axis", core.NewRay(core.NewVec3(10, 5, 0), core.NewVec3(0, -1, 0)), 4, core.NewVec3(10, 1, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, info := shape.Intersect(tt.ray, core.DefaultRange(), nil, nil)
			if math.Abs(dist-tt.expected) > 1e-9 {
				t.Fatalf("Expected t=%f, got t=%f", tt.expected, dist)
			}
			if !vecClose(info.Position, tt.position, 1e-9) {
				t.Errorf("Expected position %v, got %v", tt.position, info.Position)
			}
			if !vecClose(info.Normal, tt.normal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.normal, info.Normal)
			}
		})
	}

	box := shape.BoundingBox()
	if !vecClose(box.Min, core.NewVec3(8, -1, -1), 1e-9) || !vecClose(box.Max, core.NewVec3(12, 1, 1), 1e-9) {
		t.Errorf("Unexpected bounding box %v", box)
	}
	if !shape.IsInside(core.NewVec3(11.5, 0, 0)) || shape.IsInside(core.NewVec3(10, 1.5, 0)) {
		t.Error("IsInside should test in the local frame")
	}
}

func TestStaticAffineShape_Sheared(t *testing.T) {
	// Shear x by y: the normal must come from the inverse transpose
	shear := mgl64.Ident4()
	shear.Set(0, 1, 1)
	shape := NewStaticAffineShape(NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2), 0), shear)
	mustInit(t, shape, testData())

	ray := core.NewRay(core.NewVec3(5, 0.5, 0), core.NewVec3(-1, 0, 0))
	dist, info := shape.Intersect(ray, core.DefaultRange(), nil, nil)
	// The +x face moves to x = 1 + y
	if math.Abs(dist-3.5) > 1e-9 {
		t.Fatalf("Expected t=3.5, got t=%f", dist)
	}
	expected := core.NewVec3(1, -1, 0).Normalize()
	if !vecClose(info.Normal, expected, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expected, info.Normal)
	}
}

type fixedMatrix struct {
	m mgl64.Mat4
}

func (f *fixedMatrix) Matrix() mgl64.Mat4 {
	return f.m
}

func TestDynamicAffineShape_FollowsSource(t *testing.T) {
	source := &fixedMatrix{m: mgl64.Translate3D(0, 0, -5)}
	data := testData()
	data.Transforms = []MatrixSource{source}

	shape := NewDynamicAffineShape(NewSphere(core.NewVec3(0, 0, 0), 1, 0), 0)
	list := NewShapeList(shape)
	mustInit(t, list, data)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if dist, _ := list.Intersect(ray, core.DefaultRange(), nil, nil); math.Abs(dist-4) > 1e-9 {
		t.Fatalf("Expected t=4, got t=%f", dist)
	}

	source.m = mgl64.Translate3D(0, 0, -10)
	list.UpdateBoundingBox()
	if dist, _ := list.Intersect(ray, core.DefaultRange(), nil, nil); math.Abs(dist-9) > 1e-9 {
		t.Errorf("Expected t=9 after moving, got t=%f", dist)
	}
	if box := list.BoundingBox(); math.Abs(box.Max.Z+9) > 1e-9 {
		t.Errorf("Expected box to follow the transform, got %v", box)
	}
}

func TestDynamicAffineShape_InvalidTransformIndex(t *testing.T) {
	shape := NewDynamicAffineShape(NewSphere(core.NewVec3(0, 0, 0), 1, 0), 2)
	if err := shape.Init(testData()); err == nil {
		t.Error("Expected error for transform index 2")
	}
}
