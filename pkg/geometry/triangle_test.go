package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// triangleData returns a unit right triangle in the z=0 plane with distinct tilted
// vertex normals and texture coordinates
func triangleData() *SceneData {
	data := testData()
	data.Vertices = []Vertex{
		{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(-0.2, -0.2, 1).Normalize(), TexCoord: core.NewVec2(0, 0)},
		{Position: core.NewVec3(1, 0, 0), Normal: core.NewVec3(0.3, 0, 1).Normalize(), TexCoord: core.NewVec2(1, 0)},
		{Position: core.NewVec3(0, 1, 0), Normal: core.NewVec3(0, 0.3, 1).Normalize(), TexCoord: core.NewVec2(0, 1)},
	}
	return data
}

func TestTriangle_Intersect_Barycentric(t *testing.T) {
	tri := NewTriangle(0, 1, 2, 0)
	mustInit(t, tri, triangleData())

	tests := []struct {
		name   string
		x, y   float64
		hit    bool
		weight [3]float64
	}{
		{"centroid", 1.0 / 3, 1.0 / 3, true, [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}},
		{"interior", 0.2, 0.5, true, [3]float64{0.3, 0.2, 0.5}},
		{"edge midpoint", 0.5, 0.5, true, [3]float64{0, 0.5, 0.5}},
		{"outside", 0.8, 0.8, false, [3]float64{}},
		{"negative side", -0.1, 0.5, false, [3]float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(tt.x, tt.y, 2), core.NewVec3(0, 0, -1))
			rng := core.DefaultRange()
			dist, info := tri.Intersect(ray, rng, nil, nil)

			if math.IsInf(dist, 1) == tt.hit {
				t.Fatalf("Expected hit=%t, got t=%f", tt.hit, dist)
			}
			if !tt.hit {
				return
			}
			checkContract(t, dist, info, rng)

			w0, w1, w2 := tri.Barycentric(info.Position)
			if math.Abs(w0+w1+w2-1) > tolerance {
				t.Errorf("Weights sum to %f, expected 1", w0+w1+w2)
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				t.Errorf("Negative weight in (%f, %f, %f)", w0, w1, w2)
			}
			got := [3]float64{w0, w1, w2}
			for i := range got {
				if math.Abs(got[i]-tt.weight[i]) > 1e-9 {
					t.Errorf("Weight %d: expected %f, got %f", i, tt.weight[i], got[i])
				}
			}
			expectedUV := core.NewVec2(tt.x, tt.y)
			if math.Abs(info.TexCoord.X-expectedUV.X) > 1e-9 || math.Abs(info.TexCoord.Y-expectedUV.Y) > 1e-9 {
				t.Errorf("Expected texture coordinate %v, got %v", expectedUV, info.TexCoord)
			}
		})
	}
}

func TestTriangle_Intersect_VertexAttributes(t *testing.T) {
	data := triangleData()
	tri := NewTriangle(0, 1, 2, 0)
	mustInit(t, tri, data)

	for i, v := range data.Vertices {
		ray := core.NewRay(v.Position.Add(core.NewVec3(0, 0, 1)), core.NewVec3(0, 0, -1))
		dist, info := tri.Intersect(ray, core.DefaultRange(), nil, nil)
		if math.IsInf(dist, 1) {
			t.Fatalf("Vertex %d: expected hit", i)
		}
		if !vecClose(info.Normal, v.Normal, 1e-12) {
			t.Errorf("Vertex %d: expected normal %v, got %v", i, v.Normal, info.Normal)
		}
		if info.TexCoord != v.TexCoord {
			t.Errorf("Vertex %d: expected texture coordinate %v, got %v", i, v.TexCoord, info.TexCoord)
		}
	}
}

func TestTriangle_FaceNormalFallback(t *testing.T) {
	data := testData()
	// Clockwise when seen from +z, so the geometric normal is -z
	data.Vertices = []Vertex{
		{Position: core.NewVec3(0, 0, 0)},
		{Position: core.NewVec3(0, 1, 0)},
		{Position: core.NewVec3(1, 0, 0)},
	}
	tri := NewTriangle(0, 1, 2, 0)
	mustInit(t, tri, data)

	ray := core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(0, 0, -1))
	_, info := tri.Intersect(ray, core.DefaultRange(), nil, nil)
	if !vecClose(info.Normal, core.NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected face normal (0, 0, -1), got %v", info.Normal)
	}
}

func TestTriangle_ParallelAndDegenerate(t *testing.T) {
	tri := NewTriangle(0, 1, 2, 0)
	mustInit(t, tri, triangleData())

	parallel := core.NewRay(core.NewVec3(0.2, 0.2, 1), core.NewVec3(1, 0, 0))
	if dist, _ := tri.Intersect(parallel, core.DefaultRange(), nil, nil); !math.IsInf(dist, 1) {
		t.Errorf("Expected miss for parallel ray, got t=%f", dist)
	}

	data := testData()
	data.Vertices = []Vertex{
		{Position: core.NewVec3(0, 0, 0)},
		{Position: core.NewVec3(1, 1, 1)},
		{Position: core.NewVec3(2, 2, 2)},
	}
	degenerate := NewTriangle(0, 1, 2, 0)
	mustInit(t, degenerate, data)
	ray := core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1))
	if dist, _ := degenerate.Intersect(ray, core.DefaultRange(), nil, nil); !math.IsInf(dist, 1) {
		t.Errorf("Expected miss for degenerate triangle, got t=%f", dist)
	}
}

func TestTriangle_InitInvalidVertex(t *testing.T) {
	tri := NewTriangle(0, 1, 5, 0)
	if err := tri.Init(triangleData()); err == nil {
		t.Error("Expected error for vertex index 5")
	}
}
