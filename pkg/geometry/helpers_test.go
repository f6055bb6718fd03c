package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const tolerance = 1e-9

// testData returns scene tables with two materials and no vertices
func testData() *SceneData {
	return &SceneData{
		Materials: []*material.Material{
			material.NewMaterial(core.NewVec3(0.8, 0.2, 0.2)),
			material.NewMaterial(core.NewVec3(0.2, 0.8, 0.2)),
		},
	}
}

func mustInit(t *testing.T, s Shape, data *SceneData) {
	t.Helper()
	if err := s.Init(data); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.UpdateBoundingBox()
}

func vecClose(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// checkContract verifies that a hit lies in range and has a unit normal
func checkContract(t *testing.T, dist float64, info IntersectionInfo, rng core.Interval) {
	t.Helper()
	if math.IsInf(dist, 1) {
		return
	}
	if !rng.Contains(dist) {
		t.Errorf("Distance %f outside range [%f, %f]", dist, rng.Min, rng.Max)
	}
	if math.Abs(info.Normal.Length()-1) > 1e-6 {
		t.Errorf("Normal %v is not unit length", info.Normal)
	}
}
