package core

import (
	"math"
	"testing"
)

func TestAABB_Intersect(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
		tMin      float64
		tMax      float64
	}{
		{"through center", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true, 4, 6},
		{"miss", NewRay(NewVec3(3, 0, 5), NewVec3(0, 0, -1)), false, 0, 0},
		{"behind origin", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false, 0, 0},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true, -1, 1},
		{"parallel outside slab", NewRay(NewVec3(0, 2, 5), NewVec3(0, 0, -1)), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := box.Intersect(tt.ray)
			if interval.IsEmpty() == tt.expectHit {
				t.Fatalf("Expected hit=%t, got interval %v", tt.expectHit, interval)
			}
			if !tt.expectHit {
				return
			}
			if math.Abs(interval.Min-tt.tMin) > 1e-9 || math.Abs(interval.Max-tt.tMax) > 1e-9 {
				t.Errorf("Expected [%f, %f], got [%f, %f]", tt.tMin, tt.tMax, interval.Min, interval.Max)
			}
		})
	}
}

func TestAABB_EmptyUnion(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	union := EmptyAABB().Union(box)
	if union != box {
		t.Errorf("Expected union with empty box to be %v, got %v", box, union)
	}
	if EmptyAABB().IsValid() {
		t.Error("Empty box should not be valid")
	}
	if !EmptyAABB().Intersect(NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))).IsEmpty() {
		t.Error("Empty box should never be hit")
	}
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(1, 2, 3))
	corners := box.Corners()
	if NewAABBFromPoints(corners[:]...) != box {
		t.Errorf("Corners should reproduce the box, got %v", corners)
	}
}
