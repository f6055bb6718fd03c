package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross x", NewVec3(0, 1, 0), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"parallel", NewVec3(2, 2, 2), NewVec3(1, 1, 1), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(3, 0, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-9 || math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Z-0.8) > 1e-9 {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", n)
	}
	if !(Vec3{}).Normalize().IsZero() {
		t.Error("Expected the zero vector to normalize to zero")
	}
}

func TestVec3_DivideVec(t *testing.T) {
	result := NewVec3(0.01, 0.01, 0.01).DivideVec(NewVec3(0.5, 0, 0.1))
	if math.Abs(result.X-0.02) > 1e-12 || !math.IsInf(result.Y, 1) || math.Abs(result.Z-0.1) > 1e-12 {
		t.Errorf("Expected (0.02, +Inf, 0.1), got %v", result)
	}
}

func TestVec3_Clamp(t *testing.T) {
	result := NewVec3(-0.5, 0.25, 3).Clamp(0, 1)
	if result != NewVec3(0, 0.25, 1) {
		t.Errorf("Expected (0, 0.25, 1), got %v", result)
	}
}

func TestVec3_Comparisons(t *testing.T) {
	tests := []struct {
		name     string
		got      bool
		expected bool
	}{
		{"all greater", NewVec3(2, 3, 4).AllGreater(1), true},
		{"one equal", NewVec3(2, 1, 4).AllGreater(1), false},
		{"any greater", NewVec3(0, 0, 2).AnyGreater(NewVec3(1, 1, 1)), true},
		{"none greater", NewVec3(1, 1, 1).AnyGreater(NewVec3(1, 1, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	i := NewInterval(1, 5)
	if !i.Contains(1) || !i.Contains(5) || i.Contains(5.5) {
		t.Errorf("Unexpected containment for %v", i)
	}

	overlap := i.Intersect(NewInterval(3, 8))
	if overlap != NewInterval(3, 5) {
		t.Errorf("Expected [3, 5], got %v", overlap)
	}
	if !i.Intersect(NewInterval(6, 8)).IsEmpty() {
		t.Error("Expected disjoint intervals to have an empty overlap")
	}
	if !EmptyInterval().IsEmpty() || DefaultRange().IsEmpty() {
		t.Error("Unexpected emptiness of the predefined intervals")
	}
	if DefaultRange().Contains(0) {
		t.Error("Expected the default range to exclude the ray origin")
	}
	if i.WithMax(2) != NewInterval(1, 2) {
		t.Errorf("Expected [1, 2], got %v", i.WithMax(2))
	}
}
