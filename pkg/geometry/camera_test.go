package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func testCamera() *Camera {
	return NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
	})
}

func TestCamera_Basis(t *testing.T) {
	c := testCamera()
	if !vecClose(c.Forward, core.NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected forward (0,0,-1), got %v", c.Forward)
	}
	if !vecClose(c.Right, core.NewVec3(1, 0, 0), tolerance) {
		t.Errorf("Expected right (1,0,0), got %v", c.Right)
	}
	if !vecClose(c.Up, core.NewVec3(0, 1, 0), tolerance) {
		t.Errorf("Expected up (0,1,0), got %v", c.Up)
	}
}

func TestCamera_ParallelUp(t *testing.T) {
	c := NewCamera(CameraConfig{LookAt: core.NewVec3(0, -1, 0), Up: core.NewVec3(0, 1, 0), VFov: 60})
	if math.Abs(c.Up.Dot(c.Forward)) > tolerance || math.Abs(c.Right.Length()-1) > tolerance {
		t.Errorf("Expected an orthonormal basis, got forward %v up %v right %v", c.Forward, c.Up, c.Right)
	}
}

func TestCamera_GetRay(t *testing.T) {
	c := testCamera()
	s := math.Sqrt(1.0 / 3)

	tests := []struct {
		name             string
		px, py           int
		offsetX, offsetY float64
		expected         core.Vec3
	}{
		{"center", 1, 1, 0, 0, core.NewVec3(0, 0, -1)},
		{"top left corner", 0, 0, 0, 0, core.NewVec3(-s, s, -s)},
		{"bottom right corner", 1, 1, 1, 1, core.NewVec3(s, -s, -s)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := c.GetRay(tt.px, tt.py, 2, 2, tt.offsetX, tt.offsetY)
			if !vecClose(ray.Direction, tt.expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
			if ray.Origin != c.Position {
				t.Errorf("Expected origin %v, got %v", c.Position, ray.Origin)
			}
		})
	}
}

// Pixel centers are symmetric about the view axis
func TestCamera_PixelCenters(t *testing.T) {
	c := testCamera()
	left := c.GetRay(0, 5, 10, 10, 0.5, 0.5)
	right := c.GetRay(9, 4, 10, 10, 0.5, 0.5)
	if math.Abs(left.Direction.X+right.Direction.X) > 1e-9 || math.Abs(left.Direction.Y+right.Direction.Y) > 1e-9 {
		t.Errorf("Expected mirrored directions, got %v and %v", left.Direction, right.Direction)
	}
}
