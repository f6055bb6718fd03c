package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera by where it is and what it looks at
type CameraConfig struct {
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	VFov     float64 // Vertical field of view in degrees
}

// Camera is a pinhole camera with an orthonormal basis
type Camera struct {
	Position    core.Vec3
	Forward     core.Vec3
	Up          core.Vec3
	Right       core.Vec3
	HeightAngle float64 // Vertical field of view in radians
}

// NewCamera builds the camera basis from config. An up vector parallel to the view
// direction is replaced by whichever world axis is least aligned with it.
func NewCamera(config CameraConfig) *Camera {
	forward := config.LookAt.Subtract(config.Position).Normalize()
	if forward.IsZero() {
		forward = core.NewVec3(0, 0, -1)
	}
	up := config.Up.Normalize()
	if up.IsZero() || math.Abs(up.Dot(forward)) > 1-1e-9 {
		up = leastAlignedAxis(forward)
	}
	right := forward.Cross(up).Normalize()
	up = right.Cross(forward)

	return &Camera{
		Position:    config.Position,
		Forward:     forward,
		Up:          up,
		Right:       right,
		HeightAngle: core.DegToRad(config.VFov),
	}
}

func leastAlignedAxis(v core.Vec3) core.Vec3 {
	x, y, z := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case x <= y && x <= z:
		return core.NewVec3(1, 0, 0)
	case y <= z:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// GetRay returns the unit primary ray through pixel (px, py) of a width x height image.
// Pixel (0, 0) is the top-left corner; offsetX and offsetY in [0, 1) place the sample
// within the pixel, 0.5 being its center.
func (c *Camera) GetRay(px, py, width, height int, offsetX, offsetY float64) core.Ray {
	aspect := float64(width) / float64(height)
	halfHeight := math.Tan(c.HeightAngle / 2)
	halfWidth := halfHeight * aspect

	ndcX := 2*(float64(px)+offsetX)/float64(width) - 1
	ndcY := 1 - 2*(float64(py)+offsetY)/float64(height)

	direction := c.Forward.
		Add(c.Right.Multiply(ndcX * halfWidth)).
		Add(c.Up.Multiply(ndcY * halfHeight)).
		Normalize()
	return core.NewRay(c.Position, direction)
}
