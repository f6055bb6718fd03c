package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTextureScene creates a scene demonstrating texture mapping on every textured
// primitive. Extra textures, such as images loaded from disk, may be passed in; the
// first one replaces the texture of the ground.
func NewTextureScene(extra ...*material.Texture) *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(0, 2, 10),
		LookAt:   core.NewVec3(0, 1, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     50,
	})
	s := NewScene(camera)

	checkerboard := s.AddTexture(material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), // White
		core.NewVec3(0.2, 0.2, 0.8), // Blue
	))
	gradient := s.AddTexture(material.NewGradientTexture(256, 256,
		core.NewVec3(1.0, 0.2, 0.2), // Red (top)
		core.NewVec3(0.2, 1.0, 0.2), // Green (bottom)
	))
	brick := s.AddTexture(material.NewCheckerboardTexture(512, 512, 16,
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
	))
	floor := s.AddTexture(material.NewCheckerboardTexture(512, 512, 64,
		core.NewVec3(0.8, 0.8, 0.8),
		core.NewVec3(0.3, 0.3, 0.3),
	))
	for i, t := range extra {
		index := s.AddTexture(t)
		if i == 0 {
			floor = index
		}
	}

	textured := func(textureIndex int, specular float64) int {
		m := phongMaterial(core.NewVec3(1, 1, 1), specular, 32)
		m.TextureIndex = textureIndex
		return s.AddMaterial(m)
	}
	checkerMat := textured(checkerboard, 0.3)
	gradientMat := textured(gradient, 0.2)
	brickMat := textured(brick, 0.1)
	floorMat := textured(floor, 0)

	// All shapes in a single row, left to right
	s.AddShapes(
		NewGroundBox(0, 16, floorMat),
		geometry.NewSphere(core.NewVec3(-6, 1, 0), 1, checkerMat),
		geometry.NewCylinder(core.NewVec3(-3.5, 1, 0), 0.6, 2, gradientMat),
		geometry.NewBox(core.NewVec3(-1, 0.75, 0), core.NewVec3(1.5, 1.5, 1.5), brickMat),
		geometry.NewCone(core.NewVec3(1.5, 0, 0), 0.8, 2, checkerMat),
		geometry.NewTorus(core.NewVec3(4.5, 0.4, 0), 1, 0.4, gradientMat),
	)

	s.AddLights(
		lights.NewDirectionalLight(core.NewVec3(-0.3, -1, -0.7), lights.Colors{
			Ambient:  core.NewVec3(0.25, 0.25, 0.25),
			Diffuse:  core.NewVec3(0.7, 0.7, 0.7),
			Specular: core.NewVec3(0.5, 0.5, 0.5),
		}),
	)
	return s
}
