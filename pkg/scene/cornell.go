package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box built from thin boxes, lit by a spherical area
// light below the ceiling so that shadows are soft
func NewCornellScene() *Scene {
	const size = 5.0
	const wall = 0.1

	camera := geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(0, size/2, 12),
		LookAt:   core.NewVec3(0, size/2, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     30,
	})
	s := NewScene(camera)

	white := s.AddMaterial(phongMaterial(core.NewVec3(0.73, 0.73, 0.73), 0, 1))
	red := s.AddMaterial(phongMaterial(core.NewVec3(0.65, 0.05, 0.05), 0, 1))
	green := s.AddMaterial(phongMaterial(core.NewVec3(0.12, 0.45, 0.15), 0, 1))
	metal := s.AddMaterial(phongMaterial(core.NewVec3(0.05, 0.05, 0.05), 0.85, 200))
	glass := s.AddMaterial(glassMaterial(1.5))

	lamp := material.NewMaterial(core.Vec3{})
	lamp.Emissive = core.NewVec3(1, 1, 0.95)
	lampIndex := s.AddMaterial(lamp)

	half := size / 2
	s.AddShapes(
		// Floor, ceiling and back wall
		geometry.NewBox(core.NewVec3(0, -wall/2, 0), core.NewVec3(size, wall, size), white),
		geometry.NewBox(core.NewVec3(0, size+wall/2, 0), core.NewVec3(size, wall, size), white),
		geometry.NewBox(core.NewVec3(0, half, -half-wall/2), core.NewVec3(size, size, wall), white),
		geometry.NewBox(core.NewVec3(-half-wall/2, half, 0), core.NewVec3(wall, size, size), red),
		geometry.NewBox(core.NewVec3(half+wall/2, half, 0), core.NewVec3(wall, size, size), green),
		geometry.NewSphere(core.NewVec3(-1.1, 0.8, -0.9), 0.8, metal),
		geometry.NewSphere(core.NewVec3(1.1, 0.9, 0.6), 0.9, glass),
		geometry.NewBox(core.NewVec3(0, size-0.01, 0), core.NewVec3(1.2, 0.02, 1.2), lampIndex),
	)

	s.AddLights(lights.NewSphereLight(core.NewVec3(0, size-0.6, 0), 0.4, lights.Colors{
		Ambient:  core.NewVec3(0.15, 0.15, 0.15),
		Diffuse:  core.NewVec3(0.9, 0.9, 0.85),
		Specular: core.NewVec3(0.6, 0.6, 0.6),
	}, lights.Attenuation{Constant: 1, Linear: 0.05}))
	return s
}
