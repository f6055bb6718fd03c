package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// phongMaterial creates an opaque material with a Phong highlight. The ambient
// response follows the diffuse color at a tenth of its strength.
func phongMaterial(diffuse core.Vec3, specular, fallOff float64) *material.Material {
	m := material.NewMaterial(diffuse)
	m.Ambient = diffuse.Multiply(0.1)
	m.Specular = core.NewVec3(specular, specular, specular)
	m.SpecularFallOff = fallOff
	return m
}

// glassMaterial creates a clear refracting material
func glassMaterial(ior float64) *material.Material {
	m := material.NewMaterial(core.NewVec3(0.05, 0.05, 0.05))
	m.Specular = core.NewVec3(0.1, 0.1, 0.1)
	m.SpecularFallOff = 64
	m.Transparent = core.NewVec3(0.9, 0.9, 0.9)
	m.IndexOfRefraction = ior
	return m
}

// NewGroundBox creates a thin box whose top face is a floor at height y
func NewGroundBox(y, size float64, materialIndex int) *geometry.Box {
	return geometry.NewBox(core.NewVec3(0, y-0.05, 0), core.NewVec3(size, 0.1, size), materialIndex)
}

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(0, 1.5, 6),
		LookAt:   core.NewVec3(0, 0.75, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	})
	s := NewScene(camera)

	ground := s.AddMaterial(phongMaterial(core.NewVec3(0.6, 0.6, 0.5), 0.2, 8))
	red := s.AddMaterial(phongMaterial(core.NewVec3(0.7, 0.2, 0.15), 0.3, 32))
	mirror := s.AddMaterial(phongMaterial(core.NewVec3(0.1, 0.1, 0.1), 0.8, 128))
	glass := s.AddMaterial(glassMaterial(1.5))
	blue := s.AddMaterial(phongMaterial(core.NewVec3(0.1, 0.2, 0.6), 0.2, 16))

	s.AddShapes(
		NewGroundBox(0, 20, ground),
		geometry.NewSphere(core.NewVec3(0, 0.75, 0), 0.75, red),
		geometry.NewSphere(core.NewVec3(-1.7, 0.6, -0.5), 0.6, mirror),
		geometry.NewSphere(core.NewVec3(1.5, 0.5, 0.8), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1.2, 0.25, -1.5), 0.25, blue),
	)

	s.AddLights(
		lights.NewDirectionalLight(core.NewVec3(-0.4, -1, -0.6), lights.Colors{
			Ambient:  core.NewVec3(0.2, 0.2, 0.2),
			Diffuse:  core.NewVec3(0.6, 0.6, 0.55),
			Specular: core.NewVec3(0.6, 0.6, 0.6),
		}),
		lights.NewPointLight(core.NewVec3(3, 4, 3), lights.UniformColors(core.NewVec3(0.5, 0.5, 0.6)),
			lights.Attenuation{Constant: 1, Linear: 0.05, Quadratic: 0.01}),
	)
	return s
}
