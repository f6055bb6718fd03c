package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewPrimitivesScene creates a row of the analytic primitives under two spot lights
func NewPrimitivesScene() *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(0, 2.5, 8),
		LookAt:   core.NewVec3(0, 0.8, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	})
	s := NewScene(camera)

	gray := s.AddMaterial(phongMaterial(core.NewVec3(0.5, 0.5, 0.5), 0.1, 4))
	red := s.AddMaterial(phongMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.4, 32))
	green := s.AddMaterial(phongMaterial(core.NewVec3(0.2, 0.8, 0.2), 0.4, 32))
	blue := s.AddMaterial(phongMaterial(core.NewVec3(0.2, 0.2, 0.8), 0.4, 32))
	gold := s.AddMaterial(phongMaterial(core.NewVec3(0.8, 0.6, 0.2), 0.7, 96))
	glass := s.AddMaterial(glassMaterial(1.33))

	s.AddShapes(
		NewGroundBox(0, 30, gray),
		geometry.NewBox(core.NewVec3(-3, 0.5, 0), core.NewVec3(1, 1, 1), red),
		geometry.NewCylinder(core.NewVec3(-1.2, 0.75, 0), 0.5, 1.5, green),
		geometry.NewCone(core.NewVec3(0.6, 0, 0), 0.6, 1.8, blue),
		geometry.NewTorus(core.NewVec3(2.8, 0.3, 0), 0.8, 0.3, gold),
		geometry.NewSphere(core.NewVec3(0, 0.4, 1.8), 0.4, glass),
	)

	white := lights.Colors{
		Ambient:  core.NewVec3(0.1, 0.1, 0.1),
		Diffuse:  core.NewVec3(0.9, 0.9, 0.9),
		Specular: core.NewVec3(0.9, 0.9, 0.9),
	}
	falloff := lights.Attenuation{Constant: 1, Quadratic: 0.01}
	s.AddLights(
		lights.NewSpotLight(core.NewVec3(-2, 6, 3), core.NewVec3(0.3, -1, -0.5), white, falloff, core.DegToRad(20), 2),
		lights.NewSpotLight(core.NewVec3(3, 5, 4), core.NewVec3(-0.1, -1, -0.8), white, falloff, core.DegToRad(15), 4),
		lights.NewDirectionalLight(core.NewVec3(0, -1, -1), lights.Colors{Diffuse: core.NewVec3(0.2, 0.2, 0.25)}),
	)
	return s
}
