package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewCSGScene creates the classic constructive solid geometry figure: the intersection
// of a cube and a sphere with three orthogonal cylinders removed, next to a union of
// overlapping spheres and a glass lens made by intersecting two spheres
func NewCSGScene() *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(1.5, 3, 7),
		LookAt:   core.NewVec3(0, 1, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	})
	s := NewScene(camera)

	ground := s.AddMaterial(phongMaterial(core.NewVec3(0.55, 0.55, 0.6), 0.1, 4))
	red := s.AddMaterial(phongMaterial(core.NewVec3(0.8, 0.15, 0.1), 0.3, 32))
	blue := s.AddMaterial(phongMaterial(core.NewVec3(0.1, 0.3, 0.9), 0.3, 32))
	green := s.AddMaterial(phongMaterial(core.NewVec3(0.2, 0.7, 0.3), 0.5, 64))
	glass := s.AddMaterial(glassMaterial(1.5))

	center := core.NewVec3(0, 1, 0)
	body := geometry.NewIntersection(
		geometry.NewBox(center, core.NewVec3(1.5, 1.5, 1.5), red),
		geometry.NewSphere(center, 1, blue),
	)
	// Cylinders are built along y and turned onto the other axes
	drill := func(rotation core.Vec3) geometry.Shape {
		return geometry.NewStaticAffineShape(geometry.NewCylinder(core.Vec3{}, 0.45, 2.5, green), placement(center, rotation))
	}
	cross := geometry.NewUnion(
		drill(core.Vec3{}),
		drill(core.NewVec3(math.Pi/2, 0, 0)),
		drill(core.NewVec3(0, 0, math.Pi/2)),
	)

	s.AddShapes(
		NewGroundBox(0, 20, ground),
		geometry.NewDifference(body, cross),
		geometry.NewUnion(
			geometry.NewSphere(core.NewVec3(-2.4, 0.5, 0.5), 0.5, green),
			geometry.NewSphere(core.NewVec3(-2.0, 0.8, 0.5), 0.45, green),
			geometry.NewSphere(core.NewVec3(-2.2, 0.6, 0.1), 0.4, green),
		),
		geometry.NewIntersection(
			geometry.NewSphere(core.NewVec3(2.2, 0.7, 1.0), 0.7, glass),
			geometry.NewSphere(core.NewVec3(2.2, 0.7, 0.3), 0.7, glass),
		),
	)

	s.AddLights(
		lights.NewPointLight(core.NewVec3(-3, 5, 4), lights.Colors{
			Ambient:  core.NewVec3(0.12, 0.12, 0.12),
			Diffuse:  core.NewVec3(0.8, 0.8, 0.8),
			Specular: core.NewVec3(0.9, 0.9, 0.9),
		}, lights.Attenuation{Constant: 1, Linear: 0.03}),
		lights.NewDirectionalLight(core.NewVec3(1, -1, -0.5), lights.Colors{
			Diffuse:  core.NewVec3(0.35, 0.35, 0.3),
			Specular: core.NewVec3(0.3, 0.3, 0.3),
		}),
	)
	return s
}
