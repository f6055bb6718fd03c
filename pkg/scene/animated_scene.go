package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/animation"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewAnimatedScene creates a scene whose shapes follow key-frame tracks: a torus that
// tumbles, a box that hops around a circle and a sphere that bounces. Render a frame
// by calling SetCurrentTime before rendering.
func NewAnimatedScene() (*Scene, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(0, 3, 8),
		LookAt:   core.NewVec3(0, 1, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	})
	s := NewScene(camera)

	ground := s.AddMaterial(phongMaterial(core.NewVec3(0.6, 0.6, 0.6), 0.2, 8))
	gold := s.AddMaterial(phongMaterial(core.NewVec3(0.8, 0.6, 0.2), 0.6, 64))
	red := s.AddMaterial(phongMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.3, 32))
	blue := s.AddMaterial(phongMaterial(core.NewVec3(0.2, 0.3, 0.85), 0.4, 48))

	one := core.NewVec3(1, 1, 1)
	tumble, err := animation.NewTrack("tumble", 4, animation.CatmullRom,
		animation.NewKeyframe(core.NewVec3(0, 1.2, 0), core.Vec3{}, one),
		animation.NewKeyframe(core.NewVec3(0, 1.5, 0), core.NewVec3(math.Pi/2, 0, 0), one),
		animation.NewKeyframe(core.NewVec3(0, 1.2, 0), core.NewVec3(math.Pi, math.Pi/2, 0), one),
		animation.NewKeyframe(core.NewVec3(0, 1.5, 0), core.NewVec3(math.Pi/2, math.Pi, 0), one),
	)
	if err != nil {
		return nil, err
	}

	var circle []animation.Keyframe
	for i := 0; i < 6; i++ {
		angle := float64(i) * math.Pi / 3
		position := core.NewVec3(2.5*math.Cos(angle), 0.4, 2.5*math.Sin(angle))
		circle = append(circle, animation.NewKeyframe(position, core.NewVec3(0, -angle, 0), one))
	}
	hop, err := animation.NewTrack("hop", 6, animation.BSpline, circle...)
	if err != nil {
		return nil, err
	}

	bounce, err := animation.NewTrack("bounce", 1.5, animation.Linear,
		animation.NewKeyframe(core.NewVec3(-2.5, 0.5, -1.5), core.Vec3{}, core.NewVec3(1.2, 0.8, 1.2)),
		animation.NewKeyframe(core.NewVec3(-2.5, 2.0, -1.5), core.Vec3{}, one),
	)
	if err != nil {
		return nil, err
	}

	s.AddShapes(
		NewGroundBox(0, 20, ground),
		geometry.NewDynamicAffineShape(geometry.NewTorus(core.Vec3{}, 0.8, 0.25, gold), s.AddTrack(tumble)),
		geometry.NewDynamicAffineShape(geometry.NewBox(core.Vec3{}, core.NewVec3(0.8, 0.8, 0.8), red), s.AddTrack(hop)),
		geometry.NewDynamicAffineShape(geometry.NewSphere(core.Vec3{}, 0.5, blue), s.AddTrack(bounce)),
	)

	s.AddLights(
		lights.NewPointLight(core.NewVec3(3, 6, 4), lights.Colors{
			Ambient:  core.NewVec3(0.15, 0.15, 0.15),
			Diffuse:  core.NewVec3(0.85, 0.85, 0.8),
			Specular: core.NewVec3(0.8, 0.8, 0.8),
		}, lights.Attenuation{Constant: 1, Linear: 0.02}),
	)
	return s, nil
}
