package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a scene showcasing triangle meshes: flat-shaded
// polyhedra placed by static transforms and a smooth textured sphere
func NewTriangleMeshScene() (*Scene, error) {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(0, 2, 7),
		LookAt:   core.NewVec3(0, 0.9, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	})
	s := NewScene(camera)

	ground := s.AddMaterial(phongMaterial(core.NewVec3(0.7, 0.7, 0.7), 0, 1))
	red := s.AddMaterial(phongMaterial(core.NewVec3(0.8, 0.2, 0.2), 0.4, 32))
	blue := s.AddMaterial(phongMaterial(core.NewVec3(0.2, 0.3, 0.8), 0.1, 8))
	gold := s.AddMaterial(phongMaterial(core.NewVec3(0.8, 0.6, 0.2), 0.6, 64))

	checker := material.NewCheckerboardTexture(256, 128, 16, core.NewVec3(0.95, 0.95, 0.95), core.NewVec3(0.1, 0.5, 0.3))
	checkered := phongMaterial(core.NewVec3(1, 1, 1), 0.2, 32)
	checkered.TextureIndex = s.AddTexture(checker)
	checkeredIndex := s.AddMaterial(checkered)

	s.AddShapes(NewGroundBox(0, 20, ground))

	meshes := []struct {
		name     string
		vertices []geometry.Vertex
		faces    []int
		material int
		center   core.Vec3
		rotation core.Vec3
	}{
		{"box", boxMeshVertices(core.NewVec3(1, 1, 1)), boxMeshFaces, red, core.NewVec3(-2.4, 0.5, 0), core.NewVec3(0, math.Pi/6, 0)},
		{"pyramid", pyramidMeshVertices(1.5, 2), pyramidMeshFaces, blue, core.NewVec3(-0.8, 1, -1), core.NewVec3(0, math.Pi/4, 0)},
		{"icosahedron", icosahedronMeshVertices(0.8), icosahedronMeshFaces, gold, core.NewVec3(2.4, 0.8, 0), core.NewVec3(0, math.Pi/3, 0)},
	}
	for _, m := range meshes {
		mesh, err := s.addMesh(m.vertices, m.faces, m.material)
		if err != nil {
			return nil, fmt.Errorf("%s mesh: %w", m.name, err)
		}
		s.AddShapes(geometry.NewStaticAffineShape(mesh, placement(m.center, m.rotation)))
	}

	vertices, faces := uvSphereMesh(core.NewVec3(0.6, 0.9, 0.8), 0.9, 32, 16)
	sphere, err := s.addMesh(vertices, faces, checkeredIndex)
	if err != nil {
		return nil, fmt.Errorf("sphere mesh: %w", err)
	}
	s.AddShapes(sphere)

	s.AddLights(
		lights.NewPointLight(core.NewVec3(2, 6, 3), lights.Colors{
			Ambient:  core.NewVec3(0.15, 0.15, 0.15),
			Diffuse:  core.NewVec3(0.9, 0.85, 0.8),
			Specular: core.NewVec3(0.8, 0.8, 0.8),
		}, lights.Attenuation{Constant: 1, Linear: 0.02}),
		lights.NewDirectionalLight(core.NewVec3(0.6, -0.5, -0.4), lights.Colors{
			Diffuse:  core.NewVec3(0.3, 0.35, 0.4),
			Specular: core.NewVec3(0.2, 0.2, 0.2),
		}),
	)
	return s, nil
}

// addMesh appends vertices to the scene table and creates a triangle list over them.
// Face indices are relative to the given vertices.
func (s *Scene) addMesh(vertices []geometry.Vertex, faces []int, materialIndex int) (*geometry.TriangleList, error) {
	base := s.AddVertices(vertices...)
	shifted := make([]int, len(faces))
	for i, f := range faces {
		if f < 0 || f >= len(vertices) {
			return nil, fmt.Errorf("face index %d not in [0, %d)", f, len(vertices))
		}
		shifted[i] = base + f
	}
	return geometry.NewTriangleListFromFaces(materialIndex, shifted)
}

// placement returns translate(center) * rotate(rotation)
func placement(center, rotation core.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(center.X, center.Y, center.Z).Mul4(core.EulerRotation(rotation))
}

// flatVertices wraps positions in vertices that use the face normal
func flatVertices(positions ...core.Vec3) []geometry.Vertex {
	vertices := make([]geometry.Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = geometry.Vertex{Position: p}
	}
	return vertices
}

// boxMeshVertices returns the corners of a box of the given size centered at the origin
func boxMeshVertices(size core.Vec3) []geometry.Vertex {
	h := size.Multiply(0.5)
	return flatVertices(
		core.NewVec3(-h.X, -h.Y, -h.Z), // 0: left-bottom-back
		core.NewVec3(+h.X, -h.Y, -h.Z), // 1: right-bottom-back
		core.NewVec3(+h.X, +h.Y, -h.Z), // 2: right-top-back
		core.NewVec3(-h.X, +h.Y, -h.Z), // 3: left-top-back
		core.NewVec3(-h.X, -h.Y, +h.Z), // 4: left-bottom-front
		core.NewVec3(+h.X, -h.Y, +h.Z), // 5: right-bottom-front
		core.NewVec3(+h.X, +h.Y, +h.Z), // 6: right-top-front
		core.NewVec3(-h.X, +h.Y, +h.Z), // 7: left-top-front
	)
}

// Two triangles per face, counter-clockwise seen from outside
var boxMeshFaces = []int{
	// Back face (Z-)
	0, 2, 1, 0, 3, 2,
	// Front face (Z+)
	4, 5, 6, 4, 6, 7,
	// Left face (X-)
	0, 4, 7, 0, 7, 3,
	// Right face (X+)
	1, 2, 6, 1, 6, 5,
	// Bottom face (Y-)
	0, 1, 5, 0, 5, 4,
	// Top face (Y+)
	3, 7, 6, 3, 6, 2,
}

// pyramidMeshVertices returns a square pyramid centered at the origin
func pyramidMeshVertices(baseSize, height float64) []geometry.Vertex {
	b := baseSize * 0.5
	h := height * 0.5
	return flatVertices(
		core.NewVec3(-b, -h, -b), // 0: left-back
		core.NewVec3(+b, -h, -b), // 1: right-back
		core.NewVec3(+b, -h, +b), // 2: right-front
		core.NewVec3(-b, -h, +b), // 3: left-front
		core.NewVec3(0, +h, 0),   // 4: apex
	)
}

var pyramidMeshFaces = []int{
	// Base
	0, 1, 2, 0, 2, 3,
	// Sides
	1, 0, 4,
	2, 1, 4,
	3, 2, 4,
	0, 3, 4,
}

// icosahedronMeshVertices returns an icosahedron with the given circumradius
func icosahedronMeshVertices(radius float64) []geometry.Vertex {
	phi := (1 + math.Sqrt(5)) / 2
	scale := radius / math.Sqrt(1+phi*phi)
	corners := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0), core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi), core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1), core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	for i := range corners {
		corners[i] = corners[i].Multiply(scale)
	}
	return flatVertices(corners...)
}

var icosahedronMeshFaces = []int{
	// 5 faces around point 0
	0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
	// 5 adjacent faces
	1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
	// 5 faces around point 3
	3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
	// 5 adjacent faces
	4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
}

// uvSphereMesh tessellates a sphere into latitude/longitude quads with smooth vertex
// normals and texture coordinates. The seam column is duplicated so that u runs to 1.
func uvSphereMesh(center core.Vec3, radius float64, segments, rings int) ([]geometry.Vertex, []int) {
	var vertices []geometry.Vertex
	for r := 0; r <= rings; r++ {
		v := float64(r) / float64(rings)
		theta := v * math.Pi
		for seg := 0; seg <= segments; seg++ {
			u := float64(seg) / float64(segments)
			phi := u * 2 * math.Pi
			n := core.NewVec3(math.Sin(theta)*math.Cos(phi), -math.Cos(theta), -math.Sin(theta)*math.Sin(phi))
			vertices = append(vertices, geometry.Vertex{
				Position: center.Add(n.Multiply(radius)),
				Normal:   n,
				TexCoord: core.NewVec2(u, v),
			})
		}
	}

	row := segments + 1
	var faces []int
	for r := 0; r < rings; r++ {
		for seg := 0; seg < segments; seg++ {
			a := r*row + seg
			b := a + row
			if r > 0 {
				faces = append(faces, a, a+1, b+1)
			}
			if r < rings-1 {
				faces = append(faces, a, b+1, b)
			}
		}
	}
	return vertices, faces
}
