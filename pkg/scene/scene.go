package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/animation"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering. Shapes refer to the material
// and vertex tables by index, dynamic transforms refer to Tracks by index, and
// materials refer to Textures by index.
type Scene struct {
	Camera    *geometry.Camera
	Materials []*material.Material
	Textures  []*material.Texture
	Vertices  []geometry.Vertex
	Lights    []lights.Light
	Root      *geometry.ShapeList
	Tracks    []*animation.Track
}

// NewScene creates an empty scene viewed through camera
func NewScene(camera *geometry.Camera) *Scene {
	return &Scene{
		Camera: camera,
		Root:   geometry.NewShapeList(),
	}
}

// AddMaterial appends m to the material table and returns its index
func (s *Scene) AddMaterial(m *material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddTexture appends t to the texture table and returns its index
func (s *Scene) AddTexture(t *material.Texture) int {
	s.Textures = append(s.Textures, t)
	return len(s.Textures) - 1
}

// AddVertices appends vertices to the vertex table and returns the index of the first
func (s *Scene) AddVertices(vertices ...geometry.Vertex) int {
	first := len(s.Vertices)
	s.Vertices = append(s.Vertices, vertices...)
	return first
}

// AddTrack appends a key-frame track and returns its transform index
func (s *Scene) AddTrack(t *animation.Track) int {
	s.Tracks = append(s.Tracks, t)
	return len(s.Tracks) - 1
}

// AddShapes adds shapes to the root list
func (s *Scene) AddShapes(shapes ...geometry.Shape) {
	s.Root.Add(shapes...)
}

// AddLights adds lights to the scene
func (s *Scene) AddLights(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// Init resolves every index in the scene and computes the bounding boxes. It must be
// called once after the scene is assembled and before rendering.
func (s *Scene) Init() error {
	if s.Root == nil {
		s.Root = geometry.NewShapeList()
	}
	for i, m := range s.Materials {
		if m == nil {
			return fmt.Errorf("material %d is nil", i)
		}
		m.Texture = nil
		if m.TextureIndex == material.NoTexture {
			continue
		}
		if m.TextureIndex < 0 || m.TextureIndex >= len(s.Textures) || s.Textures[m.TextureIndex] == nil {
			return &geometry.InitializationError{
				Shape:  fmt.Sprintf("material %d", i),
				Reason: "texture index",
				Index:  m.TextureIndex,
				Limit:  len(s.Textures),
				Err:    geometry.ErrInvalidIndex,
			}
		}
		m.Texture = s.Textures[m.TextureIndex]
	}

	if err := s.Root.Init(s.sceneData()); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}
	s.UpdateBoundingBox()
	return nil
}

func (s *Scene) sceneData() *geometry.SceneData {
	transforms := make([]geometry.MatrixSource, len(s.Tracks))
	for i, t := range s.Tracks {
		transforms[i] = t
	}
	return &geometry.SceneData{
		Materials:  s.Materials,
		Vertices:   s.Vertices,
		Transforms: transforms,
	}
}

// UpdateBoundingBox recomputes every bounding box in the scene graph
func (s *Scene) UpdateBoundingBox() core.AABB {
	return s.Root.UpdateBoundingBox()
}

// SetCurrentTime moves every track to time seconds and refreshes the bounding boxes.
// It must not be called while rendering.
func (s *Scene) SetCurrentTime(seconds float64) {
	for _, t := range s.Tracks {
		t.SetTime(seconds)
	}
	s.UpdateBoundingBox()
}

// GetRoot returns the root of the scene graph
func (s *Scene) GetRoot() geometry.Shape {
	return s.Root
}

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Root.PrimitiveCount()
}
