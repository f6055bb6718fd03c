package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
}

type builtIn struct {
	description string
	build       func() (*Scene, error)
}

func infallible(build func() *Scene) func() (*Scene, error) {
	return func() (*Scene, error) { return build(), nil }
}

var builtIns = map[string]builtIn{
	"default":     {"Spheres of every material type on a ground box", infallible(NewDefaultScene)},
	"cornell":     {"Cornell box with a spherical area light", infallible(NewCornellScene)},
	"primitives":  {"Box, cylinder, cone and torus under spot lights", infallible(NewPrimitivesScene)},
	"csg":         {"Boolean combinations of primitives", infallible(NewCSGScene)},
	"mesh":        {"Triangle meshes with flat and smooth shading", NewTriangleMeshScene},
	"textures":    {"Procedural textures on every primitive", infallible(func() *Scene { return NewTextureScene() })},
	"sphere-grid": {"20x20 grid of reflective spheres", infallible(func() *Scene { return NewSphereGridScene(20) })},
	"animated":    {"Shapes following key-frame tracks", NewAnimatedScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtIns))
	for id, b := range builtIns {
		scenes = append(scenes, SceneInfo{ID: id, Name: titleCase(id), Description: b.description})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// New builds the built-in scene with the given ID. The scene is not initialized.
func New(id string) (*Scene, error) {
	b, ok := builtIns[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	s, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	return s, nil
}

// titleCase converts an ID to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
