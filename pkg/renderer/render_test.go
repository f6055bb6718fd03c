package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// createGlowingSphereScene views an unlit emissive red sphere filling the image center
func createGlowingSphereScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.NewScene(geometry.NewCamera(geometry.CameraConfig{
		Position: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     30,
	}))
	red := material.NewMaterial(core.Vec3{})
	red.Emissive = core.NewVec3(1, 0, 0)
	sc.AddShapes(geometry.NewSphere(core.Vec3{}, 1, sc.AddMaterial(red)))
	if err := sc.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return sc
}

func smallConfig(antialias int) Config {
	config := DefaultConfig()
	config.Width, config.Height = 4, 4
	config.TileSize = 3
	config.NumWorkers = 2
	config.Antialias = antialias
	return config
}

func TestRender_GlowingSphere(t *testing.T) {
	sc := createGlowingSphereScene(t)
	config := smallConfig(1)

	pixels, stats, err := Render(context.Background(), sc, config, &recordingLogger{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(pixels) != 16 {
		t.Fatalf("Expected 16 pixels, got %d", len(pixels))
	}

	red := core.NewVec3(1, 0, 0)
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if got := pixels[p[1]*4+p[0]]; !vecClose(got, red) {
			t.Errorf("Expected center pixel %v to be red, got %v", p, got)
		}
	}
	for _, p := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}} {
		if got := pixels[p[1]*4+p[0]]; !got.IsZero() {
			t.Errorf("Expected corner pixel %v to be black, got %v", p, got)
		}
	}

	if stats.TotalPixels != 16 || stats.TotalSamples != 16 || stats.FailedPixels != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.Rays.Rays != 16 {
		t.Errorf("Expected one ray per pixel, got %d", stats.Rays.Rays)
	}
}

func TestRender_Deterministic(t *testing.T) {
	sc := createGlowingSphereScene(t)
	config := smallConfig(8)

	first, _, err := Render(context.Background(), sc, config, &recordingLogger{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	config.NumWorkers = 1
	second, _, err := Render(context.Background(), sc, config, &recordingLogger{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Expected pixel %d identical across worker counts, got %v and %v", i, first[i], second[i])
		}
	}
}

func TestRender_Errors(t *testing.T) {
	sc := createGlowingSphereScene(t)

	t.Run("invalid config", func(t *testing.T) {
		config := smallConfig(3)
		if _, _, err := Render(context.Background(), sc, config, &recordingLogger{}); err == nil {
			t.Error("Expected an error for an unsupported sample count")
		}
	})

	t.Run("missing camera", func(t *testing.T) {
		if _, _, err := Render(context.Background(), scene.NewScene(nil), smallConfig(1), &recordingLogger{}); err == nil {
			t.Error("Expected an error for a scene without camera")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, _, err := Render(ctx, sc, smallConfig(1), &recordingLogger{}); !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}
