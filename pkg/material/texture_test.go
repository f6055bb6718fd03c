package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func colorsClose(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

// TestTextureSampleCorners tests that texture coordinates at the corners hit the
// corner pixels exactly
func TestTextureSampleCorners(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewTexture(2, 2, []core.Vec3{white, black, black, white})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"top-left", core.NewVec2(0, 1), white},
		{"top-right", core.NewVec2(0.999999999999, 1), black},
		{"bottom-left", core.NewVec2(0, 0), black},
		{"center", core.NewVec2(0.5, 0.5), core.NewVec3(0.5, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.Sample(tt.uv)
			if math.Abs(result.X-tt.expected.X) > 1e-6 {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

func TestTextureWrapping(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	texture := NewTexture(1, 1, []core.Vec3{red})

	for _, uv := range []core.Vec2{
		core.NewVec2(0.5, 0.5),
		core.NewVec2(1.5, 0.5),
		core.NewVec2(-0.5, -0.5),
		core.NewVec2(2.3, 3.7),
	} {
		if result := texture.Sample(uv); !colorsClose(result, red) {
			t.Errorf("UV%v: expected %v, got %v", uv, red, result)
		}
	}
}

func TestBilinearSample(t *testing.T) {
	// 2x1 texture: black to white
	texture := NewTexture(2, 1, []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)})

	tests := []struct {
		x, y     float64
		expected float64
	}{
		{0, 0, 0},
		{0.25, 0, 0.25},
		{0.5, 0, 0.5},
		{1, 0, 1},
		{5, 0, 1}, // clamped
	}

	for _, tt := range tests {
		result := texture.BilinearSample(tt.x, tt.y)
		if math.Abs(result.X-tt.expected) > 1e-9 {
			t.Errorf("BilinearSample(%f, %f): expected %f, got %f", tt.x, tt.y, tt.expected, result.X)
		}
	}
}

func TestNearestSample(t *testing.T) {
	texture := NewTexture(2, 1, []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)})

	if result := texture.NearestSample(0.4, 0); result.X != 0 {
		t.Errorf("Expected black near x=0.4, got %v", result)
	}
	if result := texture.NearestSample(0.6, 0); result.X != 1 {
		t.Errorf("Expected white near x=0.6, got %v", result)
	}
}

func TestMaterialTextured(t *testing.T) {
	mat := NewMaterial(core.NewVec3(0.8, 0.8, 0.8))
	mat.Specular = core.NewVec3(1, 1, 1)

	if mat.Textured(core.NewVec2(0.5, 0.5)) != mat {
		t.Error("Untextured material should be returned unchanged")
	}

	mat.Texture = NewTexture(1, 1, []core.Vec3{core.NewVec3(0.5, 0.25, 1)})
	textured := mat.Textured(core.NewVec2(0.5, 0.5))

	if !colorsClose(textured.Diffuse, core.NewVec3(0.4, 0.2, 0.8)) {
		t.Errorf("Expected modulated diffuse (0.4, 0.2, 0.8), got %v", textured.Diffuse)
	}
	if !colorsClose(textured.Specular, core.NewVec3(0.5, 0.25, 1)) {
		t.Errorf("Expected modulated specular (0.5, 0.25, 1), got %v", textured.Specular)
	}
	if !colorsClose(mat.Diffuse, core.NewVec3(0.8, 0.8, 0.8)) {
		t.Error("Texturing must not modify the shared material")
	}
}

func TestCheckerboardTexture(t *testing.T) {
	c1 := core.NewVec3(1, 0, 0)
	c2 := core.NewVec3(0, 0, 1)
	texture := NewCheckerboardTexture(4, 4, 2, c1, c2)

	if texture.Pixel(0, 0) != c1 || texture.Pixel(2, 0) != c2 || texture.Pixel(2, 2) != c1 {
		t.Errorf("Unexpected checker layout: %v", texture.Pixels)
	}
}
