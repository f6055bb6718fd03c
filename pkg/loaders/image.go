package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// LoadTexture decodes a PNG, JPEG or BMP file into a texture. Row 0 of the texture is
// the top row of the image.
func LoadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode auto-detects the format from the file header; bmp registers itself on import
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage converts a decoded image to a texture with straight (not
// premultiplied) colors; the alpha channel is kept only if some pixel is translucent
func TextureFromImage(img image.Image) *material.Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	alpha := make([]float64, width*height)
	translucent := false

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns premultiplied uint32 in [0, 65535]
			r, g, b, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			i := y*width + x
			if a == 0 {
				alpha[i] = 0
				translucent = true
				continue
			}
			scale := 1.0 / float64(a)
			pixels[i] = core.NewVec3(float64(r)*scale, float64(g)*scale, float64(b)*scale)
			alpha[i] = float64(a) / 65535.0
			if a != 0xffff {
				translucent = true
			}
		}
	}

	texture := material.NewTexture(width, height, pixels)
	if translucent {
		texture.Alpha = alpha
	}
	return texture
}

// LoadTextures loads every file in order, so the result can serve as a scene's
// texture table
func LoadTextures(filenames ...string) ([]*material.Texture, error) {
	textures := make([]*material.Texture, 0, len(filenames))
	for i, name := range filenames {
		texture, err := LoadTexture(name)
		if err != nil {
			return nil, fmt.Errorf("texture %d: %w", i, err)
		}
		textures = append(textures, texture)
	}
	return textures, nil
}

// ColorImage converts a row-major buffer of colors in [0, 1] to an 8-bit image. Each
// channel is clamped and scaled by 255 with truncation.
func ColorImage(width, height int, pixels []core.Vec3) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y*width+x].Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X * 255),
				G: uint8(c.Y * 255),
				B: uint8(c.Z * 255),
				A: 255,
			})
		}
	}
	return img
}

// SaveImage writes img to filename, choosing PNG or BMP from the file extension
func SaveImage(filename string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(filename))
	var encode func(f *os.File) error
	switch ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return f.Close()
}
