package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *Texture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			color := color2
			if (checkX+checkY)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *Texture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewTexture(width, height, pixels)
}
