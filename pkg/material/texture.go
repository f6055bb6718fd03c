package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture is an in-memory RGBA image sampled by texture coordinate
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 is the top of the image
	Alpha  []float64   // Optional, same layout as Pixels
}

// NewTexture creates a texture from row-major RGB pixels
func NewTexture(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample returns the bilinearly filtered color at texture coordinate uv. U and V wrap
// to [0, 1); V=0 is the bottom row of the image.
func (t *Texture) Sample(uv core.Vec2) core.Vec3 {
	x, y := t.imageCoordinates(uv)
	return t.BilinearSample(x, y)
}

// AlphaAt returns the opacity of pixel (x, y), 1 when the texture has no alpha channel
func (t *Texture) AlphaAt(x, y int) float64 {
	if len(t.Alpha) == 0 {
		return 1
	}
	x, y = t.clampPixel(x, y)
	return t.Alpha[y*t.Width+x]
}

// Pixel returns pixel (x, y), clamped to the image bounds
func (t *Texture) Pixel(x, y int) core.Vec3 {
	x, y = t.clampPixel(x, y)
	return t.Pixels[y*t.Width+x]
}

// NearestSample returns the pixel nearest to continuous image coordinates (x, y)
func (t *Texture) NearestSample(x, y float64) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}
	return t.Pixel(int(math.Floor(x+0.5)), int(math.Floor(y+0.5)))
}

// BilinearSample interpolates the four pixels surrounding continuous image
// coordinates (x, y); pixel (i, j) sits at coordinates (i, j)
func (t *Texture) BilinearSample(x, y float64) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	fx := x - x0
	fy := y - y0
	ix, iy := int(x0), int(y0)

	top := t.Pixel(ix, iy).Multiply(1 - fx).Add(t.Pixel(ix+1, iy).Multiply(fx))
	bottom := t.Pixel(ix, iy+1).Multiply(1 - fx).Add(t.Pixel(ix+1, iy+1).Multiply(fx))
	return top.Multiply(1 - fy).Add(bottom.Multiply(fy))
}

func (t *Texture) imageCoordinates(uv core.Vec2) (float64, float64) {
	u := wrap(uv.X)
	v := wrap(uv.Y)
	return u * float64(t.Width-1), (1 - v) * float64(t.Height-1)
}

func (t *Texture) clampPixel(x, y int) (int, int) {
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// wrap maps any coordinate into [0, 1), keeping exactly 1 at the top edge
func wrap(c float64) float64 {
	if c == 1 {
		return 1
	}
	c -= math.Floor(c)
	return c
}
