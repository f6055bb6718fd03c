package renderer

import (
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of primary rays traced
	FailedPixels int           // Pixels whose trace panicked and were left black
	Rays         core.RayStats // Merged ray counters of every worker
	Duration     time.Duration // Wall-clock time of the render
}

// Merge adds the counts of other into s. Duration is left to the caller.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.FailedPixels += other.FailedPixels
	s.Rays.Merge(other.Rays)
}

// AverageSamples returns the number of primary rays per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// PixelStats accumulates the jittered samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// CalculateAverageLuminance returns the mean luminance of img in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			color := core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			total += color.Luminance()
		}
	}
	return total / float64(count)
}
