package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains the parameters of a single render
type Config struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Depth        int     `json:"depth"`        // Maximum recursion depth per primary ray
	ColorLimit   float64 `json:"colorLimit"`   // Contribution below which recursion stops
	LightSamples int     `json:"lightSamples"` // Shadow rays per area light
	Antialias    int     `json:"antialias"`    // Jitter samples per pixel (1, 2, 4, 8 or 16)
	TileSize     int     `json:"tileSize"`
	NumWorkers   int     `json:"numWorkers"` // 0 = use CPU count
	Seed         int64   `json:"seed"`       // Base seed for per-tile random generators
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:        640,
		Height:       480,
		Depth:        5,
		ColorLimit:   0.01,
		LightSamples: 16,
		Antialias:    1,
		TileSize:     32,
		NumWorkers:   0,
		Seed:         42,
	}
}

// Validate reports the first invalid field of c
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case c.Depth < 0:
		return fmt.Errorf("invalid depth %d", c.Depth)
	case c.ColorLimit <= 0:
		return fmt.Errorf("invalid color limit %g: must be positive", c.ColorLimit)
	case c.LightSamples <= 0:
		return fmt.Errorf("invalid light samples %d: must be positive", c.LightSamples)
	case c.TileSize <= 0:
		return fmt.Errorf("invalid tile size %d", c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("invalid worker count %d", c.NumWorkers)
	}
	if _, err := Jitters(c.Antialias); err != nil {
		return err
	}
	return nil
}
