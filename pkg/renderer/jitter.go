package renderer

import "fmt"

// Offset is a sample position inside a pixel, each coordinate in [0, 1)
type Offset struct {
	X, Y float64
}

// Jitter patterns from the OpenGL Programming Guide, table 10-5
var jitterTables = map[int][]Offset{
	1: {{0.5, 0.5}},
	2: {{0.25, 0.75}, {0.75, 0.25}},
	4: {{0.375, 0.25}, {0.125, 0.75}, {0.875, 0.25}, {0.625, 0.75}},
	8: {
		{0.5625, 0.4375}, {0.0625, 0.9375}, {0.3125, 0.6875}, {0.6875, 0.8125},
		{0.8125, 0.1875}, {0.9375, 0.5625}, {0.4375, 0.0625}, {0.1875, 0.3125},
	},
	16: {
		{0.375, 0.4375}, {0.625, 0.0625}, {0.875, 0.1875}, {0.125, 0.0625},
		{0.375, 0.6875}, {0.875, 0.4375}, {0.625, 0.5625}, {0.375, 0.9375},
		{0.625, 0.3125}, {0.125, 0.5625}, {0.125, 0.8125}, {0.375, 0.1875},
		{0.875, 0.9375}, {0.875, 0.6875}, {0.125, 0.3125}, {0.625, 0.8125},
	},
}

// Jitters returns the sample offsets used for n samples per pixel.
// The returned slice is shared and must not be modified.
func Jitters(n int) ([]Offset, error) {
	offsets, ok := jitterTables[n]
	if !ok {
		return nil, fmt.Errorf("unsupported antialias sample count %d: use 1, 2, 4, 8 or 16", n)
	}
	return offsets, nil
}
