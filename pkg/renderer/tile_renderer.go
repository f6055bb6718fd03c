package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Tile is a rectangular block of pixels rendered by one worker
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer traces the primary rays of individual tiles through an integrator
type TileRenderer struct {
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     Config
	offsets    []Offset
	logger     core.Logger
}

// NewTileRenderer creates a tile renderer. config must already be valid.
func NewTileRenderer(camera *geometry.Camera, integratorInst integrator.Integrator, config Config, logger core.Logger) (*TileRenderer, error) {
	offsets, err := Jitters(config.Antialias)
	if err != nil {
		return nil, err
	}
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		config:     config,
		offsets:    offsets,
		logger:     logger,
	}, nil
}

// RenderTileBounds renders pixels within bounds into pixelStats, indexed in global
// image coordinates. Tiles never overlap, so concurrent calls on distinct bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			if !tr.renderPixel(i, j, ps, random, &stats.Rays) {
				*ps = PixelStats{}
				stats.FailedPixels++
				continue
			}
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// renderPixel accumulates one integrator sample per jitter offset. A panic while
// tracing is logged and reported as false so the rest of the image still renders.
func (tr *TileRenderer) renderPixel(i, j int, ps *PixelStats, random *rand.Rand, rays *core.RayStats) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			tr.logger.Printf("pixel (%d, %d): %v\n", i, j, r)
			ok = false
		}
	}()

	limit := core.NewVec3(tr.config.ColorLimit, tr.config.ColorLimit, tr.config.ColorLimit)
	for _, offset := range tr.offsets {
		ray := tr.camera.GetRay(i, j, tr.config.Width, tr.config.Height, offset.X, offset.Y)
		color := tr.integrator.GetColor(ray, tr.config.Depth, limit, tr.config.LightSamples, random, rays)
		ps.AddSample(color)
	}
	return true
}
