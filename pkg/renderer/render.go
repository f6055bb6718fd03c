package renderer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Render traces every pixel of sc, which must already be initialized, and returns
// the colors row by row from the top-left corner. Pixels that fail are left black
// and counted in RenderStats.FailedPixels. A cancelled ctx stops the render between
// tiles and its error is returned.
func Render(ctx context.Context, sc *scene.Scene, config Config, logger core.Logger) ([]core.Vec3, RenderStats, error) {
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}
	if sc == nil || sc.Camera == nil {
		return nil, RenderStats{}, errors.New("scene has no camera")
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	tileRenderer, err := NewTileRenderer(sc.Camera, integrator.NewWhittedIntegrator(sc), config, logger)
	if err != nil {
		return nil, RenderStats{}, err
	}

	pixelStats := make([][]PixelStats, config.Height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, config.Width)
	}

	tiles := NewTileGrid(config.Width, config.Height, config.TileSize)
	tileStats := make([]RenderStats, len(tiles))
	pool := NewWorkerPool(config.NumWorkers)

	logger.Printf("Rendering %dx%d, %d samples per pixel, %d tiles on %d workers...\n",
		config.Width, config.Height, config.Antialias, len(tiles), pool.GetNumWorkers())

	start := time.Now()
	err = pool.Run(ctx, tiles, func(ctx context.Context, tile *Tile) error {
		// Deterministic per-tile generator regardless of scheduling order
		random := rand.New(rand.NewSource(config.Seed + int64(tile.ID)))
		tileStats[tile.ID] = tileRenderer.RenderTileBounds(tile.Bounds, pixelStats, random)
		return nil
	})
	if err != nil {
		return nil, RenderStats{}, err
	}

	var stats RenderStats
	for _, s := range tileStats {
		stats.Merge(s)
	}
	stats.Duration = time.Since(start)

	pixels := make([]core.Vec3, 0, config.Width*config.Height)
	for y := range pixelStats {
		for x := range pixelStats[y] {
			pixels = append(pixels, pixelStats[y][x].GetColor())
		}
	}

	logger.Printf("Rendered %d pixels in %v (%d rays, %d shadow rays, %d failed pixels)\n",
		stats.TotalPixels, stats.Duration, stats.Rays.Rays, stats.Rays.ShadowRays, stats.FailedPixels)

	return pixels, stats, nil
}
