package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileFunc renders a single tile. It is called concurrently for distinct tiles.
type TileFunc func(ctx context.Context, tile *Tile) error

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls fn for every tile with at most GetNumWorkers tiles in flight. No new
// tile starts once ctx is done or a call has failed. Run returns the first error,
// or ctx.Err() if the context ended before every tile was scheduled.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, fn TileFunc) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		tile := tile
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, tile)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
