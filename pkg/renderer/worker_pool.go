package renderer

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// ErrInterrupted is returned when a render is cancelled before every tile is done
var ErrInterrupted = errors.New("renderer: render interrupted")

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	workers []*Worker
	logger  log.Logger
}

// Worker renders tiles pulled from the pool's queue with its own integrator
type Worker struct {
	ID            int
	renderer      *TileRenderer
	tilesRendered int
}

// NewWorkerPool creates a worker pool with config.NumWorkers workers.
// Each worker gets a fresh integrator from newIntegrator.
func NewWorkerPool(scene integrator.Scene, config Config, newIntegrator func() integrator.Integrator, logger log.Logger) *WorkerPool {
	numWorkers := max(1, config.NumWorkers)

	wp := &WorkerPool{logger: logger}
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:       i,
			renderer: NewTileRenderer(scene, newIntegrator(), config),
		})
	}
	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// Render feeds every tile to the workers and waits for them to finish.
// The first failing tile cancels the rest and its error is returned.
func (wp *WorkerPool) Render(ctx context.Context, tiles []*Tile, fb *FrameBuffer) error {
	g, ctx := errgroup.WithContext(ctx)
	taskQueue := make(chan *Tile)

	g.Go(func() error {
		defer close(taskQueue)
		for _, tile := range tiles {
			select {
			case taskQueue <- tile:
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
			}
		}
		return nil
	})

	for _, worker := range wp.workers {
		worker := worker
		g.Go(func() error {
			return worker.run(ctx, taskQueue, fb, wp.logger)
		})
	}

	return g.Wait()
}

// TilesPerWorker returns how many tiles each worker rendered, indexed by worker ID
func (wp *WorkerPool) TilesPerWorker() []int {
	counts := make([]int, len(wp.workers))
	for i, worker := range wp.workers {
		counts[i] = worker.tilesRendered
	}
	return counts
}

// Counters merges the ray counts of every worker
func (wp *WorkerPool) Counters() integrator.Counters {
	var total integrator.Counters
	for _, worker := range wp.workers {
		total.Add(worker.renderer.Counters())
	}
	return total
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, taskQueue <-chan *Tile, fb *FrameBuffer, logger log.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
		case tile, ok := <-taskQueue:
			if !ok {
				logger.Debugf("worker %d done after %d tiles", w.ID, w.tilesRendered)
				return nil
			}
			if err := w.renderer.RenderTile(ctx, tile, fb); err != nil {
				return fmt.Errorf("tile %d: %w", tile.ID, err)
			}
			w.tilesRendered++
			logger.Debugf("worker %d finished tile %d %v", w.ID, tile.ID, tile.Bounds)
		}
	}
}
