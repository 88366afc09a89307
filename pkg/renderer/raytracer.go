package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
)

// ErrNoCamera is returned when a scene is rendered before its camera is built
var ErrNoCamera = errors.New("renderer: scene has no camera")

var logger = log.New("renderer")

// Raytracer renders whole frames by splitting them into tiles
type Raytracer struct {
	config Config
	logger log.Logger
}

// NewRaytracer creates a raytracer; zero fields in config take defaults.
// A nil logger uses the package logger.
func NewRaytracer(config Config, l log.Logger) *Raytracer {
	if l == nil {
		l = logger
	}
	return &Raytracer{
		config: MergeConfig(DefaultConfig(), config),
		logger: l,
	}
}

// Config returns the effective configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render traces primary rays through every pixel (one through the center, or
// an evenly spaced grid when SamplesPerPixel > 1) and writes
// the shaded color into fb. The frame size is taken from the scene camera and
// fb must match it. Output is identical for any worker count or tile size.
// On error the contents of fb are undefined.
func (rt *Raytracer) Render(ctx context.Context, scene integrator.Scene, fb *FrameBuffer) (RenderStats, error) {
	camera := scene.GetCamera()
	if camera == nil {
		return RenderStats{}, ErrNoCamera
	}
	width, height := camera.Config().Width, camera.Config().Height
	if fb == nil || fb.Width != width || fb.Height != height || len(fb.Pix) != width*height*4 {
		return RenderStats{}, fmt.Errorf("%w: frame is %dx%d", ErrBufferSize, width, height)
	}

	tiles := NewTileGrid(width, height, rt.config.TileSize)
	integratorConfig := rt.config.Integrator
	poolConfig := rt.config
	poolConfig.NumWorkers = min(rt.config.NumWorkers, len(tiles))
	pool := NewWorkerPool(scene, poolConfig, func() integrator.Integrator {
		return integrator.NewWhitted(integratorConfig)
	}, rt.logger)

	rt.logger.Infof("Rendering %dx%d frame: %d tiles, %d workers, %dx%d samples per pixel",
		width, height, len(tiles), pool.GetNumWorkers(), rt.config.SamplesPerPixel, rt.config.SamplesPerPixel)
	startTime := time.Now()

	if err := pool.Render(ctx, tiles, fb); err != nil {
		return RenderStats{}, err
	}

	stats := newRenderStats(width, height, len(tiles), pool.TilesPerWorker(), pool.Counters(), time.Since(startTime))
	rt.logger.Infof("Frame completed in %v (%d primary hits, %d shadow rays, %d reflection rays)",
		stats.Elapsed, stats.PrimaryHits, stats.ShadowRays, stats.ReflectionRays)

	return stats, nil
}
