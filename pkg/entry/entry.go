// Package entry binds a scene, a caller-owned frame buffer and a render
// configuration behind a single zero-argument render call, for hosts that
// can only invoke a function and read back a status number.
package entry

import (
	"context"
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Status is the numeric result of the last render
type Status int

const (
	StatusOK             Status = 0
	StatusInvalidScene   Status = 1
	StatusDegenerate     Status = 2
	StatusBufferMismatch Status = 3
	StatusCancelled      Status = 4
	StatusInternal       Status = 5
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidScene:
		return "invalid scene"
	case StatusDegenerate:
		return "degenerate input"
	case StatusBufferMismatch:
		return "buffer mismatch"
	case StatusCancelled:
		return "cancelled"
	default:
		return "internal error"
	}
}

// StatusOf classifies a render error. Degenerate geometry is reported as
// StatusDegenerate even when it surfaced through scene validation.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, core.ErrDegenerateVector),
		errors.Is(err, geometry.ErrDegenerateRadius),
		errors.Is(err, geometry.ErrDegeneratePrimitive),
		errors.Is(err, geometry.ErrDegenerateCamera),
		errors.Is(err, integrator.ErrNonFiniteColor):
		return StatusDegenerate
	case errors.Is(err, scene.ErrInvalidScene),
		errors.Is(err, scene.ErrNoCamera),
		errors.Is(err, scene.ErrUnknownScene),
		errors.Is(err, material.ErrInvalidMaterial),
		errors.Is(err, renderer.ErrNoCamera):
		return StatusInvalidScene
	case errors.Is(err, renderer.ErrBufferSize):
		return StatusBufferMismatch
	case errors.Is(err, renderer.ErrInterrupted),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return StatusCancelled
	default:
		return StatusInternal
	}
}

// Runner renders complete frames of one scene into one frame buffer.
// It is not safe for concurrent use.
type Runner struct {
	scene     *scene.Scene
	fb        *renderer.FrameBuffer
	raytracer *renderer.Raytracer
	logger    log.Logger

	lastErr error
	stats   renderer.RenderStats
}

// NewRunner creates a runner. The frame buffer stays owned by the caller and
// must not be read while a render is in progress.
func NewRunner(s *scene.Scene, fb *renderer.FrameBuffer, config renderer.Config, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.New("entry")
	}
	return &Runner{
		scene:     s,
		fb:        fb,
		raytracer: renderer.NewRaytracer(config, logger),
		logger:    logger,
	}
}

// RunRender renders one whole frame. On error the buffer contents are
// undefined and must not be displayed.
func (r *Runner) RunRender() error {
	return r.RunRenderContext(context.Background())
}

// RunRenderContext renders one whole frame, stopping early if ctx is cancelled
func (r *Runner) RunRenderContext(ctx context.Context) error {
	r.lastErr = r.render(ctx)
	if r.lastErr != nil {
		r.logger.Errorf("Render failed (%s): %v", StatusOf(r.lastErr), r.lastErr)
	}
	return r.lastErr
}

func (r *Runner) render(ctx context.Context) error {
	r.stats = renderer.RenderStats{}
	if r.scene == nil {
		return scene.ErrNoCamera
	}
	if err := r.scene.Preprocess(); err != nil {
		return err
	}
	stats, err := r.raytracer.Render(ctx, r.scene, r.fb)
	if err != nil {
		return err
	}
	r.stats = stats
	return nil
}

// Status returns the status code of the last RunRender call
func (r *Runner) Status() Status {
	return StatusOf(r.lastErr)
}

// Err returns the error of the last RunRender call
func (r *Runner) Err() error {
	return r.lastErr
}

// Stats returns statistics of the last successful render
func (r *Runner) Stats() renderer.RenderStats {
	return r.stats
}

// FrameBuffer returns the buffer the runner renders into
func (r *Runner) FrameBuffer() *renderer.FrameBuffer {
	return r.fb
}
