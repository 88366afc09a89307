package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/entry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderFlags are the flags accepted by the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene to render (see the scenes command)",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width; 0 keeps the scene default",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height; 0 keeps the scene default",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of parallel workers; 0 uses every CPU",
	},
	cli.IntFlag{
		Name:  "tile-size",
		Value: renderer.DefaultConfig().TileSize,
		Usage: "tile edge length in pixels",
	},
	cli.IntFlag{
		Name:  "samples",
		Value: 1,
		Usage: "anti-aliasing grid size; each pixel averages samples x samples rays",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: integrator.DefaultMaxDepth,
		Usage: "maximum mirror reflection depth",
	},
	cli.Float64Flag{
		Name:  "gamma",
		Value: 1.0,
		Usage: "output gamma; 1.0 writes linear values",
	},
	cli.Float64Flag{
		Name:  "fade",
		Usage: "distance at which surfaces fade to black; 0 disables fading",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "image filename for the rendered frame (default output/<scene>/render_<scene>.<format>)",
	},
	cli.StringFlag{
		Name:  "format, f",
		Usage: "image format: png, bmp, tiff or ppm; defaults to the output file extension",
	},
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	sc, err := scene.Lookup(sceneName)
	if err != nil {
		return cli.NewExitError(err.Error(), int(entry.StatusInvalidScene))
	}
	if width, height := ctx.Int("width"), ctx.Int("height"); width > 0 || height > 0 {
		if width <= 0 {
			width = sc.CameraConfig.Width
		}
		if height <= 0 {
			height = sc.CameraConfig.Height
		}
		sc.SetResolution(width, height)
	}

	outPath, format, err := outputTarget(ctx, sceneName)
	if err != nil {
		return cli.NewExitError(err.Error(), int(entry.StatusInternal))
	}

	fb, err := renderer.NewFrameBuffer(sc.CameraConfig.Width, sc.CameraConfig.Height)
	if err != nil {
		return cli.NewExitError(err.Error(), int(entry.StatusBufferMismatch))
	}

	config := renderer.Config{
		TileSize:        ctx.Int("tile-size"),
		NumWorkers:      ctx.Int("workers"),
		SamplesPerPixel: ctx.Int("samples"),
		Gamma:           ctx.Float64("gamma"),
		Integrator: integrator.Config{
			MaxDepth:     ctx.Int("max-depth"),
			FadeDistance: ctx.Float64("fade"),
		},
	}

	logger.Noticef("rendering scene %q at %dx%d", sceneName, fb.Width, fb.Height)
	runner := entry.NewRunner(sc, fb, config, logger)
	if err := runner.RunRender(); err != nil {
		return cli.NewExitError(fmt.Sprintf("render failed: %v", err), int(runner.Status()))
	}

	if err := writeImage(outPath, fb, format); err != nil {
		return cli.NewExitError(err.Error(), int(entry.StatusInternal))
	}

	if log.IsEnabled(log.Info, logModule) {
		logger.Infof("frame statistics\n%s", runner.Stats().Table())
	}
	logger.Noticef("wrote frame to %s", outPath)
	return nil
}

// outputTarget resolves the output path and image format from the flags
func outputTarget(ctx *cli.Context, sceneName string) (string, renderer.Format, error) {
	outPath := ctx.String("out")

	var format renderer.Format
	if name := ctx.String("format"); name != "" {
		parsed, err := renderer.ParseFormat(name)
		if err != nil {
			return "", "", err
		}
		format = parsed
	} else {
		parsed, err := renderer.FormatForPath(outPath)
		if err != nil {
			return "", "", fmt.Errorf("%w; pass --format to choose one", err)
		}
		format = parsed
	}

	if outPath == "" {
		outPath = filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", sceneName, format))
	}
	return outPath, format, nil
}

func writeImage(path string, fb *renderer.FrameBuffer, format renderer.Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := renderer.Encode(f, fb.Image(), format); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s file: %w", format, err)
	}
	return f.Close()
}
