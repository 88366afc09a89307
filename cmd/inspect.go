package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/entry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectFlags are the flags accepted by the inspect command
var InspectFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene to inspect",
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
		Name:  "x",
		Usage: "pixel column, 0 at the left edge",
	},
	cli.IntFlag{
		Name:  "y",
		Usage: "pixel row, 0 at the top edge",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: integrator.DefaultMaxDepth,
		Usage: "maximum mirror reflection depth",
	},
}

// Inspect the primary ray through a single pixel.
func InspectPixel(ctx *cli.Context) error {
	setupLogging(ctx)

	if !ctx.IsSet("x") || !ctx.IsSet("y") {
		return cli.NewExitError("both -x and -y are required", 1)
	}

	sc, err := scene.Create(ctx.String("scene"), ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return cli.NewExitError(err.Error(), int(entry.StatusOf(err)))
	}

	x, y := ctx.Int("x"), ctx.Int("y")
	result, err := renderer.Inspect(sc, integrator.Config{MaxDepth: ctx.Int("max-depth")}, x, y)
	if err != nil {
		return cli.NewExitError(err.Error(), int(entry.StatusOf(err)))
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Pixel", fmt.Sprintf("(%d, %d)", x, y)})
	table.Append([]string{"Ray direction", formatVec(result.Ray.Direction)})
	table.Append([]string{"Hit", fmt.Sprintf("%t", result.Hit)})
	if result.Hit {
		mat := result.Record.Material
		table.Append([]string{"Primitive", fmt.Sprintf("#%d %s", result.Record.Index, result.Primitive.Kind)})
		table.Append([]string{"Distance", fmt.Sprintf("%.6f", result.Record.T)})
		table.Append([]string{"Point", formatVec(result.Record.Point)})
		table.Append([]string{"Normal", formatVec(result.Record.Normal)})
		table.Append([]string{"Front face", fmt.Sprintf("%t", result.Record.FrontFace)})
		table.Append([]string{"Material color", formatVec(mat.Color)})
		table.Append([]string{"Reflectivity", fmt.Sprintf("%g", mat.Reflectivity)})
	}
	table.SetFooter([]string{"Color", formatVec(result.Color)})
	table.Render()
	return nil
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
