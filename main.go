package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/cmd"
)

func newApp() *cli.App {
	// Free up -v for verbose logging
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted-raytracer"
	app.Usage = "render deterministic frames with recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame of a built-in scene",
			Description: `
Render one complete frame with Phong shading, hard shadows and mirror
reflections, and write it as a PNG, BMP, TIFF or PPM image. Output is identical
for any number of workers.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:      "scenes",
			Usage:     "list built-in scenes, or describe one",
			ArgsUsage: "[scene]",
			Action:    cmd.ListScenes,
		},
		{
			Name:   "inspect",
			Usage:  "report what the primary ray through one pixel hits",
			Flags:  cmd.InspectFlags,
			Action: cmd.InspectPixel,
		},
	}
	return app
}

func main() {
	newApp().Run(os.Args)
}
