package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// List the built-in scenes. With a scene name argument, print its contents.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() > 0 {
		sc, err := scene.Lookup(ctx.Args().First())
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		fmt.Fprint(ctx.App.Writer, sc.Stats())
		return nil
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"ID", "Name", "Size", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{
			info.ID,
			info.DisplayName,
			fmt.Sprintf("%dx%d", info.Width, info.Height),
			info.Description,
		})
	}
	table.Render()
	return nil
}
