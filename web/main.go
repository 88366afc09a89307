package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/web/server"
)

var logger = log.New("web")

func main() {
	app := cli.NewApp()
	app.Name = "whitted-raytracer-web"
	app.Usage = "serve rendered frames and the browser host page over HTTP"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "port, p",
			Value: 8080,
			Usage: "port to serve on",
		},
		cli.StringFlag{
			Name:  "static",
			Value: "static/",
			Usage: "directory with the host page and wasm build",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Action = func(ctx *cli.Context) error {
		if ctx.Bool("v") {
			log.SetLevel(log.Info)
		}

		webServer := server.NewServer(ctx.Int("port"), ctx.String("static"))
		logger.Noticef("Visit http://localhost:%d to start rendering", ctx.Int("port"))

		if err := webServer.Start(); err != nil {
			return cli.NewExitError("error starting server: "+err.Error(), 1)
		}
		return nil
	}

	app.Run(os.Args)
}
