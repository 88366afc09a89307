package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/log"
)

const logModule = "raytracer"

var logger = log.New(logModule)

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
