package main

import (
	"os"

	"github.com/but80/chroma/subcmd"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "chroma"
	app.Version = version
	app.Usage = "Transposes notes of the chromatic scale"
	app.Authors = []cli.Author{
		{
			Name:  "but80",
			Email: "mersenne.sister@gmail.com",
		},
	}
	app.HelpName = "chroma"

	app.Commands = []cli.Command{
		subcmd.Transpose,
		subcmd.Scale,
		subcmd.Census,
		subcmd.Stream,
	}

	app.Action = func(ctx *cli.Context) error {
		cli.ShowAppHelp(ctx)
		return nil
	}

	app.Run(os.Args)
}
