package subcmd

import (
	"fmt"
	"os"

	"github.com/but80/chroma/chroma/census"
	"github.com/but80/chroma/chroma/log"
	"github.com/but80/chroma/chroma/util"
	"github.com/urfave/cli"
)

var Census = cli.Command{
	Name:      "census",
	Aliases:   []string{"c"},
	Usage:     "Counts pitch classes of note events in SMAF format files (.mmf|.spf)",
	ArgsUsage: "<filename>",
	Flags: withLogFlags(
		cli.StringFlag{
			Name:  "transpose, t",
			Usage: `Transpose the counts by the given number of half steps`,
			Value: "0",
		},
		downFlag,
		jsonFlag,
		protobufFlag,
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "census")
			os.Exit(1)
		}
		applyLogFlags(ctx)
		steps, err := parseStepsArg(ctx.String("transpose"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		c, err := census.Load(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if 0 < steps {
			c = c.Transposed(direction(ctx), steps)
		}
		if n, ok := c.Dominant(); ok {
			log.Infof("%d notes, most frequent: %s", c.Total(), n)
		} else {
			log.Warnf("No note events found")
		}
		w := ctx.App.Writer
		if ctx.Bool("json") {
			err = writeJSON(w, c)
		} else if ctx.Bool("protobuf") {
			err = writeProtobuf(w, c.ToPB())
		} else {
			fmt.Fprintln(w, util.Indent(c.String(), "  "))
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}
