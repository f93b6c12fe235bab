package subcmd

import (
	"fmt"
	"os"

	"github.com/but80/chroma/chroma/log"
	"github.com/but80/chroma/chroma/transpose"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var Transpose = cli.Command{
	Name:      "transpose",
	Aliases:   []string{"t"},
	Usage:     "Transposes a note by the given number of half steps",
	ArgsUsage: "<note> <steps>",
	Flags: withLogFlags(
		downFlag,
		cli.IntFlag{
			Name:  "count, c",
			Usage: `Repeat the transposition from each result`,
			Value: 1,
		},
		jsonFlag,
		protobufFlag,
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 2 || ctx.Int("count") < 1 {
			cli.ShowCommandHelp(ctx, "transpose")
			os.Exit(1)
		}
		applyLogFlags(ctx)
		args := ctx.Args()
		from, err := parseNoteArg(args[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		steps, err := parseStepsArg(args[1])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		results := transpose.Sequence(from, direction(ctx), steps, ctx.Int("count"))
		log.Debugf("%d results", len(results))
		w := ctx.App.Writer
		if ctx.Bool("json") {
			var data interface{} = results
			if len(results) == 1 {
				data = results[0]
			}
			err = writeJSON(w, data)
		} else if ctx.Bool("protobuf") {
			if 1 < len(results) {
				return cli.NewExitError(errors.Errorf("Protobuf output supports a single transposition only"), 1)
			}
			err = writeProtobuf(w, results[0].ToPB())
		} else {
			for _, r := range results {
				fmt.Fprintln(w, r.String())
			}
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}
