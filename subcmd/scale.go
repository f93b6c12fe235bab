package subcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/but80/chroma/chroma/enums"
	"github.com/urfave/cli"
)

var Scale = cli.Command{
	Name:      "scale",
	Aliases:   []string{"s"},
	Usage:     "Shows the chromatic scale starting at a note",
	ArgsUsage: "<note>",
	Flags:     withLogFlags(downFlag, jsonFlag),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "scale")
			os.Exit(1)
		}
		applyLogFlags(ctx)
		start, err := parseNoteArg(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		notes := chromaticScale(start, direction(ctx))
		if ctx.Bool("json") {
			if err := writeJSON(ctx.App.Writer, notes); err != nil {
				return cli.NewExitError(err, 1)
			}
			return nil
		}
		names := make([]string, len(notes))
		for i, n := range notes {
			names[i] = n.String()
		}
		fmt.Fprintln(ctx.App.Writer, strings.Join(names, " "))
		return nil
	},
}

func chromaticScale(start enums.Note, dir enums.Direction) []enums.Note {
	result := make([]enums.Note, 0, enums.NumNotes)
	n := start
	for i := 0; i < enums.NumNotes; i++ {
		result = append(result, n)
		n = n.Transpose(dir, 1)
	}
	return result
}
