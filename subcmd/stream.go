package subcmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/but80/chroma/chroma/enums"
	"github.com/but80/chroma/chroma/log"
	"github.com/but80/chroma/chroma/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/xlab/closer"
)

var Stream = cli.Command{
	Name:      "stream",
	Aliases:   []string{"S"},
	Usage:     "Transposes note names read line by line from stdin",
	ArgsUsage: "<steps>",
	Flags: withLogFlags(
		downFlag,
		cli.BoolFlag{
			Name:  "strict",
			Usage: `Stop at the first unrecognized note name`,
		},
	),
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			cli.ShowCommandHelp(ctx, "stream")
			os.Exit(1)
		}
		applyLogFlags(ctx)
		steps, err := parseStepsArg(ctx.Args()[0])
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		var handled int64
		closer.Bind(func() {
			log.Infof("interrupted after %d notes", atomic.LoadInt64(&handled))
		})
		err = streamNotes(os.Stdin, ctx.App.Writer, direction(ctx), steps, ctx.Bool("strict"), &handled)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Infof("%d notes transposed", atomic.LoadInt64(&handled))
		return nil
	},
}

// streamNotes は、r から1行1音名を読み込み、移調した音名を w に書き出します。
// 空行は読み飛ばします。
func streamNotes(r io.Reader, w io.Writer, dir enums.Direction, steps uint, strict bool, handled *int64) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := util.FoldWidth(scanner.Text())
		if s == "" {
			continue
		}
		n, err := enums.ParseNote(s)
		if err != nil {
			if strict {
				return errors.Wrapf(err, "line %d", line)
			}
			log.Warnf("line %d: %s", line, errors.Cause(err).Error())
			continue
		}
		fmt.Fprintln(w, n.Transpose(dir, steps).String())
		atomic.AddInt64(handled, 1)
	}
	return errors.WithStack(scanner.Err())
}
