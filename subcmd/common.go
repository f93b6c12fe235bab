package subcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/but80/chroma/chroma/enums"
	"github.com/but80/chroma/chroma/log"
	"github.com/but80/chroma/chroma/util"
	pb "github.com/but80/chroma/pb/chroma"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var logFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: `Show debug messages`,
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: `Suppress information messages`,
	},
	cli.BoolFlag{
		Name:  "silent, Q",
		Usage: `Do not output any messages`,
	},
}

var downFlag = cli.BoolFlag{
	Name:  "down, D",
	Usage: `Transpose downward`,
}

var jsonFlag = cli.BoolFlag{
	Name:  "json, j",
	Usage: `Output in JSON format`,
}

var protobufFlag = cli.BoolFlag{
	Name:  "protobuf, p",
	Usage: `Output in protobuf`,
}

func withLogFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, logFlags...)
}

func applyLogFlags(ctx *cli.Context) {
	log.SetLevel(ctx.Bool("debug"), ctx.Bool("quiet"), ctx.Bool("silent"))
}

func direction(ctx *cli.Context) enums.Direction {
	if ctx.Bool("down") {
		return enums.Direction_Down
	}
	return enums.Direction_Up
}

func parseNoteArg(arg string) (enums.Note, error) {
	return enums.ParseNote(util.FoldWidth(arg))
}

func parseStepsArg(arg string) (uint, error) {
	s := util.FoldWidth(arg)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("Invalid number of half steps: %q", arg)
	}
	return uint(v), nil
}

func writeJSON(w io.Writer, data interface{}) error {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintln(w, string(j))
	return nil
}

func writeProtobuf(w io.Writer, m proto.Message) error {
	b, err := pb.Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return errors.WithStack(err)
}
