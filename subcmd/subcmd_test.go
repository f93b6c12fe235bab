package subcmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/but80/chroma/chroma/enums"
	"github.com/but80/chroma/chroma/log"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

func run(t *testing.T, args ...string) (string, int) {
	var out, errOut bytes.Buffer
	exitCode := 0
	savedExiter, savedOutput := cli.OsExiter, log.Output
	cli.OsExiter = func(code int) { exitCode = code }
	log.Output = &errOut
	defer func() {
		cli.OsExiter, log.Output = savedExiter, savedOutput
	}()

	app := cli.NewApp()
	app.Name = "chroma"
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Commands = []cli.Command{Transpose, Scale}
	_ = app.Run(append([]string{"chroma"}, args...))
	return out.String(), exitCode
}

func TestTransposeCommand(t *testing.T) {
	out, code := run(t, "transpose", "C", "5")
	assert.Equal(t, 0, code)
	assert.Equal(t, "C +5 -> F\n", out)

	out, code = run(t, "t", "--down", "F", "5")
	assert.Equal(t, 0, code)
	assert.Equal(t, "F -5 -> C\n", out)
}

func TestTransposeCommandFoldsFullWidthInput(t *testing.T) {
	out, code := run(t, "transpose", "Ｇ＃", "１")
	assert.Equal(t, 0, code)
	assert.Equal(t, "G# +1 -> A\n", out)
}

func TestTransposeCommandCount(t *testing.T) {
	out, _ := run(t, "transpose", "--count", "3", "C", "7")
	assert.Equal(t, "C +7 -> G\nG +7 -> D\nD +7 -> A\n", out)
}

func TestTransposeCommandJSON(t *testing.T) {
	out, _ := run(t, "transpose", "--json", "A", "1")
	assert.JSONEq(t, `{"from":"A","to":"A#","direction":"up","steps":1}`, out)
}

func TestTransposeCommandRejectsUnknownNote(t *testing.T) {
	out, code := run(t, "transpose", "Db", "1")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestScaleCommand(t *testing.T) {
	out, _ := run(t, "scale", "C")
	assert.Equal(t, "C C# D D# E F F# G G# A A# B\n", out)

	out, _ = run(t, "scale", "--down", "A")
	assert.Equal(t, "A G# G F# F E D# D C# C B A#\n", out)
}

func TestChromaticScale(t *testing.T) {
	notes := chromaticScale(enums.Note_A, enums.Direction_Up)
	assert.Equal(t, enums.Notes(), notes)
}

func TestStreamNotes(t *testing.T) {
	log.Level = log.LogLevel_None
	defer func() { log.Level = log.LogLevel_Info }()

	var out bytes.Buffer
	var handled int64
	in := strings.NewReader("C\n\nDb\nG#\nＥ\n")
	err := streamNotes(in, &out, enums.Direction_Up, 1, false, &handled)
	assert.NoError(t, err)
	assert.Equal(t, "C#\nA\nF\n", out.String())
	assert.Equal(t, int64(3), handled)
}

func TestStreamNotesStrict(t *testing.T) {
	var out bytes.Buffer
	var handled int64
	err := streamNotes(strings.NewReader("C\nDb\nE\n"), &out, enums.Direction_Down, 13, true, &handled)
	assert.Error(t, err)
	assert.True(t, enums.IsParseError(err))
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "B\n", out.String())
	assert.Equal(t, int64(1), handled)
}
