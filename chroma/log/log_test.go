package log

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	savedOutput, savedLevel, savedNoColor := Output, Level, color.NoColor
	Output = buf
	color.NoColor = true
	t.Cleanup(func() {
		Output, Level, color.NoColor = savedOutput, savedLevel, savedNoColor
	})
	return buf
}

func TestSetLevel(t *testing.T) {
	capture(t)
	cases := []struct {
		debug, quiet, silent bool
		want                 LogLevel
	}{
		{false, false, false, LogLevel_Info},
		{true, false, false, LogLevel_Debug},
		{false, true, false, LogLevel_Warn},
		{false, false, true, LogLevel_None},
		{true, true, true, LogLevel_Debug},
		{false, true, true, LogLevel_None},
	}
	for _, c := range cases {
		SetLevel(c.debug, c.quiet, c.silent)
		assert.Equal(t, c.want, Level, "%+v", c)
	}
}

func TestLevelGatesOutput(t *testing.T) {
	buf := capture(t)
	Level = LogLevel_Warn
	Infof("hidden %d", 1)
	Debugf("hidden %d", 2)
	Warnf("shown %d", 3)
	assert.Equal(t, "[WARNING] shown 3\n", buf.String())

	buf.Reset()
	Level = LogLevel_None
	Warnf("hidden")
	assert.Empty(t, buf.String())
}

func TestDebugIndent(t *testing.T) {
	buf := capture(t)
	Level = LogLevel_Debug
	Debugf("outer")
	Enter()
	Debugf("inner")
	Leave()
	Leave()
	Debugf("outer again")
	assert.Equal(t, "outer\n  inner\nouter again\n", buf.String())
}
