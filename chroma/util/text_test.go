package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	assert.Equal(t, "", Indent("", "  "))
	assert.Equal(t, "  A: 1\n  C: 2", Indent("A: 1\nC: 2", "  "))
}

func TestFoldWidth(t *testing.T) {
	assert.Equal(t, "C#", FoldWidth("Ｃ＃"))
	assert.Equal(t, "G#", FoldWidth(" G# "))
	assert.Equal(t, "A", FoldWidth("A"))
	assert.Equal(t, "12", FoldWidth("１２"))
}
