package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

// FoldWidth は、全角英数記号（例: "Ｃ＃"）を半角に変換し、前後の空白を除去します。
func FoldWidth(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}
