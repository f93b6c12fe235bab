package enums

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Note は、オクターブを持たない音名（ピッチクラス）を表す整数型です。
type Note int

const (
	Note_A Note = iota
	Note_As
	Note_B
	Note_C
	Note_Cs
	Note_D
	Note_Ds
	Note_E
	Note_F
	Note_Fs
	Note_G
	Note_Gs
)

// NumNotes は、1オクターブに含まれる音名の数です。
const NumNotes = 12

var noteName = []string{
	"A",
	"A#",
	"B",
	"C",
	"C#",
	"D",
	"D#",
	"E",
	"F",
	"F#",
	"G",
	"G#",
}

// key 0 = C
const keyOffset = 3

// ParseError は、音名として解釈できない文字列が与えられたときのエラーです。
type ParseError struct {
	Name string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized note name: %q", e.Name)
}

// IsParseError は、err の原因が ParseError であるかを判定します。
func IsParseError(err error) bool {
	_, ok := errors.Cause(err).(*ParseError)
	return ok
}

// ParseNote は、音名の文字列を Note に変換します。
// シャープ表記の12種類（大文字小文字を区別）以外は受け付けません。
func ParseNote(name string) (Note, error) {
	for i, s := range noteName {
		if s == name {
			return Note(i), nil
		}
	}
	return Note_A, errors.WithStack(&ParseError{Name: name})
}

// Notes は、A から始まる半音階順の全音名を返します。
func Notes() []Note {
	result := make([]Note, NumNotes)
	for i := range result {
		result[i] = Note(i)
	}
	return result
}

// NoteFromKey は、ノートナンバー（0 が C）の音名を返します。
func NoteFromKey(key int) Note {
	return Note(key + keyOffset).normalize()
}

func (n Note) normalize() Note {
	i := int(n) % NumNotes
	if i < 0 {
		i += NumNotes
	}
	return Note(i)
}

// Valid は、n が12種類の音名のいずれかであるかを判定します。
func (n Note) Valid() bool {
	return Note_A <= n && n <= Note_Gs
}

func (n Note) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Note(%d)", int(n))
	}
	return noteName[n]
}

// HalfStepUp は、半音上の音名を返します。G# の次は A です。
func (n Note) HalfStepUp() Note {
	return n.NHalfStepsUp(1)
}

// HalfStepDown は、半音下の音名を返します。
func (n Note) HalfStepDown() Note {
	return n.NHalfStepsUp(NumNotes - 1)
}

// NHalfStepsUp は、steps 半音上の音名を返します。
func (n Note) NHalfStepsUp(steps uint) Note {
	return Note((uint(n.normalize()) + steps%NumNotes) % NumNotes)
}

// NHalfStepsDown は、steps 半音下の音名を返します。
func (n Note) NHalfStepsDown(steps uint) Note {
	return n.NHalfStepsUp((NumNotes - 1) * (steps % NumNotes))
}

// Transpose は、dir の方向に steps 半音移調した音名を返します。
func (n Note) Transpose(dir Direction, steps uint) Note {
	if dir == Direction_Down {
		return n.NHalfStepsDown(steps)
	}
	return n.NHalfStepsUp(steps)
}

// HalfStepsTo は、n から上方向に数えた other までの半音数 (0..11) を返します。
func (n Note) HalfStepsTo(other Note) uint {
	return uint((other.normalize() - n.normalize() + NumNotes) % NumNotes)
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *Note) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.WithStack(err)
	}
	parsed, err := ParseNote(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
