package enums

import "encoding/json"

type Direction int

const (
	Direction_Up Direction = iota
	Direction_Down
)

// Sign は、移調量の表示に使う符号を返します。
func (d Direction) Sign() string {
	if d == Direction_Down {
		return "-"
	}
	return "+"
}

func (d Direction) String() string {
	s := "undefined"
	switch d {
	case Direction_Up:
		s = "up"
	case Direction_Down:
		s = "down"
	}
	return s
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
