package transpose

import (
	"fmt"

	"github.com/but80/chroma/chroma/enums"
	pb "github.com/but80/chroma/pb/chroma"
	"github.com/pkg/errors"
)

// Result は、1回の移調の入力と結果を格納する構造体です。
type Result struct {
	From      enums.Note      `json:"from"`
	To        enums.Note      `json:"to"`
	Direction enums.Direction `json:"direction"`
	Steps     uint            `json:"steps"`
}

// Apply は、from を dir の方向に steps 半音移調します。
func Apply(from enums.Note, dir enums.Direction, steps uint) Result {
	return Result{
		From:      from,
		To:        from.Transpose(dir, steps),
		Direction: dir,
		Steps:     steps,
	}
}

// ParseAndApply は、音名の文字列を解釈してから移調します。
func ParseAndApply(name string, dir enums.Direction, steps uint) (Result, error) {
	from, err := enums.ParseNote(name)
	if err != nil {
		return Result{}, errors.Wrapf(err, "cannot transpose")
	}
	return Apply(from, dir, steps), nil
}

// Sequence は、直前の結果を起点とした count 回の移調を返します。
func Sequence(from enums.Note, dir enums.Direction, steps uint, count int) []Result {
	result := []Result{}
	for i := 0; i < count; i++ {
		r := Apply(from, dir, steps)
		result = append(result, r)
		from = r.To
	}
	return result
}

func (r Result) String() string {
	return fmt.Sprintf("%s %s%d -> %s", r.From, r.Direction.Sign(), r.Steps, r.To)
}

// ToPB は、Protocol Buffers のメッセージに変換します。
func (r Result) ToPB() *pb.Transposition {
	dir := pb.Direction_UP
	if r.Direction == enums.Direction_Down {
		dir = pb.Direction_DOWN
	}
	return &pb.Transposition{
		From:      r.From.String(),
		To:        r.To.String(),
		Direction: dir,
		Steps:     uint32(r.Steps),
	}
}
