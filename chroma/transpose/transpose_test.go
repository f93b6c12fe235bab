package transpose

import (
	"encoding/json"
	"testing"

	"github.com/but80/chroma/chroma/enums"
	pb "github.com/but80/chroma/pb/chroma"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	r := Apply(enums.Note_C, enums.Direction_Up, 5)
	assert.Equal(t, enums.Note_F, r.To)
	assert.Equal(t, "C +5 -> F", r.String())

	r = Apply(enums.Note_F, enums.Direction_Down, 5)
	assert.Equal(t, enums.Note_C, r.To)
	assert.Equal(t, "F -5 -> C", r.String())
}

func TestParseAndApply(t *testing.T) {
	r, err := ParseAndApply("G#", enums.Direction_Up, 1)
	assert.NoError(t, err)
	assert.Equal(t, enums.Note_A, r.To)

	_, err = ParseAndApply("Ab", enums.Direction_Up, 1)
	assert.Error(t, err)
	assert.True(t, enums.IsParseError(err))
}

func TestSequenceWalksTheCycle(t *testing.T) {
	rs := Sequence(enums.Note_C, enums.Direction_Up, 7, 12)
	assert.Len(t, rs, 12)
	for i := 1; i < len(rs); i++ {
		assert.Equal(t, rs[i-1].To, rs[i].From)
	}
	assert.Equal(t, enums.Note_G, rs[0].To)
	assert.Equal(t, enums.Note_C, rs[11].To)

	assert.Empty(t, Sequence(enums.Note_C, enums.Direction_Up, 1, 0))
}

func TestResultJSON(t *testing.T) {
	b, err := json.Marshal(Apply(enums.Note_A, enums.Direction_Down, 1))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"from":"A","to":"G#","direction":"down","steps":1}`, string(b))
}

func TestToPB(t *testing.T) {
	m := Apply(enums.Note_F, enums.Direction_Down, 5).ToPB()
	assert.Equal(t, "F", m.From)
	assert.Equal(t, "C", m.To)
	assert.Equal(t, pb.Direction_DOWN, m.Direction)
	assert.Equal(t, uint32(5), m.Steps)
}
