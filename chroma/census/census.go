package census

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/but80/chroma/chroma/enums"
	"github.com/but80/chroma/chroma/log"
	pb "github.com/but80/chroma/pb/chroma"
	"github.com/but80/go-smaf/v2/chunk"
	"github.com/but80/go-smaf/v2/event"
	"github.com/pkg/errors"
)

// Census は、音名ごとの出現回数を集計する構造体です。
type Census struct {
	counts [enums.NumNotes]int
}

// Entry は、1つの音名とその出現回数の組です。
type Entry struct {
	Note  enums.Note `json:"note"`
	Count int        `json:"count"`
}

// New は、空の Census を作成します。
func New() *Census {
	return &Census{}
}

func (c *Census) Add(n enums.Note) {
	c.counts[n.NHalfStepsUp(0)]++
}

func (c *Census) Count(n enums.Note) int {
	return c.counts[n.NHalfStepsUp(0)]
}

func (c *Census) Total() int {
	total := 0
	for _, v := range c.counts {
		total += v
	}
	return total
}

// Transposed は、すべての出現を dir の方向に steps 半音移調した新しい Census を返します。
func (c *Census) Transposed(dir enums.Direction, steps uint) *Census {
	result := New()
	for _, n := range enums.Notes() {
		result.counts[n.Transpose(dir, steps)] = c.counts[n]
	}
	return result
}

// Entries は、A から始まる半音階順の全音名の集計を返します。
func (c *Census) Entries() []Entry {
	result := make([]Entry, 0, enums.NumNotes)
	for _, n := range enums.Notes() {
		result = append(result, Entry{Note: n, Count: c.counts[n]})
	}
	return result
}

// Dominant は、最も出現回数の多い音名を返します。同数の場合は半音階順で先のものを返します。
// 何も集計されていなければ false を返します。
func (c *Census) Dominant() (enums.Note, bool) {
	best := enums.Note_A
	found := false
	for _, n := range enums.Notes() {
		if c.counts[n] == 0 {
			continue
		}
		if !found || c.counts[best] < c.counts[n] {
			best = n
			found = true
		}
	}
	return best, found
}

func (c *Census) String() string {
	lines := []string{}
	for _, e := range c.Entries() {
		if e.Count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-2s: %d", e.Note, e.Count))
	}
	return strings.Join(lines, "\n")
}

func (c *Census) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Entries []Entry `json:"entries"`
		Total   int     `json:"total"`
	}{c.Entries(), c.Total()})
}

// ToPB は、Protocol Buffers のメッセージに変換します。
func (c *Census) ToPB() *pb.Census {
	m := &pb.Census{Counts: []*pb.Count{}}
	for _, e := range c.Entries() {
		if e.Count == 0 {
			continue
		}
		m.Counts = append(m.Counts, &pb.Count{Note: e.Note.String(), Count: uint32(e.Count)})
	}
	_ = m.Normalize()
	return m
}

// FromSMAF は、SMAF ファイル中のすべてのノートイベントの音名を集計します。
func FromSMAF(file *chunk.FileChunk) (*Census, error) {
	c := New()
	found := false
	file.Traverse(func(ck chunk.Chunk) {
		sequence, ok := ck.(*chunk.ScoreTrackSequenceDataChunk)
		if !ok || sequence == nil {
			return
		}
		found = true
		log.Debugf("sequence data chunk: %d events", len(sequence.Events))
		log.Enter()
		defer log.Leave()
		for _, pair := range sequence.Events {
			if e, ok := pair.Event.(*event.NoteEvent); ok {
				n := enums.NoteFromKey(int(e.Note))
				log.Debugf("key %d -> %s", int(e.Note), n)
				c.Add(n)
			}
		}
	})
	if !found {
		return nil, errors.Errorf("Sequence data chunk not found")
	}
	return c, nil
}

// Load は、SMAF ファイルを読み込んで音名を集計します。
func Load(path string) (*Census, error) {
	mmf, err := chunk.NewFileChunk(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %s", path)
	}
	c, err := FromSMAF(mmf)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}
