package chroma

import (
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// Marshal は、メッセージをバイト列にシリアライズします。
func Marshal(m proto.Message) ([]byte, error) {
	b, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// LoadBytes は、バイト列から集計結果を読み込み、既存の集計に加算します。
func (c *Census) LoadBytes(b []byte) error {
	var loaded Census
	err := proto.Unmarshal(b, &loaded)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, lc := range loaded.Counts {
		if lc == nil {
			continue
		}
		found := false
		for _, cc := range c.Counts {
			if cc != nil && cc.Note == lc.Note {
				cc.Count += lc.Count
				found = true
				break
			}
		}
		if !found {
			c.Counts = append(c.Counts, &Count{Note: lc.Note, Count: lc.Count})
		}
	}
	_ = c.Normalize()
	return nil
}

// Normalize は、nil の要素を除去し、Total を各要素の合計に揃えます。
// 元から正常だったときは true を返します。
func (c *Census) Normalize() bool {
	ok := true
	counts := []*Count{}
	var total uint32
	for _, cc := range c.Counts {
		if cc == nil {
			ok = false
			continue
		}
		counts = append(counts, cc)
		total += cc.Count
	}
	c.Counts = counts
	if c.Total != total {
		c.Total = total
		ok = false
	}
	return ok
}
