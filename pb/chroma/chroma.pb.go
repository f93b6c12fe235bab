// source: chroma.proto

package chroma

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf

type Direction int32

const (
	Direction_UP   Direction = 0
	Direction_DOWN Direction = 1
)

var Direction_name = map[int32]string{
	0: "UP",
	1: "DOWN",
}

var Direction_value = map[string]int32{
	"UP":   0,
	"DOWN": 1,
}

func (x Direction) String() string {
	return proto.EnumName(Direction_name, int32(x))
}

type Transposition struct {
	From                 string    `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	To                   string    `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Direction            Direction `protobuf:"varint,3,opt,name=direction,proto3,enum=chroma.Direction" json:"direction,omitempty"`
	Steps                uint32    `protobuf:"varint,4,opt,name=steps,proto3" json:"steps,omitempty"`
	XXX_NoUnkeyedLiteral struct{}  `json:"-"`
	XXX_unrecognized     []byte    `json:"-"`
	XXX_sizecache        int32     `json:"-"`
}

func (m *Transposition) Reset()         { *m = Transposition{} }
func (m *Transposition) String() string { return proto.CompactTextString(m) }
func (*Transposition) ProtoMessage()    {}

func (m *Transposition) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Transposition.Unmarshal(m, b)
}
func (m *Transposition) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Transposition.Marshal(b, m, deterministic)
}
func (m *Transposition) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Transposition.Merge(m, src)
}
func (m *Transposition) XXX_Size() int {
	return xxx_messageInfo_Transposition.Size(m)
}
func (m *Transposition) XXX_DiscardUnknown() {
	xxx_messageInfo_Transposition.DiscardUnknown(m)
}

var xxx_messageInfo_Transposition proto.InternalMessageInfo

func (m *Transposition) GetFrom() string {
	if m != nil {
		return m.From
	}
	return ""
}

func (m *Transposition) GetTo() string {
	if m != nil {
		return m.To
	}
	return ""
}

func (m *Transposition) GetDirection() Direction {
	if m != nil {
		return m.Direction
	}
	return Direction_UP
}

func (m *Transposition) GetSteps() uint32 {
	if m != nil {
		return m.Steps
	}
	return 0
}

type Count struct {
	Note                 string   `protobuf:"bytes,1,opt,name=note,proto3" json:"note,omitempty"`
	Count                uint32   `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Count) Reset()         { *m = Count{} }
func (m *Count) String() string { return proto.CompactTextString(m) }
func (*Count) ProtoMessage()    {}

func (m *Count) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Count.Unmarshal(m, b)
}
func (m *Count) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Count.Marshal(b, m, deterministic)
}
func (m *Count) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Count.Merge(m, src)
}
func (m *Count) XXX_Size() int {
	return xxx_messageInfo_Count.Size(m)
}
func (m *Count) XXX_DiscardUnknown() {
	xxx_messageInfo_Count.DiscardUnknown(m)
}

var xxx_messageInfo_Count proto.InternalMessageInfo

func (m *Count) GetNote() string {
	if m != nil {
		return m.Note
	}
	return ""
}

func (m *Count) GetCount() uint32 {
	if m != nil {
		return m.Count
	}
	return 0
}

type Census struct {
	Counts               []*Count `protobuf:"bytes,1,rep,name=counts,proto3" json:"counts,omitempty"`
	Total                uint32   `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Census) Reset()         { *m = Census{} }
func (m *Census) String() string { return proto.CompactTextString(m) }
func (*Census) ProtoMessage()    {}

func (m *Census) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Census.Unmarshal(m, b)
}
func (m *Census) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Census.Marshal(b, m, deterministic)
}
func (m *Census) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Census.Merge(m, src)
}
func (m *Census) XXX_Size() int {
	return xxx_messageInfo_Census.Size(m)
}
func (m *Census) XXX_DiscardUnknown() {
	xxx_messageInfo_Census.DiscardUnknown(m)
}

var xxx_messageInfo_Census proto.InternalMessageInfo

func (m *Census) GetCounts() []*Count {
	if m != nil {
		return m.Counts
	}
	return nil
}

func (m *Census) GetTotal() uint32 {
	if m != nil {
		return m.Total
	}
	return 0
}

func init() {
	proto.RegisterEnum("chroma.Direction", Direction_name, Direction_value)
	proto.RegisterType((*Transposition)(nil), "chroma.Transposition")
	proto.RegisterType((*Count)(nil), "chroma.Count")
	proto.RegisterType((*Census)(nil), "chroma.Census")
}
