package sigs

import (
	"github.com/gogo/protobuf/proto"
)

// nonceWire is the stored form of Nonce. Signatures travel inside the
// amino encoded transaction, see the app codec.
type nonceWire struct {
	Sequence int64 `protobuf:"varint,1,opt,name=sequence,proto3"`
}

func (m *nonceWire) Reset()         { *m = nonceWire{} }
func (m *nonceWire) String() string { return proto.CompactTextString(m) }
func (*nonceWire) ProtoMessage()    {}
