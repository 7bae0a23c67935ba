package events

import (
	"github.com/gogo/protobuf/proto"
)

// Wire forms of the models. Field numbers are part of the stored format.

type handleWire struct {
	GUID    []byte `protobuf:"bytes,1,opt,name=guid,proto3"`
	Counter uint64 `protobuf:"varint,2,opt,name=counter,proto3"`
}

func (m *handleWire) Reset()         { *m = handleWire{} }
func (m *handleWire) String() string { return proto.CompactTextString(m) }
func (*handleWire) ProtoMessage()    {}

type eventWire struct {
	GUID     []byte `protobuf:"bytes,1,opt,name=guid,proto3"`
	Sequence uint64 `protobuf:"varint,2,opt,name=sequence,proto3"`
	Payload  []byte `protobuf:"bytes,3,opt,name=payload,proto3"`
}

func (m *eventWire) Reset()         { *m = eventWire{} }
func (m *eventWire) String() string { return proto.CompactTextString(m) }
func (*eventWire) ProtoMessage()    {}

// Marshal serializes the handle.
func (h *Handle) Marshal() ([]byte, error) {
	return proto.Marshal(&handleWire{GUID: h.GUID, Counter: h.Counter})
}

// Unmarshal loads the handle from its binary representation.
func (h *Handle) Unmarshal(raw []byte) error {
	var w handleWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	*h = Handle{GUID: w.GUID, Counter: w.Counter}
	return nil
}

// Marshal serializes the event.
func (e *Event) Marshal() ([]byte, error) {
	return proto.Marshal(&eventWire{GUID: e.GUID, Sequence: e.Sequence, Payload: e.Payload})
}

// Unmarshal loads the event from its binary representation.
func (e *Event) Unmarshal(raw []byte) error {
	var w eventWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	*e = Event{GUID: w.GUID, Sequence: w.Sequence, Payload: w.Payload}
	return nil
}
