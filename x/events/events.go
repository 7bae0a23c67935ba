package events

import (
	"bytes"
	"encoding/binary"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/orm"
)

const guidSuffixLength = 8

// Handle identifies an event channel. The owner of the channel must store
// the handle and hand it back for every emit, so that the counter survives.
type Handle struct {
	GUID    []byte `json:"guid"`
	Counter uint64 `json:"counter"`
}

// Validate returns an error if the handle is not usable.
func (h *Handle) Validate() error {
	if len(h.GUID) != valset.AddressLength+guidSuffixLength {
		return errors.Wrapf(errors.ErrInput, "invalid guid length %d", len(h.GUID))
	}
	return nil
}

// Owner returns the address that created this channel.
func (h *Handle) Owner() valset.Address {
	return valset.Address(h.GUID[:valset.AddressLength])
}

// Event is a single entry of a channel.
type Event struct {
	GUID     []byte `json:"guid"`
	Sequence uint64 `json:"sequence"`
	Payload  []byte `json:"payload"`
}

// Validate returns an error if the event is not complete.
func (e *Event) Validate() error {
	if len(e.GUID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "guid")
	}
	return nil
}

// NewHandle allocates a new channel for given owner. Every call returns a
// handle with a different GUID, even for the same owner.
func NewHandle(db valset.KVStore, owner valset.Address) (*Handle, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	seq := orm.NewSequence("events", owner.String())
	n, err := seq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "creation number")
	}
	guid := make([]byte, 0, len(owner)+len(n))
	guid = append(guid, owner...)
	guid = append(guid, n...)
	return &Handle{GUID: guid}, nil
}

func eventKey(guid []byte, seq uint64) []byte {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], seq)
	var b bytes.Buffer
	b.WriteString("_ev:")
	b.Write(guid)
	b.WriteByte(':')
	b.Write(n[:])
	return b.Bytes()
}

// Emit appends a new event to the channel. The payload is serialized and
// the handle counter is incremented. The handle must be persisted by the
// caller, in the same store, for the new counter to be remembered.
func Emit(db valset.KVStore, h *Handle, payload valset.Marshaller) error {
	if err := h.Validate(); err != nil {
		return errors.Wrap(err, "handle")
	}
	raw, err := payload.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", payload, err)
	}
	e := Event{
		GUID:     h.GUID,
		Sequence: h.Counter,
		Payload:  raw,
	}
	bz, err := e.Marshal()
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if err := db.Set(eventKey(h.GUID, e.Sequence), bz); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	h.Counter++
	return nil
}

// Get returns a single event of a channel. ErrNotFound is returned if no
// event with that sequence was emitted.
func Get(db valset.ReadOnlyKVStore, guid []byte, seq uint64) (*Event, error) {
	raw, err := db.Get(eventKey(guid, seq))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "event %d", seq)
	}
	var e Event
	if err := e.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &e, nil
}

// List returns all events emitted on the channel, ordered by sequence.
func List(db valset.ReadOnlyKVStore, h Handle) ([]*Event, error) {
	res := make([]*Event, 0, h.Counter)
	for seq := uint64(0); seq < h.Counter; seq++ {
		e, err := Get(db, h.GUID, seq)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}
