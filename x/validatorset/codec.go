package validatorset

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/valset/x/events"
	amino "github.com/tendermint/go-amino"
)

// RegisterCodec registers all messages of this extension, so that a
// transaction codec can decode them.
func RegisterCodec(cdc *amino.Codec) {
	cdc.RegisterConcrete(&ReconfigureMsg{}, "validatorset/ReconfigureMsg", nil)
}

// Wire forms of the models. Field numbers are part of the stored format and
// of the published ChangeEvent, they must never be reused or reordered.
// Nested messages are kept as their encoded bytes, which is the same on
// the wire as an embedded message.

type validatorInfoWire struct {
	Address               []byte `protobuf:"bytes,1,opt,name=address,proto3"`
	ConsensusPubKey       []byte `protobuf:"bytes,2,opt,name=consensus_pubkey,json=consensusPubkey,proto3"`
	ConsensusVotingPower  uint64 `protobuf:"varint,3,opt,name=consensus_voting_power,json=consensusVotingPower,proto3"`
	NetworkSigningPubKey  []byte `protobuf:"bytes,4,opt,name=network_signing_pubkey,json=networkSigningPubkey,proto3"`
	NetworkIdentityPubKey []byte `protobuf:"bytes,5,opt,name=network_identity_pubkey,json=networkIdentityPubkey,proto3"`
}

func (m *validatorInfoWire) Reset()         { *m = validatorInfoWire{} }
func (m *validatorInfoWire) String() string { return proto.CompactTextString(m) }
func (*validatorInfoWire) ProtoMessage()    {}

type changeEventWire struct {
	NewValidatorSet [][]byte `protobuf:"bytes,1,rep,name=new_validator_set,json=newValidatorSet,proto3"`
}

func (m *changeEventWire) Reset()         { *m = changeEventWire{} }
func (m *changeEventWire) String() string { return proto.CompactTextString(m) }
func (*changeEventWire) ProtoMessage()    {}

type registryWire struct {
	Validators   [][]byte `protobuf:"bytes,1,rep,name=validators,proto3"`
	ChangeEvents []byte   `protobuf:"bytes,2,opt,name=change_events,json=changeEvents,proto3"`
}

func (m *registryWire) Reset()         { *m = registryWire{} }
func (m *registryWire) String() string { return proto.CompactTextString(m) }
func (*registryWire) ProtoMessage()    {}

type configurationWire struct {
	Authority []byte `protobuf:"bytes,1,opt,name=authority,proto3"`
}

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

// Marshal serializes the entry.
func (v *ValidatorInfo) Marshal() ([]byte, error) {
	return proto.Marshal(&validatorInfoWire{
		Address:               v.Address,
		ConsensusPubKey:       v.ConsensusPubKey,
		ConsensusVotingPower:  v.ConsensusVotingPower,
		NetworkSigningPubKey:  v.NetworkSigningPubKey,
		NetworkIdentityPubKey: v.NetworkIdentityPubKey,
	})
}

// Unmarshal loads the entry from its binary representation.
func (v *ValidatorInfo) Unmarshal(raw []byte) error {
	var w validatorInfoWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	*v = ValidatorInfo{
		Address:               w.Address,
		ConsensusPubKey:       w.ConsensusPubKey,
		ConsensusVotingPower:  w.ConsensusVotingPower,
		NetworkSigningPubKey:  w.NetworkSigningPubKey,
		NetworkIdentityPubKey: w.NetworkIdentityPubKey,
	}
	return nil
}

func marshalValidators(vs []ValidatorInfo) ([][]byte, error) {
	res := make([][]byte, len(vs))
	for i := range vs {
		raw, err := vs[i].Marshal()
		if err != nil {
			return nil, err
		}
		res[i] = raw
	}
	return res, nil
}

func unmarshalValidators(raws [][]byte) ([]ValidatorInfo, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	res := make([]ValidatorInfo, len(raws))
	for i, raw := range raws {
		if err := res[i].Unmarshal(raw); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Marshal serializes the event.
func (e *ChangeEvent) Marshal() ([]byte, error) {
	vs, err := marshalValidators(e.NewValidatorSet)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(&changeEventWire{NewValidatorSet: vs})
}

// Unmarshal loads the event from its binary representation.
func (e *ChangeEvent) Unmarshal(raw []byte) error {
	var w changeEventWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	vs, err := unmarshalValidators(w.NewValidatorSet)
	if err != nil {
		return err
	}
	*e = ChangeEvent{NewValidatorSet: vs}
	return nil
}

// Marshal serializes the registry.
func (r *Registry) Marshal() ([]byte, error) {
	vs, err := marshalValidators(r.Validators)
	if err != nil {
		return nil, err
	}
	h, err := r.ChangeEvents.Marshal()
	if err != nil {
		return nil, err
	}
	return proto.Marshal(&registryWire{Validators: vs, ChangeEvents: h})
}

// Unmarshal loads the registry from its binary representation.
func (r *Registry) Unmarshal(raw []byte) error {
	var w registryWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	vs, err := unmarshalValidators(w.Validators)
	if err != nil {
		return err
	}
	var h events.Handle
	if err := h.Unmarshal(w.ChangeEvents); err != nil {
		return err
	}
	*r = Registry{Validators: vs, ChangeEvents: h}
	return nil
}

// Marshal serializes the configuration.
func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal(&configurationWire{Authority: c.Authority})
}

// Unmarshal loads the configuration from its binary representation.
func (c *Configuration) Unmarshal(raw []byte) error {
	var w configurationWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	*c = Configuration{Authority: w.Authority}
	return nil
}
