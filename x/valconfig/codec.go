package valconfig

import (
	"github.com/gogo/protobuf/proto"
	amino "github.com/tendermint/go-amino"
)

// RegisterCodec registers all messages of this extension, so that a
// transaction codec can decode them.
func RegisterCodec(cdc *amino.Codec) {
	cdc.RegisterConcrete(&SetConfigMsg{}, "valconfig/SetConfigMsg", nil)
}

// configWire is the stored form of Config.
type configWire struct {
	ConsensusPubKey       []byte `protobuf:"bytes,1,opt,name=consensus_pubkey,json=consensusPubkey,proto3"`
	NetworkSigningPubKey  []byte `protobuf:"bytes,2,opt,name=network_signing_pubkey,json=networkSigningPubkey,proto3"`
	NetworkIdentityPubKey []byte `protobuf:"bytes,3,opt,name=network_identity_pubkey,json=networkIdentityPubkey,proto3"`
}

func (m *configWire) Reset()         { *m = configWire{} }
func (m *configWire) String() string { return proto.CompactTextString(m) }
func (*configWire) ProtoMessage()    {}

// Marshal serializes the configuration.
func (c *Config) Marshal() ([]byte, error) {
	return proto.Marshal(&configWire{
		ConsensusPubKey:       c.ConsensusPubKey,
		NetworkSigningPubKey:  c.NetworkSigningPubKey,
		NetworkIdentityPubKey: c.NetworkIdentityPubKey,
	})
}

// Unmarshal loads the configuration from its binary representation.
func (c *Config) Unmarshal(raw []byte) error {
	var w configWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	*c = Config{
		ConsensusPubKey:       w.ConsensusPubKey,
		NetworkSigningPubKey:  w.NetworkSigningPubKey,
		NetworkIdentityPubKey: w.NetworkIdentityPubKey,
	}
	return nil
}
