package validatorset

import (
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/orm"
	"github.com/iov-one/valset/x/events"
)

const packageName = "validatorset"

// initialVotingPower is given to every admitted validator.
const initialVotingPower = 1

// ValidatorInfo is a single entry of the roster. Field order is part of the
// serialized form of a ChangeEvent and must not change.
type ValidatorInfo struct {
	Address               valset.Address `json:"address"`
	ConsensusPubKey       []byte         `json:"consensus_pubkey"`
	ConsensusVotingPower  uint64         `json:"consensus_voting_power"`
	NetworkSigningPubKey  []byte         `json:"network_signing_pubkey"`
	NetworkIdentityPubKey []byte         `json:"network_identity_pubkey"`
}

// Validate ensures the entry is addressable.
func (v *ValidatorInfo) Validate() error {
	return errors.Wrap(v.Address.Validate(), "address")
}

// Copy returns a deep copy of the entry.
func (v ValidatorInfo) Copy() ValidatorInfo {
	return ValidatorInfo{
		Address:               cloneBytes(v.Address),
		ConsensusPubKey:       cloneBytes(v.ConsensusPubKey),
		ConsensusVotingPower:  v.ConsensusVotingPower,
		NetworkSigningPubKey:  cloneBytes(v.NetworkSigningPubKey),
		NetworkIdentityPubKey: cloneBytes(v.NetworkIdentityPubKey),
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// snapshot returns a deep copy of the roster.
func snapshot(vs []ValidatorInfo) []ValidatorInfo {
	res := make([]ValidatorInfo, len(vs))
	for i, v := range vs {
		res[i] = v.Copy()
	}
	return res
}

// Registry is the singleton holding the roster and the handle of the
// channel its changes are published on.
type Registry struct {
	Validators   []ValidatorInfo `json:"validators"`
	ChangeEvents events.Handle   `json:"change_events"`
}

var _ orm.Model = (*Registry)(nil)

// Validate ensures all entries and the event handle are valid.
func (r *Registry) Validate() error {
	if err := r.ChangeEvents.Validate(); err != nil {
		return errors.Wrap(err, "change events")
	}
	for i := range r.Validators {
		if err := r.Validators[i].Validate(); err != nil {
			return errors.Wrapf(err, "validator #%d", i)
		}
	}
	return nil
}

// ChangeEvent is published every time reconfiguration changes the roster.
// It always carries the whole new roster, never a difference.
type ChangeEvent struct {
	NewValidatorSet []ValidatorInfo `json:"new_validator_set"`
}

// Configuration is kept in gconf. Authority is the only address allowed to
// create the registry and the key the registry is stored under.
type Configuration struct {
	Authority valset.Address `json:"authority"`
}

// Validate ensures the authority is set.
func (c *Configuration) Validate() error {
	return errors.Wrap(c.Authority.Validate(), "authority")
}
