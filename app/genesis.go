package app

import (
	"encoding/json"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/x/valconfig"
	"github.com/iov-one/valset/x/validatorset"
)

// GenesisState is the app_state section of the tendermint genesis file.
type GenesisState struct {
	Conf             GenesisConf               `json:"conf"`
	ValidatorConfigs []valconfig.GenesisConfig `json:"validator_configs"`
	ValidatorSet     validatorset.GenesisState `json:"validatorset"`
}

// GenesisConf holds the gconf configuration of all extensions.
type GenesisConf struct {
	ValidatorSet validatorset.Configuration `json:"validatorset"`
}

// NewGenesisState returns the application state of a chain administered by
// the authority and starting with given validators in the given order.
func NewGenesisState(authority valset.Address, validators []valconfig.GenesisConfig) GenesisState {
	addrs := make([]valset.Address, len(validators))
	for i, v := range validators {
		addrs[i] = v.Address
	}
	return GenesisState{
		Conf:             GenesisConf{ValidatorSet: validatorset.Configuration{Authority: authority}},
		ValidatorConfigs: validators,
		ValidatorSet:     validatorset.GenesisState{Validators: addrs},
	}
}

// Validate ensures the state can be loaded by InitChain.
func (g GenesisState) Validate() error {
	if err := g.Conf.ValidatorSet.Validate(); err != nil {
		return err
	}
	for i, c := range g.ValidatorConfigs {
		if err := c.Config.Validate(); err != nil {
			return errors.Wrapf(err, "validator config #%d", i)
		}
	}
	return nil
}

// MarshalAppState returns the JSON document expected in InitChain.
func (g GenesisState) MarshalAppState() (json.RawMessage, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	raw, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}
