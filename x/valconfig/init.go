package valconfig

import (
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
)

const optKey = "validator_configs"

// GenesisConfig is a single validator configuration declared in the genesis
// file.
type GenesisConfig struct {
	Address valset.Address `json:"address"`
	Config  Config         `json:"config"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ valset.Initializer = Initializer{}

// FromGenesis will parse initial validator configurations from genesis
// and save them to the database
func (Initializer) FromGenesis(opts valset.Options, db valset.KVStore) error {
	var configs []GenesisConfig
	if err := opts.ReadOptions(optKey, &configs); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read %q: %s", optKey, err)
	}
	s := NewStore()
	for i, c := range configs {
		c := c
		if err := s.Save(db, c.Address, &c.Config); err != nil {
			return errors.Wrapf(err, "configuration #%d", i)
		}
	}
	return nil
}
