package validatorset

import (
	"context"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/gconf"
)

const optKey = "validatorset"

// GenesisState lists the validators admitted when the chain starts.
type GenesisState struct {
	Validators []valset.Address `json:"validators"`
}

// Initializer creates the registry from the genesis file. It must run
// after the valconfig initializer, as every listed validator needs its keys
// declared.
type Initializer struct {
	Controller *Controller
}

var _ valset.Initializer = Initializer{}

// FromGenesis saves the configuration, bootstraps the registry as the
// authority, admits all listed validators and reconfigures once, so that
// the first change event describes the genesis roster.
func (i Initializer) FromGenesis(opts valset.Options, db valset.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, packageName, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	var state GenesisState
	if err := opts.ReadOptions(optKey, &state); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot read %q: %s", optKey, err)
	}
	if err := Bootstrap(db, conf.Authority); err != nil {
		return errors.Wrap(err, "bootstrap")
	}
	ctx := context.Background()
	for n, addr := range state.Validators {
		if err := i.Controller.AddValidator(ctx, db, addr); err != nil {
			return errors.Wrapf(err, "validator #%d", n)
		}
	}
	if _, err := i.Controller.Reconfigure(ctx, db); err != nil {
		return errors.Wrap(err, "reconfigure")
	}
	return nil
}
