package app

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"path/filepath"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/store/iavl"
	"github.com/iov-one/valset/x"
	"github.com/iov-one/valset/x/sigs"
	"github.com/iov-one/valset/x/valconfig"
	"github.com/iov-one/valset/x/validatorset"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is returned by abci.Info.
const Name = "valset"

// Stack returns the transaction handler, the query router and the genesis
// initializer of all extensions used by this application.
func Stack() (valset.Handler, valset.QueryRouter, valset.Initializer) {
	auth := x.ChainAuth(sigs.Authenticate{})
	configs := valconfig.NewStore()
	ctrl := validatorset.NewController(configs)

	r := NewRouter()
	valconfig.RegisterRoutes(r, auth, configs)
	validatorset.RegisterRoutes(r, auth, ctrl)

	qr := valset.NewQueryRouter()
	valconfig.RegisterQuery(qr)
	validatorset.RegisterQuery(qr)

	// Validators must declare their keys before they can be admitted.
	init := valset.ChainInitializers(
		valconfig.Initializer{},
		validatorset.Initializer{Controller: ctrl},
	)
	return r, qr, init
}

// New returns the application using all extensions on top of given store.
func New(store valset.CommitKVStore, logger log.Logger, debug bool) (*Application, error) {
	handler, queries, init := Stack()
	return NewApplication(Name, store, handler, queries, init, logger, debug)
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	store := iavl.NewCommitStore(filepath.Join(home, "data"), Name)
	return New(store, logger.With("module", "app"), debug)
}

// GenInitOptions reads the authority address and the genesis validator
// declarations and returns the application state.
//
//	-authority <hex address> [-validators <json file>]
func GenInitOptions(args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	authority := fs.String("authority", "", "hex address of the validator set authority")
	validatorsFile := fs.String("validators", "", "JSON file with a list of {address, config} declarations")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}

	addr, err := valset.ParseAddress(*authority)
	if err != nil {
		return nil, errors.Wrap(err, "authority")
	}

	var validators []valconfig.GenesisConfig
	if *validatorsFile != "" {
		raw, err := ioutil.ReadFile(*validatorsFile)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		if err := json.Unmarshal(raw, &validators); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "validators: %s", err)
		}
	}
	return NewGenesisState(addr, validators).MarshalAppState()
}
