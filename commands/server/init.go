package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/valset/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// InitCmd will add the application state to an existing tendermint genesis
// file, found in <home>/config/genesis.json unless overwritten by a flag.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	genFile := initFlags.String("genesis", filepath.Join(home, "config", "genesis.json"), "tendermint genesis file")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if _, err := os.Stat(*genFile); err != nil {
		return errors.Wrapf(errors.ErrNotFound, "genesis file %q, run tendermint init first", *genFile)
	}

	state, err := gen(initFlags.Args())
	if err != nil {
		return err
	}
	if err := addGenesisOptions(*genFile, state); err != nil {
		return err
	}
	logger.Info("App state written to the genesis file", "path", *genFile)
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, state json.RawMessage) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if _, ok := doc["app_state"]; ok {
		return errors.Wrapf(errors.ErrState, "app_state already set in %q", filename)
	}
	doc["app_state"] = state
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}
