package app

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/valsettest"
	"github.com/iov-one/valset/x/valconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenInitOptions(t *testing.T) {
	dir, err := ioutil.TempDir("", "valset-init")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	authority := valsettest.RandomAddr(t)
	validator := genesisConfig(newAccount())
	raw, err := json.Marshal([]valconfig.GenesisConfig{validator})
	require.NoError(t, err)
	file := filepath.Join(dir, "validators.json")
	require.NoError(t, ioutil.WriteFile(file, raw, 0600))

	state, err := GenInitOptions([]string{"-authority", authority.String(), "-validators", file})
	require.NoError(t, err)

	var got GenesisState
	require.NoError(t, json.Unmarshal(state, &got))
	assert.Equal(t, NewGenesisState(authority, []valconfig.GenesisConfig{validator}), got)

	_, err = GenInitOptions([]string{"-authority", "zz"})
	assert.True(t, errors.ErrInput.Is(err))

	invalid := validator
	invalid.Config.ConsensusPubKey = []byte("short")
	raw, err = json.Marshal([]valconfig.GenesisConfig{invalid})
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(file, raw, 0600))
	_, err = GenInitOptions([]string{"-authority", authority.String(), "-validators", file})
	assert.True(t, errors.ErrInput.Is(err))
}
