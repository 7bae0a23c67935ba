package valset_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/store"
	"github.com/iov-one/valset/valsettest/assert"
)

func TestReadOptions(t *testing.T) {
	var opts valset.Options
	assert.Nil(t, json.Unmarshal([]byte(`{"conf": {"authority": "01"}, "bad": "text"}`), &opts))

	var conf struct{ Authority string }
	assert.Nil(t, opts.ReadOptions("conf", &conf))
	assert.Equal(t, "01", conf.Authority)

	// Missing keys leave the destination untouched.
	var missing struct{ Authority string }
	assert.Nil(t, opts.ReadOptions("missing", &missing))
	assert.Equal(t, "", missing.Authority)

	if err := opts.ReadOptions("bad", &conf); err == nil {
		t.Fatal("want a decoding error")
	}
}

type recordingInit struct {
	name string
	log  *[]string
	err  error
}

func (r recordingInit) FromGenesis(opts valset.Options, db valset.KVStore) error {
	*r.log = append(*r.log, r.name)
	return r.err
}

func TestChainInitializersStopOnError(t *testing.T) {
	var log []string
	init := valset.ChainInitializers(
		recordingInit{name: "a", log: &log},
		recordingInit{name: "b", log: &log, err: errors.ErrState},
		recordingInit{name: "c", log: &log},
	)
	err := init.FromGenesis(valset.Options{}, store.MemStore())
	assert.IsErr(t, errors.ErrState, err)
	assert.Equal(t, []string{"a", "b"}, log)
}
