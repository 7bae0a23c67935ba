package validatorset

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/store"
	"github.com/iov-one/valset/valsettest"
	"github.com/iov-one/valset/valsettest/assert"
	"github.com/iov-one/valset/x/valconfig"
)

// genesis builds application state with given validators declared and
// admitted.
func genesis(t testing.TB, authority valset.Address, validators ...valset.Address) valset.Options {
	t.Helper()
	var configs []valconfig.GenesisConfig
	for _, v := range validators {
		configs = append(configs, valconfig.GenesisConfig{
			Address: v,
			Config: valconfig.Config{
				ConsensusPubKey:       valsettest.PubKeyBytes(valsettest.NewKey()),
				NetworkSigningPubKey:  []byte("sign"),
				NetworkIdentityPubKey: []byte("ident"),
			},
		})
	}
	raw := func(v interface{}) json.RawMessage {
		b, err := json.Marshal(v)
		assert.Nil(t, err)
		return b
	}
	return valset.Options{
		"conf": raw(map[string]interface{}{
			packageName: Configuration{Authority: authority},
		}),
		"validator_configs": raw(configs),
		optKey:              raw(GenesisState{Validators: validators}),
	}
}

func initialize(t testing.TB, opts valset.Options) valset.KVStore {
	t.Helper()
	db := store.MemStore()
	assert.Nil(t, valconfig.Initializer{}.FromGenesis(opts, db))
	init := Initializer{Controller: NewController(valconfig.NewStore())}
	assert.Nil(t, init.FromGenesis(opts, db))
	return db
}

func TestGenesis(t *testing.T) {
	authority := valsettest.RandomAddr(t)
	a := valsettest.RandomAddr(t)
	b := valsettest.RandomAddr(t)
	db := initialize(t, genesis(t, authority, a, b))

	vs, err := Validators(db)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(vs))
	assert.Equal(t, a, vs[0].Address)
	assert.Equal(t, b, vs[1].Address)

	event, err := LoadChangeEvent(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, vs, event.NewValidatorSet)

	err = Bootstrap(db, authority)
	assert.IsErr(t, ErrAlreadyInitialized, err)
}

func TestGenesisRequiresConfiguration(t *testing.T) {
	opts := genesis(t, valsettest.RandomAddr(t))
	delete(opts, "conf")
	db := store.MemStore()
	init := Initializer{Controller: NewController(valconfig.NewStore())}
	assert.IsErr(t, errors.ErrNotFound, init.FromGenesis(opts, db))
}

func TestGenesisRequiresDeclaredKeys(t *testing.T) {
	opts := genesis(t, valsettest.RandomAddr(t), valsettest.RandomAddr(t))
	delete(opts, "validator_configs")
	db := store.MemStore()
	init := Initializer{Controller: NewController(valconfig.NewStore())}
	assert.IsErr(t, ErrMissingConfiguration, init.FromGenesis(opts, db))
}

func TestReconfigureHandler(t *testing.T) {
	a := valsettest.RandomAddr(t)
	signer := valsettest.RandomAddr(t)

	cases := map[string]struct {
		signer   valset.Address
		msg      valset.Msg
		rotate   bool
		wantErr  *errors.Error
		wantData bool
	}{
		"nothing to change": {
			signer: signer,
			msg:    &ReconfigureMsg{},
		},
		"rotated key": {
			signer:   signer,
			msg:      &ReconfigureMsg{},
			rotate:   true,
			wantData: true,
		},
		"unsigned": {
			msg:     &ReconfigureMsg{},
			wantErr: errors.ErrUnauthorized,
		},
		"wrong message": {
			signer:  signer,
			msg:     &valconfig.SetConfigMsg{},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := initialize(t, genesis(t, valsettest.RandomAddr(t), a))
			if tc.rotate {
				conf, err := valconfig.NewStore().Get(db, a)
				assert.Nil(t, err)
				conf.NetworkIdentityPubKey = []byte("rotated")
				assert.Nil(t, valconfig.NewStore().Save(db, a, conf))
			}

			h := NewReconfigureHandler(&valsettest.Auth{Principal: tc.signer}, NewController(valconfig.NewStore()))
			res, err := h.Deliver(context.Background(), db, &valsettest.Tx{Msg: tc.msg})
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}

			vs, err := Validators(db)
			assert.Nil(t, err)
			if tc.wantData {
				assert.Equal(t, Fingerprint(vs), res.Data)
			} else {
				assert.Equal(t, 0, len(res.Data))
			}
		})
	}
}

func TestQueryHandler(t *testing.T) {
	a := valsettest.RandomAddr(t)
	db := initialize(t, genesis(t, valsettest.RandomAddr(t), a))
	vs, err := Validators(db)
	assert.Nil(t, err)

	asJSON := func(v interface{}) string {
		raw, err := json.Marshal(v)
		assert.Nil(t, err)
		return string(raw)
	}

	cases := map[string]struct {
		path    string
		want    string
		wantErr *errors.Error
	}{
		"roster": {
			path: "",
			want: asJSON(vs),
		},
		"is validator": {
			path: "/is/" + hex.EncodeToString(a),
			want: "true",
		},
		"is not validator": {
			path: "/is/" + hex.EncodeToString(valsettest.RandomAddr(t)),
			want: "false",
		},
		"malformed address": {
			path:    "/is/zz",
			wantErr: errors.ErrInput,
		},
		"genesis event": {
			path: "/events/0",
			want: asJSON(ChangeEvent{NewValidatorSet: vs}),
		},
		"missing event": {
			path:    fmt.Sprintf("/events/%d", 1),
			wantErr: errors.ErrNotFound,
		},
		"unknown path": {
			path:    "/unknown",
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := QueryHandler{}.Query(db, tc.path, nil)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, string(got))
			}
		})
	}
}
