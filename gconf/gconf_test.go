package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/store"
	"github.com/iov-one/valset/valsettest/assert"
)

type myConfig struct {
	Number int64          `json:"number"`
	Owner  valset.Address `json:"owner"`
}

func (c *myConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *myConfig) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *myConfig) Validate() error {
	if c.Number < 0 {
		return errors.Wrap(errors.ErrInput, "negative number")
	}
	return c.Owner.Validate()
}

func TestSaveLoad(t *testing.T) {
	owner := valset.NewAddress([]byte("owner"))

	cases := map[string]struct {
		conf        *myConfig
		wantSaveErr *errors.Error
	}{
		"valid configuration": {
			conf: &myConfig{Number: 7, Owner: owner},
		},
		"invalid configuration cannot be saved": {
			conf:        &myConfig{Number: -1, Owner: owner},
			wantSaveErr: errors.ErrInput,
		},
		"invalid address cannot be saved": {
			conf:        &myConfig{Number: 1, Owner: valset.Address("short")},
			wantSaveErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Save(db, "mypkg", tc.conf)
			assert.IsErr(t, tc.wantSaveErr, err)
			if tc.wantSaveErr != nil {
				return
			}

			var got myConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, *tc.conf, got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	var got myConfig
	assert.IsErr(t, errors.ErrNotFound, Load(db, "mypkg", &got))
}

func TestInitConfig(t *testing.T) {
	owner := valset.NewAddress([]byte("owner"))
	rawOwner, err := json.Marshal(owner)
	assert.Nil(t, err)

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"configuration present": {
			genesis: `{"conf": {"mypkg": {"number": 3, "owner": ` + string(rawOwner) + `}}}`,
		},
		"configuration missing": {
			genesis: `{"conf": {"otherpkg": {}}}`,
			wantErr: errors.ErrNotFound,
		},
		"configuration invalid": {
			genesis: `{"conf": {"mypkg": {"number": -4, "owner": ` + string(rawOwner) + `}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts valset.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			var conf myConfig
			assert.IsErr(t, tc.wantErr, InitConfig(db, opts, "mypkg", &conf))
			if tc.wantErr != nil {
				return
			}

			var got myConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, myConfig{Number: 3, Owner: owner}, got)
		})
	}
}
