package valconfig

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
)

// RegisterQuery registers the configuration lookup under "/valconfig".
func RegisterQuery(qr valset.QueryRegister) {
	qr.RegisterQuery("/valconfig", QueryHandler{store: NewStore()})
}

// QueryHandler returns the JSON encoded configuration of the validator
// whose hex address is the path remainder, ie. "/valconfig/<hex>".
type QueryHandler struct {
	store *Store
}

var _ valset.QueryHandler = QueryHandler{}

// Query loads a single configuration.
func (q QueryHandler) Query(db valset.ReadOnlyKVStore, path string, data []byte) ([]byte, error) {
	addr, err := hex.DecodeString(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "address: %s", err)
	}
	c, err := q.store.Get(db, addr)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return raw, nil
}
