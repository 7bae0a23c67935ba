package valconfig

import (
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/orm"
	"github.com/tendermint/tendermint/crypto/ed25519"
)

// maxNetworkKeyLength limits the size of the opaque network keys.
const maxNetworkKeyLength = 256

// Config is the set of keys declared by a single validator.
type Config struct {
	ConsensusPubKey       []byte `json:"consensus_pubkey"`
	NetworkSigningPubKey  []byte `json:"network_signing_pubkey"`
	NetworkIdentityPubKey []byte `json:"network_identity_pubkey"`
}

var _ orm.Model = (*Config)(nil)

// Validate ensures the consensus key is an ed25519 public key and both
// network keys are present.
func (c *Config) Validate() error {
	if len(c.ConsensusPubKey) != ed25519.PubKeyEd25519Size {
		return errors.Wrapf(errors.ErrInput, "consensus key must be %d bytes", ed25519.PubKeyEd25519Size)
	}
	return errors.Append(
		validateNetworkKey("network signing key", c.NetworkSigningPubKey),
		validateNetworkKey("network identity key", c.NetworkIdentityPubKey),
	)
}

func validateNetworkKey(name string, key []byte) error {
	switch n := len(key); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, name)
	case n > maxNetworkKeyLength:
		return errors.Wrapf(errors.ErrInput, "%s too long", name)
	}
	return nil
}

// GetConsensusPubKey returns the consensus signing key.
func (c *Config) GetConsensusPubKey() []byte {
	return c.ConsensusPubKey
}

// GetNetworkSigningPubKey returns the network signing key.
func (c *Config) GetNetworkSigningPubKey() []byte {
	return c.NetworkSigningPubKey
}

// GetNetworkIdentityPubKey returns the network identity key.
func (c *Config) GetNetworkIdentityPubKey() []byte {
	return c.NetworkIdentityPubKey
}

// Store gives access to the declared validator configurations. It is
// stateless, all data lives in the KVStore given to each call.
type Store struct {
	bucket orm.Bucket
}

// NewStore returns a store using the extension bucket.
func NewStore() *Store {
	return &Store{bucket: orm.NewBucket("valconfig")}
}

// Exists returns true if given validator declared a configuration.
func (s *Store) Exists(db valset.ReadOnlyKVStore, validator valset.Address) (bool, error) {
	return s.bucket.Has(db, validator)
}

// Get returns the configuration declared by given validator.
// ErrNotFound is returned if there is none.
func (s *Store) Get(db valset.ReadOnlyKVStore, validator valset.Address) (*Config, error) {
	var c Config
	if err := s.bucket.One(db, validator, &c); err != nil {
		return nil, errors.Wrapf(err, "validator %s", validator)
	}
	return &c, nil
}

// Save declares or replaces the configuration of given validator.
func (s *Store) Save(db valset.KVStore, validator valset.Address, c *Config) error {
	if err := validator.Validate(); err != nil {
		return errors.Wrap(err, "validator")
	}
	return s.bucket.Put(db, validator, c)
}
