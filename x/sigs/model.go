package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/orm"
	"github.com/tendermint/tendermint/crypto"
)

// BucketName is where we store the nonces
const BucketName = "sigs"

// maxSequenceValue is the greatest nonce a javascript client can represent.
const maxSequenceValue = (1 << 53) - 1

// StdSignature is a signature of a transaction together with the key that
// produced it and the nonce it was made for.
type StdSignature struct {
	PubKey    crypto.PubKey `json:"pubkey"`
	Signature []byte        `json:"signature"`
	Sequence  int64         `json:"sequence"`
}

// Validate ensures the signature is complete.
func (s *StdSignature) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if s.PubKey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if len(s.Signature) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	return nil
}

// Address returns the account address of the signer.
func (s *StdSignature) Address() valset.Address {
	return valset.Address(s.PubKey.Address())
}

// Nonce keeps the next sequence number expected from a signer.
type Nonce struct {
	Sequence int64 `json:"sequence"`
}

var _ orm.Model = (*Nonce)(nil)

// Validate ensures the sequence is in range.
func (n *Nonce) Validate() error {
	if n.Sequence < 0 || n.Sequence > maxSequenceValue {
		return errors.Wrap(ErrInvalidSequence, "out of range")
	}
	return nil
}

// Marshal serializes the nonce.
func (n *Nonce) Marshal() ([]byte, error) {
	return proto.Marshal(&nonceWire{Sequence: n.Sequence})
}

// Unmarshal loads the nonce from its binary representation.
func (n *Nonce) Unmarshal(raw []byte) error {
	var w nonceWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	n.Sequence = w.Sequence
	return nil
}

// CheckAndIncrement implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (n *Nonce) CheckAndIncrement(expected int64) error {
	if n.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", n.Sequence, expected)
	}
	if n.Sequence+1 > maxSequenceValue {
		return errors.Wrap(ErrInvalidSequence, "sequence out of range")
	}
	n.Sequence++
	return nil
}

func loadNonce(db valset.ReadOnlyKVStore, b orm.Bucket, addr valset.Address) (*Nonce, error) {
	var n Nonce
	switch err := b.One(db, addr, &n); {
	case err == nil:
		return &n, nil
	case errors.ErrNotFound.Is(err):
		return &Nonce{}, nil
	default:
		return nil, err
	}
}

// NextSequence returns the nonce the next signature of given address must
// use.
func NextSequence(db valset.ReadOnlyKVStore, addr valset.Address) (int64, error) {
	n, err := loadNonce(db, orm.NewBucket(BucketName), addr)
	if err != nil {
		return 0, err
	}
	return n.Sequence, nil
}
