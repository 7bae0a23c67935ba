package app

import (
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/x/sigs"
)

// Tx is the transaction format of this application. It carries a single
// message and an optional signature.
type Tx struct {
	Msg       valset.Msg         `json:"msg"`
	Signature *sigs.StdSignature `json:"signature"`
}

var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the message or an error if none is set.
func (tx *Tx) GetMsg() (valset.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message")
	}
	return tx.Msg, nil
}

// GetSignBytes returns the serialized message. The signature does not sign
// itself.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	bz, err := cdc.MarshalBinaryBare(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return bz, nil
}

// GetSignature returns the signature or nil.
func (tx *Tx) GetSignature() *sigs.StdSignature {
	return tx.Signature
}

// Marshal serializes the transaction.
func (tx *Tx) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(tx)
}

// Unmarshal loads the transaction from its binary representation.
func (tx *Tx) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, tx)
}

// DecodeTx parses a serialized transaction.
func DecodeTx(raw []byte) (tx *Tx, err error) {
	defer errors.Recover(&err)
	var t Tx
	if err := t.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &t, nil
}
