package sigs

import (
	"github.com/iov-one/valset"
)

// SignedTx represents a transaction that carries a signature.
type SignedTx interface {
	valset.Tx

	// GetSignBytes returns the canonical byte representation of the
	// message. The signature is computed over these bytes.
	GetSignBytes() ([]byte, error)

	// GetSignature returns the signature of the transaction, nil if
	// unsigned.
	GetSignature() *StdSignature
}
