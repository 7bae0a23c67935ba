package sigs

import (
	"github.com/iov-one/valset/errors"
)

var (
	// ErrInvalidSequence is returned when the signature nonce does not
	// match the one expected for the signer.
	ErrInvalidSequence = errors.Register(120, "invalid sequence number")
)
