/*
Package valsettest provides helpers for testing code built on top of the
valset interfaces: mock authentication, mock transactions and key
material.
*/
package valsettest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/valset"
	"github.com/tendermint/tendermint/crypto/ed25519"
)

// Auth is a mock implementing x.Authenticator interface.
//
// It authenticates a single signer, nil means nobody signed.
type Auth struct {
	Principal valset.Address
}

// Signer returns the configured principal.
func (a *Auth) Signer(valset.Context) (valset.Address, bool) {
	return a.Principal, a.Principal != nil
}

// Tx represents a valset transaction carrying a message.
type Tx struct {
	Msg valset.Msg
}

var _ valset.Tx = (*Tx)(nil)

// GetMsg returns the message or an error if none is set.
func (tx *Tx) GetMsg() (valset.Msg, error) {
	return tx.Msg, nil
}

// RandomAddr returns a valid address of random content.
func RandomAddr(t testing.TB) valset.Address {
	t.Helper()
	raw := make([]byte, valset.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot read random data: %s", err)
	}
	return raw
}

// NewKey returns a new ed25519 private key. Use the public key bytes as a
// consensus key and the address as the validator account.
func NewKey() ed25519.PrivKeyEd25519 {
	return ed25519.GenPrivKey()
}

// PubKeyBytes returns the raw 32 bytes of the ed25519 public key.
func PubKeyBytes(key ed25519.PrivKeyEd25519) []byte {
	pub := key.PubKey().(ed25519.PubKeyEd25519)
	return pub[:]
}

// KeyAddress returns the account address controlled by given key.
func KeyAddress(key ed25519.PrivKeyEd25519) valset.Address {
	return valset.Address(key.PubKey().Address())
}
