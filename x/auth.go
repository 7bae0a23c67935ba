// Package x contains the pieces shared by all extensions living in its
// subpackages.
package x

import (
	"github.com/iov-one/valset"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding x/sigs for all extensions.
type Authenticator interface {
	// Signer returns the principal that authorized the current
	// transaction, if any.
	Signer(valset.Context) (valset.Address, bool)
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// Signer returns the first signer found.
func (m MultiAuth) Signer(ctx valset.Context) (valset.Address, bool) {
	for _, impl := range m.impls {
		if addr, ok := impl.Signer(ctx); ok {
			return addr, true
		}
	}
	return nil, false
}

// HasAddress returns true if given address authorized the current
// transaction.
func HasAddress(ctx valset.Context, auth Authenticator, addr valset.Address) bool {
	signer, ok := auth.Signer(ctx)
	return ok && signer.Equals(addr)
}
