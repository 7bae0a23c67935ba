package sigs

import (
	"context"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigner contextKey = iota
)

// withSigner is a private method, as only this module
// can add a signer
func withSigner(ctx valset.Context, signer valset.Address) valset.Context {
	return context.WithValue(ctx, contextKeySigner, signer)
}

// Authenticate exposes the signer verified by VerifyTx.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// Signer returns who signed the current Context.
func (Authenticate) Signer(ctx valset.Context) (valset.Address, bool) {
	val, ok := ctx.Value(contextKeySigner).(valset.Address)
	return val, ok
}
