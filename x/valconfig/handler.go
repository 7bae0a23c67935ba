package valconfig

import (
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r valset.Registry, auth x.Authenticator, s *Store) {
	r.Handle(pathSetConfig, NewSetConfigHandler(auth, s))
}

// SetConfigHandler lets a validator declare its own keys.
type SetConfigHandler struct {
	auth  x.Authenticator
	store *Store
}

var _ valset.Handler = SetConfigHandler{}

// NewSetConfigHandler creates a handler for SetConfigMsg
func NewSetConfigHandler(auth x.Authenticator, s *Store) SetConfigHandler {
	return SetConfigHandler{auth: auth, store: s}
}

// Deliver stores the declared configuration if the validator signed the
// transaction.
func (h SetConfigHandler) Deliver(ctx valset.Context, db valset.KVStore, tx valset.Tx) (*valset.DeliverResult, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	msg, ok := rmsg.(*SetConfigMsg)
	if !ok {
		return nil, errors.WithType(errors.ErrMsg, rmsg)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if !x.HasAddress(ctx, h.auth, msg.Validator) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "only %s can declare its keys", msg.Validator)
	}
	if err := h.store.Save(db, msg.Validator, &msg.Config); err != nil {
		return nil, err
	}
	valset.GetLogger(ctx).Debug("validator configuration declared", "validator", msg.Validator.String())
	return &valset.DeliverResult{}, nil
}
