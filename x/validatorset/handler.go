package validatorset

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/x"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r valset.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(pathReconfigure, NewReconfigureHandler(auth, ctrl))
}

// RegisterQuery registers the roster queries under "/validatorset".
func RegisterQuery(qr valset.QueryRegister) {
	qr.RegisterQuery("/"+packageName, QueryHandler{})
}

// ReconfigureHandler refreshes the roster on request of any signer.
type ReconfigureHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ valset.Handler = ReconfigureHandler{}

// NewReconfigureHandler creates a handler for ReconfigureMsg
func NewReconfigureHandler(auth x.Authenticator, ctrl *Controller) ReconfigureHandler {
	return ReconfigureHandler{auth: auth, ctrl: ctrl}
}

// Deliver runs the reconfiguration. When the roster changed, the result
// data is the fingerprint of the new roster.
func (h ReconfigureHandler) Deliver(ctx valset.Context, db valset.KVStore, tx valset.Tx) (*valset.DeliverResult, error) {
	rmsg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if _, ok := rmsg.(*ReconfigureMsg); !ok {
		return nil, errors.WithType(errors.ErrMsg, rmsg)
	}
	if _, ok := h.auth.Signer(ctx); !ok {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	event, err := h.ctrl.Reconfigure(ctx, db)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return &valset.DeliverResult{Log: "validator set unchanged"}, nil
	}
	return &valset.DeliverResult{
		Data: Fingerprint(event.NewValidatorSet),
		Log:  "validator set changed",
	}, nil
}

// QueryHandler answers roster queries with JSON documents.
//
//	""               the whole roster
//	"/is/<hex>"      true if the address is a validator
//	"/events/<seq>"  a single change event
type QueryHandler struct{}

var _ valset.QueryHandler = QueryHandler{}

// Query dispatches on the path remainder.
func (QueryHandler) Query(db valset.ReadOnlyKVStore, path string, data []byte) ([]byte, error) {
	var res interface{}
	switch {
	case path == "" || path == "/":
		vs, err := Validators(db)
		if err != nil {
			return nil, err
		}
		res = vs
	case strings.HasPrefix(path, "/is/"):
		addr, err := hex.DecodeString(strings.TrimPrefix(path, "/is/"))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "address: %s", err)
		}
		ok, err := IsValidator(db, addr)
		if err != nil {
			return nil, err
		}
		res = ok
	case strings.HasPrefix(path, "/events/"):
		seq, err := strconv.ParseUint(strings.TrimPrefix(path, "/events/"), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "sequence: %s", err)
		}
		e, err := LoadChangeEvent(db, seq)
		if err != nil {
			return nil, err
		}
		res = e
	default:
		return nil, errors.Wrapf(errors.ErrNotFound, "path %q", path)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return raw, nil
}
