package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
)

var isPath = regexp.MustCompile(`^[a-z_]+/[a-z_]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]valset.Handler
}

var _ valset.Registry = (*Router)(nil)
var _ valset.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]valset.Handler, 4),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered.
func (r *Router) Handle(path string, h valset.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Deliver dispatches the transaction to the handler registered for its
// message path.
func (r *Router) Deliver(ctx valset.Context, db valset.KVStore, tx valset.Tx) (*valset.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid msg")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", msg.Path())
	}
	return h.Deliver(ctx, db, tx)
}
