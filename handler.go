package valset

import (
	"encoding/json"
)

// Msg is a message processed by a Handler. Path is used by the router
// to find the Handler.
type Msg interface {
	// Path returns the routing path for this message
	Path() string

	// Validate performs a sanity check of the content, without
	// looking at the state.
	Validate() error
}

// Tx represent the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// Handler is a core engine that can process a few specific messages.
//
// Every Deliver call is executed on its own cache wrap of the state,
// so a returned error discards all writes done by the handler.
type Handler interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// DeliverResult captures any non-error abci result
// to make sure people use error for error cases
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(path string, h Handler)
}

// QueryHandler returns the serialized answer to a query on given path
// remainder.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, path string, data []byte) ([]byte, error)
}

// QueryRegister is the setup side of the query router.
type QueryRegister interface {
	RegisterQuery(path string, h QueryHandler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers lets you initialize many extensions with one function.
// Initializers run in the given order, later ones may rely on state
// written by earlier ones.
func ChainInitializers(inits ...Initializer) Initializer {
	return chainInitializer(inits)
}

type chainInitializer []Initializer

// FromGenesis will pass opts to all Initializers in the list,
// aborts immediately if one returns an error.
func (c chainInitializer) FromGenesis(opts Options, kv KVStore) error {
	for _, initializer := range c {
		if err := initializer.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
