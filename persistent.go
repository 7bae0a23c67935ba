package valset

// Marshaller produces the binary form of a model, message or event.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent can also restore itself, so it is usually implemented on a
// pointer receiver.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Validater checks the internal consistency of a value.
type Validater interface {
	Validate() error
}
