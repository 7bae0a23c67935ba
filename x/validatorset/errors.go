package validatorset

import (
	"github.com/iov-one/valset/errors"
)

// x/validatorset reserves 150 ~ 159.
var (
	// ErrAuthorization is returned when the registry is created by anyone
	// but the configured authority.
	ErrAuthorization = errors.Register(150, "not the validator set authority")

	// ErrAlreadyInitialized is returned when the registry is created
	// a second time.
	ErrAlreadyInitialized = errors.Register(151, "validator set already initialized")

	// ErrNotInitialized is returned by all operations requiring the
	// registry before it was created.
	ErrNotInitialized = errors.Register(152, "validator set not initialized")

	// ErrOutOfRange is returned when a validator is accessed by a position
	// outside of the roster.
	ErrOutOfRange = errors.Register(153, "validator index out of range")

	// ErrMissingConfiguration is returned when a validator did not declare
	// its keys.
	ErrMissingConfiguration = errors.Register(154, "missing validator configuration")
)
