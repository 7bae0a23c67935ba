package valconfig

import (
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
)

const pathSetConfig = "valconfig/set"

// SetConfigMsg declares or rotates the keys of a validator.
type SetConfigMsg struct {
	Validator valset.Address `json:"validator"`
	Config    Config         `json:"config"`
}

var _ valset.Msg = (*SetConfigMsg)(nil)

// Path returns the routing path for this message
func (*SetConfigMsg) Path() string {
	return pathSetConfig
}

// Validate checks the message content.
func (m *SetConfigMsg) Validate() error {
	return errors.Append(
		errors.Wrap(m.Validator.Validate(), "validator"),
		errors.Wrap(m.Config.Validate(), "config"),
	)
}
