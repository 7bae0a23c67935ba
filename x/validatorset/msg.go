package validatorset

import (
	"github.com/iov-one/valset"
)

const pathReconfigure = "validatorset/reconfigure"

// ReconfigureMsg requests refreshing the roster with the keys validators
// declared since the last reconfiguration.
type ReconfigureMsg struct{}

var _ valset.Msg = (*ReconfigureMsg)(nil)

// Path returns the routing path for this message
func (*ReconfigureMsg) Path() string {
	return pathReconfigure
}

// Validate always succeeds, the message carries no data.
func (*ReconfigureMsg) Validate() error {
	return nil
}
