package valset

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/valset/errors"
)

// AddressLength is the size of every address in bytes.
const AddressLength = 20

// Address identifies an account, a validator or a privileged system
// location. It is a 20 byte digest.
type Address []byte

// NewAddress derives an address from arbitrary data, usually a public key.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// ParseAddress accepts the same encodings as the JSON form: plain hex,
// "hex:<hex>" or "bech32:<bech32>".
func ParseAddress(enc string) (Address, error) {
	format, payload := "hex", enc
	if i := strings.IndexByte(enc, ':'); i >= 0 {
		format, payload = enc[:i], enc[i+1:]
	}
	var raw []byte
	switch format {
	case "hex":
		b, err := hex.DecodeString(payload)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "hex: %s", err)
		}
		raw = b
	case "bech32":
		_, data, err := bech32.Decode(payload)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32: %s", err)
		}
		if raw, err = bech32.ConvertBits(data, 5, 8, false); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32 bits: %s", err)
		}
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown address format %q", format)
	}
	addr := Address(raw)
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// MarshalJSON writes upper case hex instead of base64.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON reads any form ParseAddress accepts. An empty string
// decodes to a nil address.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(errors.ErrInput, "address must be a json string")
	}
	if enc == "" || enc == "hex:" || enc == "bech32:" {
		*a = nil
		return nil
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Bech32String encodes the address with the given human readable prefix.
func (a Address) Bech32String(hrp string) (string, error) {
	conv, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return bech32.Encode(hrp, conv)
}

func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address of %d bytes", len(a))
	}
	return nil
}
