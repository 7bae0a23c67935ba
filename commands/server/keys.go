package server

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	"github.com/tendermint/tendermint/crypto/ed25519"
)

// DefaultDerivationPath is the SLIP-10 path of the first account.
const DefaultDerivationPath = "m/44'/234'/0'"

// DeriveKey returns the ed25519 key at given path of the seed.
func DeriveKey(seed []byte, path string) (ed25519.PrivKeyEd25519, error) {
	var key ed25519.PrivKeyEd25519
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return key, errors.Wrapf(errors.ErrInput, "derive %q: %s", path, err)
	}
	pub, err := k.PublicKey()
	if err != nil {
		return key, errors.Wrapf(errors.ErrInput, "public key: %s", err)
	}
	copy(key[:32], k.Key)
	copy(key[32:], pub)
	return key, nil
}

// KeysCmd derives an account key from a hex encoded seed and prints the
// account address together with the public key, usable as a consensus key.
func KeysCmd(out io.Writer, args []string) error {
	keysFlags := flag.NewFlagSet("keys", flag.ContinueOnError)
	path := keysFlags.String("path", DefaultDerivationPath, "derivation path")
	hexSeed := keysFlags.String("seed", "", "hex encoded seed, at least 16 bytes")
	hrp := keysFlags.String("hrp", "valset", "human readable prefix of the bech32 address")
	if err := keysFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	seed, err := hex.DecodeString(*hexSeed)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "seed: %s", err)
	}
	if len(seed) < 16 {
		return errors.Wrap(errors.ErrInput, "seed too short")
	}
	key, err := DeriveKey(seed, *path)
	if err != nil {
		return err
	}
	pub := key.PubKey().(ed25519.PubKeyEd25519)
	addr := valset.Address(pub.Address())
	b32, err := addr.Bech32String(*hrp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "address: %s\nbech32:  %s\npubkey:  %X\n", addr, b32, pub[:])
	return err
}
