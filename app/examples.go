package app

import (
	"github.com/iov-one/valset/commands"
	"github.com/iov-one/valset/x/sigs"
	"github.com/iov-one/valset/x/valconfig"
	"github.com/iov-one/valset/x/validatorset"
	"github.com/tendermint/tendermint/crypto/ed25519"
)

// exampleChainID is used to sign example transactions.
const exampleChainID = "example-chain"

// Examples returns transactions of every message type, signed with a key
// derived from a fixed secret, so the encodings are stable.
func Examples() ([]commands.Example, error) {
	key := ed25519.GenPrivKeyFromSecret([]byte("valset examples"))
	pub := key.PubKey().(ed25519.PubKeyEd25519)

	setConfig := &Tx{Msg: &valconfig.SetConfigMsg{
		Validator: key.PubKey().Address().Bytes(),
		Config: valconfig.Config{
			ConsensusPubKey:       pub[:],
			NetworkSigningPubKey:  []byte("network signing key"),
			NetworkIdentityPubKey: []byte("network identity key"),
		},
	}}
	reconfigure := &Tx{Msg: &validatorset.ReconfigureMsg{}}

	var seq int64
	for _, tx := range []*Tx{setConfig, reconfigure} {
		sig, err := sigs.SignTx(key, tx, exampleChainID, seq)
		if err != nil {
			return nil, err
		}
		tx.Signature = sig
		seq++
	}

	return []commands.Example{
		{Filename: "set_config_tx", Obj: setConfig},
		{Filename: "reconfigure_tx", Obj: reconfigure},
	}, nil
}
