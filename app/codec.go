package app

import (
	"github.com/iov-one/valset"
	"github.com/iov-one/valset/x/valconfig"
	"github.com/iov-one/valset/x/validatorset"
	amino "github.com/tendermint/go-amino"
	cryptoamino "github.com/tendermint/tendermint/crypto/encoding/amino"
)

var cdc = MakeCodec()

// MakeCodec returns a codec able to serialize transactions with messages of
// all extensions used by this application.
func MakeCodec() *amino.Codec {
	c := amino.NewCodec()
	cryptoamino.RegisterAmino(c)
	c.RegisterInterface((*valset.Msg)(nil), nil)
	valconfig.RegisterCodec(c)
	validatorset.RegisterCodec(c)
	c.Seal()
	return c
}
