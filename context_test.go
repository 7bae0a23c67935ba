package valset

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextValuesAreSetOnce(t *testing.T) {
	bg := context.Background()

	logger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, logger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, logger, GetLogger(ctx))

	_, ok := GetHeight(ctx)
	assert.False(t, ok)
	ctx = WithHeight(ctx, 12)
	h, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(12), h)
	assert.Panics(t, func() { WithHeight(ctx, 13) })

	// Extra log fields do not touch the other values.
	withInfo := WithLogInfo(ctx, "module", "validatorset")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(withInfo))
	h, _ = GetHeight(withInfo)
	assert.Equal(t, int64(12), h)

	assert.Panics(t, func() { GetChainID(ctx) })
	ctx = WithChainID(ctx, "valset-test")
	assert.Equal(t, "valset-test", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "valset-test") })
	assert.Panics(t, func() { WithChainID(bg, "x;y") })
}

func TestIsValidChainID(t *testing.T) {
	cases := map[string]bool{
		"":                                false,
		"short":                           false,
		"valset":                          true,
		"test-chain_01":                   true,
		"semi;colon":                      false,
		"a-chain-id-that-is-far-too-long": false,
	}
	for id, want := range cases {
		assert.Equal(t, want, IsValidChainID(id), id)
	}
}
