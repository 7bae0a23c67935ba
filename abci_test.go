package valset_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	pkerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateErrorResult(t *testing.T) {
	cases := map[string]struct {
		err   error
		debug bool
		log   string
		code  uint32
	}{
		"stdlib error is redacted": {
			err:  fmt.Errorf("base"),
			log:  "internal error",
			code: 1,
		},
		"stdlib error in debug mode": {
			err:   pkerr.New("dave"),
			debug: true,
			log:   "dave",
			code:  1,
		},
		"registered error": {
			err:  errors.Wrap(errors.ErrUnauthorized, "nonce"),
			log:  "nonce: unauthorized",
			code: errors.ErrUnauthorized.ABCICode(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			dres := valset.DeliverTxError(tc.err, tc.debug)
			assert.True(t, dres.IsErr())
			assert.True(t, strings.HasPrefix(dres.Log, "cannot deliver tx: "+tc.log))
			assert.Equal(t, tc.code, dres.Code)

			cres := valset.CheckTxError(tc.err, tc.debug)
			assert.True(t, cres.IsErr())
			assert.True(t, strings.HasPrefix(cres.Log, "cannot check tx: "+tc.log))
			assert.Equal(t, tc.code, cres.Code)

			qres := valset.QueryError(tc.err, tc.debug)
			assert.True(t, qres.IsErr())
			assert.Equal(t, tc.code, qres.Code)
		})
	}
}

func TestCreateResults(t *testing.T) {
	d, msg := []byte{1, 3, 4}, "got it"
	dres := valset.DeliverOrError(&valset.DeliverResult{Data: d, Log: msg}, nil, false)
	assert.False(t, dres.IsErr())
	assert.EqualValues(t, d, dres.Data)
	assert.Equal(t, msg, dres.Log)

	cres := valset.CheckOrError(nil, errors.ErrEmpty, false)
	assert.True(t, cres.IsErr())
	assert.Equal(t, errors.ErrEmpty.ABCICode(), cres.Code)
}
