package validatorset

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/iov-one/valset/valsettest/assert"
)

func TestChangeEventEncoding(t *testing.T) {
	info := ValidatorInfo{
		Address:               bytes.Repeat([]byte{0x01}, 20),
		ConsensusPubKey:       bytes.Repeat([]byte{0x02}, 32),
		ConsensusVotingPower:  1,
		NetworkSigningPubKey:  []byte("sig"),
		NetworkIdentityPubKey: []byte("id"),
	}
	infoHex := "0a14" + strings.Repeat("01", 20) +
		"1220" + strings.Repeat("02", 32) +
		"1801" +
		"2203736967" +
		"2a026964"

	raw, err := info.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, infoHex, hex.EncodeToString(raw))

	event := ChangeEvent{NewValidatorSet: []ValidatorInfo{info}}
	raw, err = event.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, "0a43"+infoHex, hex.EncodeToString(raw))

	var back ChangeEvent
	assert.Nil(t, back.Unmarshal(raw))
	assert.Equal(t, event, back)

	// Zero power is omitted from the entry.
	info.ConsensusVotingPower = 0
	raw, err = info.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, strings.Replace(infoHex, "1801", "", 1), hex.EncodeToString(raw))
}
