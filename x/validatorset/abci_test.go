package validatorset

import (
	"testing"

	"github.com/iov-one/valset/valsettest"
	"github.com/iov-one/valset/valsettest/assert"
	abci "github.com/tendermint/tendermint/abci/types"
)

func TestValidatorUpdates(t *testing.T) {
	k1 := valsettest.PubKeyBytes(valsettest.NewKey())
	k2 := valsettest.PubKeyBytes(valsettest.NewKey())
	k3 := valsettest.PubKeyBytes(valsettest.NewKey())
	entry := func(key []byte, power uint64) ValidatorInfo {
		return ValidatorInfo{
			Address:              valsettest.RandomAddr(t),
			ConsensusPubKey:      key,
			ConsensusVotingPower: power,
		}
	}

	cases := map[string]struct {
		prev []ValidatorInfo
		next []ValidatorInfo
		want []abci.ValidatorUpdate
	}{
		"genesis": {
			next: []ValidatorInfo{entry(k1, 1), entry(k2, 1)},
			want: []abci.ValidatorUpdate{
				abci.Ed25519ValidatorUpdate(k1, 1),
				abci.Ed25519ValidatorUpdate(k2, 1),
			},
		},
		"no change": {
			prev: []ValidatorInfo{entry(k1, 1)},
			next: []ValidatorInfo{entry(k1, 1)},
			want: nil,
		},
		"key rotation": {
			prev: []ValidatorInfo{entry(k1, 1), entry(k2, 1)},
			next: []ValidatorInfo{entry(k1, 1), entry(k3, 1)},
			want: []abci.ValidatorUpdate{
				abci.Ed25519ValidatorUpdate(k3, 1),
				abci.Ed25519ValidatorUpdate(k2, 0),
			},
		},
		"shared key sums power": {
			prev: []ValidatorInfo{entry(k1, 1)},
			next: []ValidatorInfo{entry(k1, 1), entry(k1, 1)},
			want: []abci.ValidatorUpdate{
				abci.Ed25519ValidatorUpdate(k1, 2),
			},
		},
		"entries without keys are ignored": {
			prev: nil,
			next: []ValidatorInfo{entry(nil, 1), entry(k2, 1)},
			want: []abci.ValidatorUpdate{
				abci.Ed25519ValidatorUpdate(k2, 1),
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidatorUpdates(tc.prev, tc.next))
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := []ValidatorInfo{{Address: valsettest.RandomAddr(t), ConsensusVotingPower: 1}}
	b := []ValidatorInfo{{Address: valsettest.RandomAddr(t), ConsensusVotingPower: 1}}

	assert.Equal(t, 32, len(Fingerprint(a)))
	assert.Equal(t, Fingerprint(a), Fingerprint(snapshot(a)))
	if string(Fingerprint(a)) == string(Fingerprint(b)) {
		t.Fatal("different rosters share a fingerprint")
	}
}
