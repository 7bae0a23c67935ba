package validatorset

import (
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/ed25519"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hash identifying the content of a roster.
func Fingerprint(vs []ValidatorInfo) []byte {
	e := ChangeEvent{NewValidatorSet: vs}
	raw, err := e.Marshal()
	if err != nil {
		// Plain structs with byte and integer fields always serialize.
		panic(err)
	}
	h := blake2b.Sum256(raw)
	return h[:]
}

// ValidatorUpdates computes the tendermint updates required to move from
// the prev roster to the next one. Entries without a valid ed25519
// consensus key are ignored. Power of entries sharing a key is summed.
// Keys missing from next are removed by setting their power to zero.
func ValidatorUpdates(prev, next []ValidatorInfo) []abci.ValidatorUpdate {
	prevKeys, prevPower := votingPowers(prev)
	nextKeys, nextPower := votingPowers(next)

	var updates []abci.ValidatorUpdate
	for _, k := range nextKeys {
		if p, ok := prevPower[k]; ok && p == nextPower[k] {
			continue
		}
		updates = append(updates, abci.Ed25519ValidatorUpdate([]byte(k), int64(nextPower[k])))
	}
	for _, k := range prevKeys {
		if _, ok := nextPower[k]; !ok {
			updates = append(updates, abci.Ed25519ValidatorUpdate([]byte(k), 0))
		}
	}
	return updates
}

// votingPowers returns keys in order of first appearance and their total
// power.
func votingPowers(vs []ValidatorInfo) ([]string, map[string]uint64) {
	keys := make([]string, 0, len(vs))
	power := make(map[string]uint64, len(vs))
	for _, v := range vs {
		if len(v.ConsensusPubKey) != ed25519.PubKeyEd25519Size {
			continue
		}
		k := string(v.ConsensusPubKey)
		if _, ok := power[k]; !ok {
			keys = append(keys, k)
		}
		power[k] += v.ConsensusVotingPower
	}
	return keys, power
}
