package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/valset"
	"github.com/iov-one/valset/errors"
	"github.com/iov-one/valset/orm"
	"github.com/tendermint/tendermint/crypto"
)

// SignCodeV1 is the current way to prefix the bytes we use to build
// a signature
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

/*
BuildSignBytes combines all info on the actual tx before signing

version | len(chainID) | chainID      | nonce             | signBytes
4bytes  | uint8        | ascii string | int64 (bigendian) | serialized transaction

This is then prehashed with sha512 before fed into
the public key signing/verification step
*/
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !valset.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, uint64(seq))

	output := make([]byte, 0, 4+1+len(chainID)+8+len(signBytes))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(chainID)))
	output = append(output, chainID...)
	output = append(output, nonce...)
	output = append(output, signBytes...)

	hashed := sha512.Sum512(output)
	return hashed[:], nil
}

// SignTx creates a signature for the given tx
func SignTx(key crypto.PrivKey, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	signBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	toSign, err := BuildSignBytes(signBytes, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := key.Sign(toSign)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &StdSignature{
		PubKey:    key.PubKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}

// VerifyTx checks the signature of the transaction against the chain id
// found in the context and the nonce of the signer. On success the nonce is
// incremented and the returned context carries the signer address.
func VerifyTx(ctx valset.Context, db valset.KVStore, tx SignedTx) (valset.Context, error) {
	sig := tx.GetSignature()
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	signBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	toSign, err := BuildSignBytes(signBytes, valset.GetChainID(ctx), sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !sig.PubKey.VerifyBytes(toSign, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	addr := sig.Address()
	bucket := orm.NewBucket(BucketName)
	nonce, err := loadNonce(db, bucket, addr)
	if err != nil {
		return nil, err
	}
	if err := nonce.CheckAndIncrement(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Put(db, addr, nonce); err != nil {
		return nil, err
	}
	return withSigner(ctx, addr), nil
}
