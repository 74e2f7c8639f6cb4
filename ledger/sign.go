// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer is the boundary to private key material. SignHash returns a 65-byte secp256k1
// signature in the R || S || recovery ID form. Implementations may be remote and slow
type Signer interface {
	SignHash(ctx context.Context, hash common.Hash) ([]byte, error)
}

// publicKeySigner is implemented by signers that can report their public key up front. The
// key recovered from each signature is checked against it
type publicKeySigner interface {
	PublicKey() *ecdsa.PublicKey
}

// PrivateKeySigner signs with an in-memory secp256k1 private key
type PrivateKeySigner struct {
	key *ecdsa.PrivateKey
}

// NewPrivateKeySigner returns a signer for the provided 32-byte private key
func NewPrivateKeySigner(key []byte) (*PrivateKeySigner, error) {
	tmpKey, err := crypto.ToECDSA(key)
	if err != nil {
		return nil, common.InvalidPrivateKeyError{Err: err}
	}
	return &PrivateKeySigner{key: tmpKey}, nil
}

// NewPrivateKeySignerFromHex returns a signer for a hex encoded private key. The 0x prefix is
// optional
func NewPrivateKeySignerFromHex(hexKey string) (*PrivateKeySigner, error) {
	tmpKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, common.InvalidPrivateKeyError{Err: err}
	}
	return &PrivateKeySigner{key: tmpKey}, nil
}

func NewPrivateKeySignerFromECDSA(key *ecdsa.PrivateKey) (*PrivateKeySigner, error) {
	if key == nil || key.D == nil {
		return nil, common.InvalidPrivateKeyError{Err: errors.New("no key provided")}
	}
	return &PrivateKeySigner{key: key}, nil
}

func (s *PrivateKeySigner) SignHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return crypto.Sign(hash.Bytes(), s.key)
}

func (s *PrivateKeySigner) PublicKey() *ecdsa.PublicKey {
	return &s.key.PublicKey
}

// Address returns the account address derived from the signer's key
func (s *PrivateKeySigner) Address() common.Address {
	return common.NewAddressFromEth(crypto.PubkeyToAddress(s.key.PublicKey))
}

// SignHash signs the hash with the provided signer and returns the signature with V folded
// together with the chain ID, along with the address recovered from it. A nil chain ID produces
// an unprotected signature
func SignHash(
	ctx context.Context,
	hash common.Hash,
	chainId *big.Int,
	signer Signer,
) (common.Signature, common.Address, error) {
	if signer == nil {
		return common.Signature{}, common.Address{}, common.SigningPrimitiveFailureError{
			Err: errors.New("no signer provided"),
		}
	}
	if err := ctx.Err(); err != nil {
		return common.Signature{}, common.Address{}, err
	}
	rawSig, err := signer.SignHash(ctx, hash)
	if err != nil {
		return common.Signature{}, common.Address{}, common.SigningPrimitiveFailureError{Err: err}
	}
	if len(rawSig) != common.RawSignatureSize {
		return common.Signature{}, common.Address{}, common.SigningPrimitiveFailureError{
			Err: fmt.Errorf(
				"unexpected signature length: expected %d bytes, got %d",
				common.RawSignatureSize,
				len(rawSig),
			),
		}
	}
	rawSig = bytes.Clone(rawSig)
	// Accept signers that return V as 27 or 28
	if rawSig[common.RawSignatureSize-1] >= 27 {
		rawSig[common.RawSignatureSize-1] -= 27
	}
	pubKey, err := crypto.SigToPub(hash.Bytes(), rawSig)
	if err != nil {
		return common.Signature{}, common.Address{}, common.SigningPrimitiveFailureError{Err: err}
	}
	addr := common.NewAddressFromEth(crypto.PubkeyToAddress(*pubKey))
	if tmpSigner, ok := signer.(publicKeySigner); ok && tmpSigner.PublicKey() != nil {
		expectedAddr := common.NewAddressFromEth(crypto.PubkeyToAddress(*tmpSigner.PublicKey()))
		if addr != expectedAddr {
			return common.Signature{}, common.Address{}, common.SigningPrimitiveFailureError{
				Err: errors.New("recovered public key does not match signer"),
			}
		}
	}
	sig, err := common.NewSignature(rawSig, chainId)
	if err != nil {
		return common.Signature{}, common.Address{}, common.SigningPrimitiveFailureError{Err: err}
	}
	return sig, addr, nil
}

// SignTransaction validates the transaction and signs its sender hash with each signer in the
// order provided. New signatures are appended to any already present, skipping exact
// duplicates. Legacy transactions take exactly one signer, which must control the sender
// address. The provided transaction is not modified
func SignTransaction(
	ctx context.Context,
	tx *Transaction,
	signers ...Signer,
) (*Transaction, error) {
	if len(signers) == 0 {
		return nil, common.MissingFieldError{Field: "signer"}
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	hash, err := senderHash(tx)
	if err != nil {
		return nil, err
	}
	ret := tx.Copy()
	if tx.Type.IsLegacy() {
		if len(signers) != 1 {
			return nil, common.InvalidFieldValueError{
				Field:  FieldSignatures,
				Reason: "legacy transactions carry a single signature",
			}
		}
		sig, addr, err := SignHash(ctx, hash, tx.ChainID, signers[0])
		if err != nil {
			return nil, err
		}
		if addr != tx.From {
			return nil, common.InvalidFieldValueError{
				Field:  FieldFrom,
				Reason: "signer address " + addr.String() + " does not match",
			}
		}
		ret.Signatures = common.SignatureList{sig}
		return ret, nil
	}
	sigs, err := signAll(ctx, hash, tx.ChainID, signers)
	if err != nil {
		return nil, err
	}
	ret.Signatures = appendSignatures(ret.Signatures, sigs)
	return ret, nil
}

// SignAsFeePayer adds fee payer signatures to a sender-signed fee-delegated raw transaction.
// A nil chain ID means the chain ID of the sender signatures. The returned transaction carries
// the fee payer and all signatures
func SignAsFeePayer(
	ctx context.Context,
	senderRaw []byte,
	feePayer common.Address,
	chainId *big.Int,
	signers ...Signer,
) (*Transaction, error) {
	if len(signers) == 0 {
		return nil, common.MissingFieldError{Field: "signer"}
	}
	tx, err := prepareFeePayerStage(senderRaw, feePayer, chainId)
	if err != nil {
		return nil, err
	}
	hash, err := feePayerHash(tx, feePayer, tx.ChainID)
	if err != nil {
		return nil, err
	}
	sigs, err := signAll(ctx, hash, tx.ChainID, signers)
	if err != nil {
		return nil, err
	}
	tx.FeePayerSignatures = appendSignatures(tx.FeePayerSignatures, sigs)
	return tx, nil
}

// signAll signs with every signer or returns the first failure
func signAll(
	ctx context.Context,
	hash common.Hash,
	chainId *big.Int,
	signers []Signer,
) (common.SignatureList, error) {
	ret := make(common.SignatureList, 0, len(signers))
	for _, signer := range signers {
		sig, _, err := SignHash(ctx, hash, chainId, signer)
		if err != nil {
			return nil, err
		}
		ret = append(ret, sig)
	}
	return ret, nil
}

func appendSignatures(
	sigs common.SignatureList,
	newSigs common.SignatureList,
) common.SignatureList {
	if sigs.IsPlaceholder() {
		sigs = nil
	}
	for _, sig := range newSigs {
		if sigs.Contains(sig) {
			continue
		}
		sigs = append(sigs, sig)
	}
	return sigs
}
