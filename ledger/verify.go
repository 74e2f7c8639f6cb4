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
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	signatureRoleSender   = "sender"
	signatureRoleFeePayer = "fee payer"
)

// VerifySenderSignatures checks that every sender signature recovers, under the sender hash and
// the transaction's chain ID, to one of the accepted addresses. With no accepted addresses the
// sender address is expected
func VerifySenderSignatures(tx *Transaction, accepted ...common.Address) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	hash, err := senderHash(tx)
	if err != nil {
		return err
	}
	if len(accepted) == 0 {
		accepted = []common.Address{tx.From}
	}
	return verifySignatures(signatureRoleSender, hash, tx.ChainID, tx.Signatures, accepted)
}

// VerifyFeePayerSignatures checks that every fee payer signature recovers, under the fee payer
// hash, to one of the accepted addresses. With no accepted addresses the fee payer address is
// expected
func VerifyFeePayerSignatures(tx *Transaction, accepted ...common.Address) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if !tx.Type.IsFeeDelegated() {
		return common.TypeSignatureMismatchError{
			TxType: tx.Type.String(),
			Reason: "transaction type has no fee payer",
		}
	}
	if tx.FeePayer == nil {
		return common.MissingFieldError{Field: FieldFeePayer}
	}
	hash, err := feePayerHash(tx, *tx.FeePayer, tx.ChainID)
	if err != nil {
		return err
	}
	if len(accepted) == 0 {
		accepted = []common.Address{*tx.FeePayer}
	}
	sigs := tx.FeePayerSignatures
	if sigs.IsPlaceholder() {
		sigs = nil
	}
	return verifySignatures(signatureRoleFeePayer, hash, tx.ChainID, sigs, accepted)
}

// VerifySenderAccountKey checks the sender signatures against the account key of the sender.
// Role-based keys are checked with the account update role for account update types and the
// transaction role otherwise
func VerifySenderAccountKey(tx *Transaction, key common.AccountKey) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	hash, err := senderHash(tx)
	if err != nil {
		return err
	}
	role := common.RoleTransaction
	if tx.Type.BasicType() == TxTypeAccountUpdate {
		role = common.RoleAccountUpdate
	}
	return verifyAccountKey(
		signatureRoleSender,
		hash,
		tx.ChainID,
		tx.Signatures,
		tx.From,
		key,
		role,
	)
}

// VerifyFeePayerAccountKey checks the fee payer signatures against the account key of the fee
// payer, using the fee payer role of role-based keys
func VerifyFeePayerAccountKey(tx *Transaction, key common.AccountKey) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if !tx.Type.IsFeeDelegated() {
		return common.TypeSignatureMismatchError{
			TxType: tx.Type.String(),
			Reason: "transaction type has no fee payer",
		}
	}
	if tx.FeePayer == nil {
		return common.MissingFieldError{Field: FieldFeePayer}
	}
	hash, err := feePayerHash(tx, *tx.FeePayer, tx.ChainID)
	if err != nil {
		return err
	}
	sigs := tx.FeePayerSignatures
	if sigs.IsPlaceholder() {
		sigs = nil
	}
	return verifyAccountKey(
		signatureRoleFeePayer,
		hash,
		tx.ChainID,
		sigs,
		*tx.FeePayer,
		key,
		common.RoleFeePayer,
	)
}

func verifySignatures(
	role string,
	hash common.Hash,
	chainId *big.Int,
	sigs common.SignatureList,
	accepted []common.Address,
) error {
	signers, err := recoverSigners(role, hash, chainId, sigs)
	if err != nil {
		return err
	}
	return verifySigners(role, signers, accepted)
}

func recoverSigners(
	role string,
	hash common.Hash,
	chainId *big.Int,
	sigs common.SignatureList,
) ([]common.Address, error) {
	if len(sigs) == 0 {
		return nil, common.SignatureVerificationError{Role: role, Reason: "no signatures"}
	}
	ret := make([]common.Address, 0, len(sigs))
	for idx, sig := range sigs {
		addr, err := recoverSigner(hash, chainId, sig)
		if err != nil {
			return nil, common.SignatureVerificationError{Role: role, Index: idx, Reason: err.Error()}
		}
		ret = append(ret, addr)
	}
	return ret, nil
}

func verifyAccountKey(
	role string,
	hash common.Hash,
	chainId *big.Int,
	sigs common.SignatureList,
	account common.Address,
	key common.AccountKey,
	keyRole int,
) error {
	if roleKey, ok := key.(common.AccountKeyRoleBased); ok {
		key = roleKey.Keys[keyRole]
		// Roles left unset fall back to the transaction role
		if key == nil || key.Type() == common.AccountKeyTypeNil {
			key = roleKey.Keys[common.RoleTransaction]
		}
	}
	if key == nil {
		key = common.AccountKeyLegacy{}
	}
	signers, err := recoverSigners(role, hash, chainId, sigs)
	if err != nil {
		return err
	}
	switch tmpKey := key.(type) {
	case common.AccountKeyNil, common.AccountKeyLegacy:
		return verifySigners(role, signers, []common.Address{account})
	case common.AccountKeyPublic:
		if tmpKey.PublicKey == nil {
			return common.SignatureVerificationError{Role: role, Reason: "account key has no public key"}
		}
		return verifySigners(
			role,
			signers,
			[]common.Address{common.NewAddressFromEth(crypto.PubkeyToAddress(*tmpKey.PublicKey))},
		)
	case common.AccountKeyFail:
		return common.SignatureVerificationError{Role: role, Reason: "account key always fails"}
	case common.AccountKeyWeightedMultisig:
		weights := make(map[common.Address]uint64, len(tmpKey.Keys))
		for _, weightedKey := range tmpKey.Keys {
			if weightedKey.PublicKey == nil {
				continue
			}
			weights[common.NewAddressFromEth(crypto.PubkeyToAddress(*weightedKey.PublicKey))] = uint64(weightedKey.Weight)
		}
		var total uint64
		seen := make(map[common.Address]bool, len(signers))
		for idx, addr := range signers {
			weight, ok := weights[addr]
			if !ok {
				return common.SignatureVerificationError{
					Role:   role,
					Index:  idx,
					Reason: "signer " + addr.String() + " is not part of the multisig key",
				}
			}
			if seen[addr] {
				continue
			}
			seen[addr] = true
			total += weight
		}
		if total < uint64(tmpKey.Threshold) {
			return common.SignatureVerificationError{
				Role:   role,
				Index:  len(signers) - 1,
				Reason: fmt.Sprintf("signature weight %d is below threshold %d", total, tmpKey.Threshold),
			}
		}
		return nil
	}
	return common.SignatureVerificationError{
		Role:   role,
		Reason: fmt.Sprintf("unsupported account key type %d", key.Type()),
	}
}

func verifySigners(role string, signers []common.Address, accepted []common.Address) error {
	for idx, addr := range signers {
		if !slices.Contains(accepted, addr) {
			return common.SignatureVerificationError{
				Role:   role,
				Index:  idx,
				Reason: "unexpected signer " + addr.String(),
			}
		}
	}
	return nil
}

// recoverSigner returns the address that produced the signature. V must belong to the chain ID
func recoverSigner(
	hash common.Hash,
	chainId *big.Int,
	sig common.Signature,
) (common.Address, error) {
	if err := sig.Validate(); err != nil {
		return common.Address{}, err
	}
	recoveryId, err := sig.RecoveryId(chainId)
	if err != nil {
		return common.Address{}, err
	}
	if sig.R == nil || sig.S == nil ||
		!crypto.ValidateSignatureValues(recoveryId, sig.R, sig.S, true) {
		return common.Address{}, errors.New("invalid signature values")
	}
	rawSig, err := sig.RawBytes(chainId)
	if err != nil {
		return common.Address{}, err
	}
	pubKey, err := crypto.SigToPub(hash.Bytes(), rawSig)
	if err != nil {
		return common.Address{}, err
	}
	return common.NewAddressFromEth(crypto.PubkeyToAddress(*pubKey)), nil
}
