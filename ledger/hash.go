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
	"math/big"

	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/blinklabs-io/goklaytn/rlp"
)

// SenderHash returns the hash that sender signatures commit to. For typed transactions it is
// keccak256(RLP([EncodeUnsigned(tx), chainId, 0, 0])), with the unsigned encoding embedded as
// a byte string, which binds the type tag and the chain ID. Legacy transactions use the EIP-155 form, or the plain unsigned encoding when no chain
// ID is set
func SenderHash(tx *Transaction) (common.Hash, error) {
	if err := tx.Validate(); err != nil {
		return common.Hash{}, err
	}
	return senderHash(tx)
}

// FeePayerHash returns the hash that a fee payer signs for the given sender-signed raw
// transaction: keccak256(RLP([EncodeUnsigned(tx), feePayer, chainId, 0, 0])), with the unsigned
// encoding embedded as a byte string. The sender signatures are not part of the hash. This is
// the form Klaytn nodes and caver-js verify, so a fee payer signature stays valid when the
// sender adds signatures, but any change to the transaction body invalidates it
func FeePayerHash(
	senderRaw []byte,
	feePayer common.Address,
	chainId *big.Int,
) (common.Hash, error) {
	tx, err := prepareFeePayerStage(senderRaw, feePayer, chainId)
	if err != nil {
		return common.Hash{}, err
	}
	return feePayerHash(tx, feePayer, tx.ChainID)
}

func senderHash(tx *Transaction) (common.Hash, error) {
	if tx.Type.IsLegacy() {
		return legacySenderHash(tx)
	}
	if tx.ChainID == nil {
		return common.Hash{}, common.MissingFieldError{Field: FieldChainId}
	}
	unsigned, err := encodeUnsigned(tx)
	if err != nil {
		return common.Hash{}, err
	}
	// The unsigned encoding goes in as a byte string, not as a nested list
	payload, err := rlp.EncodeList(
		unsigned,
		tx.ChainID,
		uint64(0),
		uint64(0),
	)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256Hash(payload), nil
}

func legacySenderHash(tx *Transaction) (common.Hash, error) {
	g, err := lookupGrammar(tx.Type)
	if err != nil {
		return common.Hash{}, err
	}
	items, err := encodeBody(tx, g)
	if err != nil {
		return common.Hash{}, err
	}
	if tx.ChainID != nil {
		items = append(items, tx.ChainID, uint64(0), uint64(0))
	}
	payload, err := rlp.EncodeList(items...)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256Hash(payload), nil
}

func feePayerHash(
	tx *Transaction,
	feePayer common.Address,
	chainId *big.Int,
) (common.Hash, error) {
	if chainId == nil {
		return common.Hash{}, common.MissingFieldError{Field: FieldChainId}
	}
	unsigned, err := encodeUnsigned(tx)
	if err != nil {
		return common.Hash{}, err
	}
	payload, err := rlp.EncodeList(
		unsigned,
		feePayer.Bytes(),
		chainId,
		uint64(0),
		uint64(0),
	)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256Hash(payload), nil
}

// prepareFeePayerStage decodes a sender-signed raw transaction and checks that it can take a
// signature from the given fee payer. The returned transaction has the fee payer and chain ID set
func prepareFeePayerStage(
	senderRaw []byte,
	feePayer common.Address,
	chainId *big.Int,
) (*Transaction, error) {
	if len(senderRaw) == 0 {
		return nil, common.MissingFieldError{Field: FieldSenderRawTransaction}
	}
	if feePayer.IsZero() {
		return nil, common.MissingFieldError{Field: FieldFeePayer}
	}
	tx, err := DecodeRawTransaction(senderRaw)
	if err != nil {
		return nil, err
	}
	if !tx.Type.IsFeeDelegated() {
		return nil, common.TypeSignatureMismatchError{
			TxType: tx.Type.String(),
			Reason: "fee payer signatures require a fee-delegated transaction type",
		}
	}
	switch {
	case chainId == nil && tx.ChainID == nil:
		return nil, common.MissingFieldError{Field: FieldChainId}
	case chainId == nil:
		// Use the chain ID of the sender signatures
	case tx.ChainID != nil && !common.BigEqual(tx.ChainID, chainId):
		return nil, common.InvalidFieldValueError{
			Field: FieldChainId,
			Reason: "chain ID " + chainId.String() +
				" does not match the sender signatures (chain ID " + tx.ChainID.String() + ")",
		}
	default:
		tx.ChainID = common.CopyBig(chainId)
	}
	if tx.FeePayer != nil && *tx.FeePayer != feePayer {
		return nil, common.InvalidFieldValueError{
			Field:  FieldFeePayer,
			Reason: "differs from the fee payer already in the transaction (" + tx.FeePayer.String() + ")",
		}
	}
	tx.FeePayer = &feePayer
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}
