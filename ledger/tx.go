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
	"math/big"

	"github.com/blinklabs-io/goklaytn/ledger/common"
)

// Transaction is the typed form of every supported transaction variant. Fields that a variant
// does not use must be left at their zero value; Validate reports any that are set
type Transaction struct {
	Type     TxType
	ChainID  *big.Int
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	From     common.Address
	// A nil recipient means contract creation for legacy transactions
	To            *common.Address
	Value         *big.Int
	Data          []byte
	HumanReadable bool
	CodeFormat    CodeFormat
	// Percentage of the fee paid by the fee payer, for partial fee delegation types
	FeeRatio uint8
	// Account key installed by account update types
	Key                common.AccountKey
	Signatures         common.SignatureList
	FeePayer           *common.Address
	FeePayerSignatures common.SignatureList
}

// Copy returns a deep copy of the transaction. Account keys are immutable and are shared
func (tx *Transaction) Copy() *Transaction {
	ret := *tx
	ret.ChainID = common.CopyBig(tx.ChainID)
	ret.GasPrice = common.CopyBig(tx.GasPrice)
	ret.Value = common.CopyBig(tx.Value)
	ret.To = common.CopyAddressPtr(tx.To)
	ret.FeePayer = common.CopyAddressPtr(tx.FeePayer)
	if tx.Data != nil {
		ret.Data = bytes.Clone(tx.Data)
	}
	ret.Signatures = tx.Signatures.Copy()
	ret.FeePayerSignatures = tx.FeePayerSignatures.Copy()
	return &ret
}

// Equal compares two transactions field by field. Integers compare by value, so a nil integer
// equals zero, and a placeholder fee payer signature equals no fee payer signature
func (tx *Transaction) Equal(other *Transaction) bool {
	if tx == nil || other == nil {
		return tx == other
	}
	if tx.Type != other.Type ||
		tx.Nonce != other.Nonce ||
		tx.Gas != other.Gas ||
		tx.From != other.From ||
		tx.HumanReadable != other.HumanReadable ||
		tx.CodeFormat != other.CodeFormat ||
		tx.FeeRatio != other.FeeRatio {
		return false
	}
	if !common.BigEqual(tx.ChainID, other.ChainID) ||
		!common.BigEqual(tx.GasPrice, other.GasPrice) ||
		!common.BigEqual(tx.Value, other.Value) {
		return false
	}
	if !addressPtrEqual(tx.To, other.To) ||
		!addressPtrEqual(tx.FeePayer, other.FeePayer) {
		return false
	}
	if !bytes.Equal(tx.Data, other.Data) {
		return false
	}
	if !accountKeyEqual(tx.Key, other.Key) {
		return false
	}
	if !tx.Signatures.Equal(other.Signatures) {
		return false
	}
	if tx.FeePayerSignatures.IsPlaceholder() {
		return other.FeePayerSignatures.IsPlaceholder()
	}
	return tx.FeePayerSignatures.Equal(other.FeePayerSignatures)
}

// Hash returns the transaction hash, the Keccak-256 hash of the raw transaction
func (tx *Transaction) Hash() (common.Hash, error) {
	raw, err := EncodeSigned(tx)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256Hash(raw), nil
}

// SenderTxHash returns the hash of the transaction as signed by the sender, without any fee
// payer data. It identifies a fee-delegated transaction before the fee payer has signed it. For
// other types it is the same as Hash
func (tx *Transaction) SenderTxHash() (common.Hash, error) {
	if !tx.Type.IsFeeDelegated() {
		return tx.Hash()
	}
	if err := tx.Validate(); err != nil {
		return common.Hash{}, err
	}
	g, err := lookupGrammar(tx.Type)
	if err != nil {
		return common.Hash{}, err
	}
	items, err := encodeBody(tx, g)
	if err != nil {
		return common.Hash{}, err
	}
	items = append(items, senderSignatures(tx))
	raw, err := encodeTyped(tx.Type, items)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Keccak256Hash(raw), nil
}

func addressPtrEqual(a, b *common.Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func accountKeyEqual(a, b common.AccountKey) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}
