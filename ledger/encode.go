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

// EncodeUnsigned returns the signature-free encoding that the sender signing hash commits to.
// For typed transactions this is RLP([tag, body...]). For legacy transactions it is
// RLP([nonce, gasPrice, gas, to, value, data]). The transaction is validated first
func EncodeUnsigned(tx *Transaction) ([]byte, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return encodeUnsigned(tx)
}

func encodeUnsigned(tx *Transaction) ([]byte, error) {
	g, err := lookupGrammar(tx.Type)
	if err != nil {
		return nil, err
	}
	items, err := encodeBody(tx, g)
	if err != nil {
		return nil, err
	}
	if tx.Type.IsLegacy() {
		return rlp.EncodeList(items...)
	}
	return rlp.EncodeList(append([]any{uint64(tx.Type)}, items...)...)
}

// EncodeSigned returns the raw transaction as accepted by a node. Typed transactions are the
// tag byte followed by RLP([body..., senderSignatures]) with the fee payer and its signatures
// appended for fee-delegated types. A fee-delegated transaction that has no fee payer yet is
// written with an empty fee payer and a placeholder fee payer signature. The transaction is
// validated first
func EncodeSigned(tx *Transaction) ([]byte, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return encodeSigned(tx)
}

func encodeSigned(tx *Transaction) ([]byte, error) {
	g, err := lookupGrammar(tx.Type)
	if err != nil {
		return nil, err
	}
	items, err := encodeBody(tx, g)
	if err != nil {
		return nil, err
	}
	if tx.Type.IsLegacy() {
		sig := common.Signature{}
		if len(tx.Signatures) > 0 {
			sig = tx.Signatures[0]
		}
		for _, val := range []*big.Int{sig.V, sig.R, sig.S} {
			item, err := wireBig(val)
			if err != nil {
				return nil, encodeError(FieldSignatures, err)
			}
			items = append(items, item)
		}
		return rlp.EncodeList(items...)
	}
	items = append(items, senderSignatures(tx))
	if g.delegation != feeDelegationNone {
		feePayer := []byte{}
		if tx.FeePayer != nil {
			feePayer = tx.FeePayer.Bytes()
		}
		feePayerSigs := tx.FeePayerSignatures
		if feePayerSigs.IsPlaceholder() {
			feePayerSigs = common.PlaceholderFeePayerSignatures
		}
		items = append(items, feePayer, feePayerSigs)
	}
	return encodeTyped(tx.Type, items)
}

func encodeBody(tx *Transaction, g *txGrammar) ([]any, error) {
	ret := make([]any, 0, len(g.body)+3)
	for _, field := range g.body {
		item, err := field.encode(tx)
		if err != nil {
			return nil, encodeError(field.name, err)
		}
		ret = append(ret, item)
	}
	return ret, nil
}

func encodeTyped(txType TxType, items []any) ([]byte, error) {
	return rlp.EncodeWithPrefix([]byte{byte(txType)}, items...)
}

// senderSignatures always encodes as a list of signatures, even when empty
func senderSignatures(tx *Transaction) common.SignatureList {
	if tx.Signatures == nil {
		return common.SignatureList{}
	}
	return tx.Signatures
}

func encodeError(field string, err error) error {
	return common.InvalidFieldValueError{
		Field:  field,
		Reason: "cannot be encoded",
		Err:    err,
	}
}
