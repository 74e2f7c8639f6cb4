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
	"fmt"

	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/blinklabs-io/goklaytn/rlp"
)

const legacyFieldCount = 9

// DetermineTransactionType returns the type of a raw transaction. A leading RLP list header
// means a legacy transaction, anything else is the type tag
func DetermineTransactionType(data []byte) (TxType, error) {
	if len(data) == 0 {
		return 0, common.MalformedEncodingError{Context: "empty raw transaction"}
	}
	if rlp.IsList(data) {
		return TxTypeLegacy, nil
	}
	txType := TxType(data[0])
	if txType == TxTypeLegacy || !txType.IsRegistered() {
		return 0, common.UnknownTypeError{Type: fmt.Sprintf("0x%02x", data[0])}
	}
	return txType, nil
}

// DecodeRawTransaction decodes a raw transaction as produced by EncodeSigned. Both the single
// signature and the list of signatures forms are accepted. The chain ID is taken from the V of
// the first sender signature, and the sender of legacy transactions is recovered from its
// signature. The result is not validated
func DecodeRawTransaction(data []byte) (*Transaction, error) {
	txType, err := DetermineTransactionType(data)
	if err != nil {
		return nil, err
	}
	if txType.IsLegacy() {
		return decodeLegacy(data)
	}
	return decodeTyped(txType, data[1:])
}

func decodeTyped(txType TxType, data []byte) (*Transaction, error) {
	g, err := lookupGrammar(txType)
	if err != nil {
		return nil, err
	}
	items, err := rlp.DecodeList(data)
	if err != nil {
		return nil, common.MalformedEncodingError{Context: g.name + " transaction", Err: err}
	}
	bodyLen := len(g.body)
	basicLen := bodyLen + 1
	feeDelegatedLen := bodyLen + 3
	switch {
	case g.delegation == feeDelegationNone && len(items) == feeDelegatedLen:
		return nil, common.TypeSignatureMismatchError{
			TxType: g.name,
			Reason: "unexpected fee payer section",
		}
	case g.delegation != feeDelegationNone && len(items) == basicLen:
		return nil, common.TypeSignatureMismatchError{
			TxType: g.name,
			Reason: "missing fee payer section",
		}
	case g.delegation == feeDelegationNone && len(items) != basicLen,
		g.delegation != feeDelegationNone && len(items) != feeDelegatedLen:
		return nil, common.MalformedEncodingError{
			Context: fmt.Sprintf(
				"%s transaction has %d fields",
				g.name,
				len(items),
			),
		}
	}
	tx := &Transaction{Type: txType}
	if err := decodeBody(tx, g, items[:bodyLen]); err != nil {
		return nil, err
	}
	tx.Signatures, err = common.DecodeSignatureList(items[bodyLen])
	if err != nil {
		return nil, err
	}
	if len(tx.Signatures) > 0 {
		tx.ChainID = tx.Signatures[0].ChainId()
	}
	if g.delegation == feeDelegationNone {
		return tx, nil
	}
	feePayerBytes, err := rlp.DecodeBytes(items[bodyLen+1])
	if err != nil {
		return nil, common.MalformedEncodingError{Context: FieldFeePayer, Err: err}
	}
	if len(feePayerBytes) > 0 {
		feePayer, err := common.NewAddressFromBytes(feePayerBytes)
		if err != nil {
			return nil, common.MalformedEncodingError{Context: FieldFeePayer, Err: err}
		}
		tx.FeePayer = &feePayer
	}
	feePayerSigs, err := common.DecodeSignatureList(items[bodyLen+2])
	if err != nil {
		return nil, err
	}
	if !feePayerSigs.IsPlaceholder() {
		tx.FeePayerSignatures = feePayerSigs
	}
	return tx, nil
}

func decodeLegacy(data []byte) (*Transaction, error) {
	g, err := lookupGrammar(TxTypeLegacy)
	if err != nil {
		return nil, err
	}
	items, err := rlp.DecodeList(data)
	if err != nil {
		return nil, common.MalformedEncodingError{Context: g.name + " transaction", Err: err}
	}
	if len(items) != legacyFieldCount {
		return nil, common.MalformedEncodingError{
			Context: fmt.Sprintf(
				"%s transaction has %d fields",
				g.name,
				len(items),
			),
		}
	}
	tx := &Transaction{Type: TxTypeLegacy}
	if err := decodeBody(tx, g, items[:len(g.body)]); err != nil {
		return nil, err
	}
	sigData, err := rlp.EncodeList(
		items[len(g.body)],
		items[len(g.body)+1],
		items[len(g.body)+2],
	)
	if err != nil {
		return nil, common.MalformedEncodingError{Context: "signature", Err: err}
	}
	var sig common.Signature
	if err := rlp.Decode(sigData, &sig); err != nil {
		return nil, common.MalformedEncodingError{Context: "signature", Err: err}
	}
	if sig.IsEmpty() {
		return tx, nil
	}
	tx.Signatures = common.SignatureList{sig}
	tx.ChainID = sig.ChainId()
	hash, err := legacySenderHash(tx)
	if err != nil {
		return nil, err
	}
	from, err := recoverSigner(hash, tx.ChainID, sig)
	if err != nil {
		return nil, common.MalformedEncodingError{Context: "cannot recover sender", Err: err}
	}
	tx.From = from
	return tx, nil
}

func decodeBody(tx *Transaction, g *txGrammar, items []rlp.RawValue) error {
	for idx, field := range g.body {
		if err := field.decode(tx, items[idx]); err != nil {
			return common.MalformedEncodingError{Context: field.name, Err: err}
		}
	}
	return nil
}
