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
	"strconv"

	"github.com/blinklabs-io/goklaytn/ledger/common"
)

// Validate checks the transaction against the grammar of its type. Checks run in a fixed
// order: the type itself, fields the type does not allow, fields the type requires, and
// finally the values. The first violation is returned
func (tx *Transaction) Validate() error {
	g, err := lookupGrammar(tx.Type)
	if err != nil {
		return err
	}
	for _, field := range recordFields {
		if !g.allowed[field.name] && field.isSet(tx) {
			return common.ForbiddenFieldError{Field: field.name, TxType: g.name}
		}
	}
	for _, field := range recordFields {
		if g.isRequired(field.name) && !field.isSet(tx) {
			return common.MissingFieldError{Field: field.name}
		}
	}
	return validateValues(tx, g)
}

func validateValues(tx *Transaction, g *txGrammar) error {
	for _, tmpField := range []struct {
		name  string
		check func() error
	}{
		{FieldChainId, func() error { return common.CheckUint256(tx.ChainID) }},
		{FieldGasPrice, func() error { return common.CheckUint256(tx.GasPrice) }},
		{FieldValue, func() error { return common.CheckUint256(tx.Value) }},
	} {
		if err := tmpField.check(); err != nil {
			return common.InvalidFieldValueError{
				Field:  tmpField.name,
				Reason: "out of range",
				Err:    err,
			}
		}
	}
	if g.delegation == feeDelegationWithRatio &&
		(tx.FeeRatio < minFeeRatio || tx.FeeRatio > maxFeeRatio) {
		return common.InvalidFieldValueError{
			Field:  FieldFeeRatio,
			Reason: "must be between 1 and 99",
		}
	}
	for idx, sig := range tx.Signatures {
		if err := sig.Validate(); err != nil {
			return common.InvalidFieldValueError{
				Field:  FieldSignatures,
				Reason: "signature " + strconv.Itoa(idx),
				Err:    err,
			}
		}
	}
	if !tx.FeePayerSignatures.IsPlaceholder() {
		if tx.FeePayer == nil {
			return common.MissingFieldError{Field: FieldFeePayer}
		}
		for idx, sig := range tx.FeePayerSignatures {
			if err := sig.Validate(); err != nil {
				return common.InvalidFieldValueError{
					Field:  FieldFeePayerSignatures,
					Reason: "signature " + strconv.Itoa(idx),
					Err:    err,
				}
			}
		}
	}
	if tx.FeePayer != nil && tx.FeePayer.IsZero() {
		return common.InvalidFieldValueError{
			Field:  FieldFeePayer,
			Reason: "must not be the zero address",
		}
	}
	if g.check != nil {
		if err := g.check(tx); err != nil {
			return err
		}
	}
	return nil
}

const (
	minFeeRatio = 1
	maxFeeRatio = 99
)
