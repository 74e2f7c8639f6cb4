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
	"github.com/blinklabs-io/goklaytn/ledger/common"
)

// Legacy transactions use the Ethereum layout: no type tag, no sender address on the wire and
// a single signature whose V carries the chain ID
func legacyGrammar() *txGrammar {
	return &txGrammar{
		txType: TxTypeLegacy,
		name:   txTypeNameLegacy,
		body: []wireField{
			wireNonce,
			wireGasPrice,
			wireGas,
			wireTo,
			wireValue,
			wireData,
		},
		required: baseRequiredFields,
		optional: concatFields(
			[]string{FieldChainId, FieldTo, FieldValue, FieldData},
			baseOptionalFields,
		),
		check: checkLegacy,
	}
}

func checkLegacy(tx *Transaction) error {
	if tx.To == nil && len(tx.Data) == 0 {
		return common.InvalidFieldValueError{
			Field:  FieldData,
			Reason: "contract creation without any data provided",
		}
	}
	if len(tx.Signatures) > 1 {
		return common.InvalidFieldValueError{
			Field:  FieldSignatures,
			Reason: "legacy transactions carry a single signature",
		}
	}
	return nil
}
