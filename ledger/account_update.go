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

var accountUpdateFamily = txFamily{
	txType: TxTypeAccountUpdate,
	name:   "ACCOUNT_UPDATE",
	body: []wireField{
		wireNonce,
		wireGasPrice,
		wireGas,
		wireFrom,
		wireAccountKey,
	},
	optional:      accountKeyFields,
	feeRatioIndex: -1,
	check:         checkAccountUpdate,
}

func checkAccountUpdate(tx *Transaction) error {
	if tx.Key == nil || tx.Key.Type() == common.AccountKeyTypeNil {
		return common.MissingFieldError{Field: FieldKey}
	}
	if err := tx.Key.Validate(); err != nil {
		return common.InvalidFieldValueError{
			Field:  accountKeyFieldName(tx.Key),
			Reason: "invalid account key",
			Err:    err,
		}
	}
	return nil
}

// accountKeyFieldName returns the record field that carries the given key
func accountKeyFieldName(key common.AccountKey) string {
	switch tmpKey := key.(type) {
	case common.AccountKeyPublic:
		return FieldPublicKey
	case common.AccountKeyWeightedMultisig:
		return FieldMultisig
	case common.AccountKeyLegacy:
		return FieldLegacyKey
	case common.AccountKeyFail:
		return FieldFailKey
	case common.AccountKeyRoleBased:
		for role, roleKey := range tmpKey.Keys {
			if roleKey != nil && roleKey.Type() != common.AccountKeyTypeNil {
				return roleFieldNames[role]
			}
		}
		return FieldRoleTransactionKey
	}
	return FieldKey
}

var roleFieldNames = [common.RoleCount]string{
	FieldRoleTransactionKey,
	FieldRoleAccountUpdateKey,
	FieldRoleFeePayerKey,
}
