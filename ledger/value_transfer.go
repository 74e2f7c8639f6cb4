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

var valueTransferFamily = txFamily{
	txType: TxTypeValueTransfer,
	name:   "VALUE_TRANSFER",
	body: []wireField{
		wireNonce,
		wireGasPrice,
		wireGas,
		wireTo,
		wireValue,
		wireFrom,
	},
	required:      []string{FieldTo, FieldValue},
	feeRatioIndex: -1,
}

var valueTransferMemoFamily = txFamily{
	txType: TxTypeValueTransferMemo,
	name:   "VALUE_TRANSFER_MEMO",
	body: []wireField{
		wireNonce,
		wireGasPrice,
		wireGas,
		wireTo,
		wireValue,
		wireFrom,
		wireData,
	},
	required:      []string{FieldTo, FieldValue, FieldData},
	feeRatioIndex: -1,
}
