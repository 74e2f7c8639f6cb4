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

// CodeFormat identifies the virtual machine of deployed contract code
type CodeFormat uint8

const (
	CodeFormatEVM CodeFormat = 0x00
)

func (c CodeFormat) String() string {
	if c == CodeFormatEVM {
		return "EVM"
	}
	return "UNKNOWN"
}

// Contract deployment leaves the recipient empty on the wire. The fee ratio of the partial
// fee delegation type sits between humanReadable and codeFormat
var smartContractDeployFamily = txFamily{
	txType: TxTypeSmartContractDeploy,
	name:   "SMART_CONTRACT_DEPLOY",
	body: []wireField{
		wireNonce,
		wireGasPrice,
		wireGas,
		wireTo,
		wireValue,
		wireFrom,
		wireData,
		wireHumanReadable,
		wireCodeFormat,
	},
	required:      []string{FieldData},
	optional:      []string{FieldValue, FieldHumanReadable, FieldCodeFormat},
	feeRatioIndex: 8,
	check:         checkSmartContractDeploy,
}

var smartContractExecutionFamily = txFamily{
	txType: TxTypeSmartContractExecution,
	name:   "SMART_CONTRACT_EXECUTION",
	body: []wireField{
		wireNonce,
		wireGasPrice,
		wireGas,
		wireTo,
		wireValue,
		wireFrom,
		wireData,
	},
	required:      []string{FieldTo, FieldData},
	optional:      []string{FieldValue},
	feeRatioIndex: -1,
}

func checkSmartContractDeploy(tx *Transaction) error {
	if tx.HumanReadable {
		return common.InvalidFieldValueError{
			Field:  FieldHumanReadable,
			Reason: "human-readable addresses are not supported",
		}
	}
	if tx.CodeFormat != CodeFormatEVM {
		return common.InvalidFieldValueError{
			Field:  FieldCodeFormat,
			Reason: "unsupported code format " + tx.CodeFormat.String(),
		}
	}
	if len(tx.Data) == 0 {
		return common.InvalidFieldValueError{
			Field:  FieldData,
			Reason: "contract code must not be empty",
		}
	}
	return nil
}
