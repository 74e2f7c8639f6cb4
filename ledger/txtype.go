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
	"strings"

	"github.com/blinklabs-io/goklaytn/ledger/common"
)

// TxType identifies a transaction variant. For typed transactions it is also the tag byte
// that prefixes the wire encoding
type TxType uint8

const (
	TxTypeLegacy TxType = 0x00

	TxTypeValueTransfer                               TxType = 0x08
	TxTypeFeeDelegatedValueTransfer                   TxType = 0x09
	TxTypeFeeDelegatedValueTransferWithRatio          TxType = 0x0a
	TxTypeValueTransferMemo                           TxType = 0x10
	TxTypeFeeDelegatedValueTransferMemo               TxType = 0x11
	TxTypeFeeDelegatedValueTransferMemoWithRatio      TxType = 0x12
	TxTypeAccountUpdate                               TxType = 0x20
	TxTypeFeeDelegatedAccountUpdate                   TxType = 0x21
	TxTypeFeeDelegatedAccountUpdateWithRatio          TxType = 0x22
	TxTypeSmartContractDeploy                         TxType = 0x28
	TxTypeFeeDelegatedSmartContractDeploy             TxType = 0x29
	TxTypeFeeDelegatedSmartContractDeployWithRatio    TxType = 0x2a
	TxTypeSmartContractExecution                      TxType = 0x30
	TxTypeFeeDelegatedSmartContractExecution          TxType = 0x31
	TxTypeFeeDelegatedSmartContractExecutionWithRatio TxType = 0x32
	TxTypeCancel                                      TxType = 0x38
	TxTypeFeeDelegatedCancel                          TxType = 0x39
	TxTypeFeeDelegatedCancelWithRatio                 TxType = 0x3a
	TxTypeChainDataAnchoring                          TxType = 0x48
	TxTypeFeeDelegatedChainDataAnchoring              TxType = 0x49
	TxTypeFeeDelegatedChainDataAnchoringWithRatio     TxType = 0x4a
)

const (
	txTypeNameLegacy             = "LEGACY"
	txTypeNameFeeDelegatedPrefix = "FEE_DELEGATED_"
	txTypeNameWithRatioSuffix    = "_WITH_RATIO"

	txTypeFeeDelegatedOffset      = 1
	txTypeFeeDelegatedRatioOffset = 2
)

// Each family occupies 8 tags, the low bits select the fee delegation variant
const txTypeFamilyMask TxType = 0xf8

// TxTypeByName returns the transaction type registered under the given name, such as
// FEE_DELEGATED_CANCEL
func TxTypeByName(name string) (TxType, error) {
	g, ok := grammarsByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return 0, common.UnknownTypeError{Type: name}
	}
	return g.txType, nil
}

// TxTypes returns all registered transaction types in tag order
func TxTypes() []TxType {
	ret := make([]TxType, 0, len(grammarOrder))
	for _, g := range grammarOrder {
		ret = append(ret, g.txType)
	}
	return ret
}

func (t TxType) String() string {
	if g, ok := grammars[t]; ok {
		return g.name
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", uint8(t))
}

// IsRegistered returns true if the type has a grammar
func (t TxType) IsRegistered() bool {
	_, ok := grammars[t]
	return ok
}

func (t TxType) IsLegacy() bool {
	return t == TxTypeLegacy
}

// IsFeeDelegated returns true for types whose fee is paid by a separate fee payer, including
// the partial fee delegation types
func (t TxType) IsFeeDelegated() bool {
	g, ok := grammars[t]
	return ok && g.delegation != feeDelegationNone
}

// IsFeeDelegatedWithRatio returns true for types where the fee payer pays a share of the fee
func (t TxType) IsFeeDelegatedWithRatio() bool {
	g, ok := grammars[t]
	return ok && g.delegation == feeDelegationWithRatio
}

// BasicType returns the non-delegated type of the same family
func (t TxType) BasicType() TxType {
	if t == TxTypeLegacy {
		return t
	}
	return t & txTypeFamilyMask
}
