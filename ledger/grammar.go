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
	"slices"

	"github.com/blinklabs-io/goklaytn/ledger/common"
)

// Record field names
const (
	FieldType                 = "type"
	FieldFrom                 = "from"
	FieldNonce                = "nonce"
	FieldGas                  = "gas"
	FieldGasLimit             = "gasLimit"
	FieldGasPrice             = "gasPrice"
	FieldChainId              = "chainId"
	FieldTo                   = "to"
	FieldValue                = "value"
	FieldData                 = "data"
	FieldInput                = "input"
	FieldFeeRatio             = "feeRatio"
	FieldHumanReadable        = "humanReadable"
	FieldPublicKey            = "publicKey"
	FieldMultisig             = "multisig"
	FieldRoleTransactionKey   = "roleTransactionKey"
	FieldRoleAccountUpdateKey = "roleAccountUpdateKey"
	FieldRoleFeePayerKey      = "roleFeePayerKey"
	FieldCodeFormat           = "codeFormat"
	FieldLegacyKey            = "legacyKey"
	FieldFailKey              = "failKey"
	FieldV                    = "v"
	FieldR                    = "r"
	FieldS                    = "s"
	FieldSignatures           = "signatures"
	FieldFeePayer             = "feePayer"
	FieldPayerV               = "payerV"
	FieldPayerR               = "payerR"
	FieldPayerS               = "payerS"
	FieldFeePayerSignatures   = "feePayerSignatures"

	// Reported when an account update carries no account key at all
	FieldKey = "key"
	// Name of the encoded account key in the wire body
	FieldAccountKey = "accountKey"
	// Input of the fee payer signing stage
	FieldSenderRawTransaction = "senderRawTransaction"
)

// Alternate record field names and the field they stand for
var fieldAliases = map[string]string{
	FieldGasLimit: FieldGas,
	FieldInput:    FieldData,
}

type recordField struct {
	name  string
	isSet func(tx *Transaction) bool
}

// recordFields lists every record field in canonical order. Grammar violations are reported
// in this order
var recordFields = []recordField{
	{FieldFrom, func(tx *Transaction) bool { return !tx.From.IsZero() }},
	{FieldNonce, func(tx *Transaction) bool { return true }},
	{FieldGas, func(tx *Transaction) bool { return tx.Gas != 0 }},
	{FieldGasPrice, func(tx *Transaction) bool { return tx.GasPrice != nil }},
	{FieldChainId, func(tx *Transaction) bool { return tx.ChainID != nil }},
	{FieldTo, func(tx *Transaction) bool { return tx.To != nil }},
	{FieldValue, func(tx *Transaction) bool { return tx.Value != nil }},
	{FieldData, func(tx *Transaction) bool { return tx.Data != nil }},
	{FieldFeeRatio, func(tx *Transaction) bool { return tx.FeeRatio != 0 }},
	{FieldHumanReadable, func(tx *Transaction) bool { return tx.HumanReadable }},
	{FieldPublicKey, keyIsSet(common.AccountKeyTypePublic)},
	{FieldMultisig, keyIsSet(common.AccountKeyTypeWeightedMultisig)},
	{FieldRoleTransactionKey, roleKeyIsSet(common.RoleTransaction)},
	{FieldRoleAccountUpdateKey, roleKeyIsSet(common.RoleAccountUpdate)},
	{FieldRoleFeePayerKey, roleKeyIsSet(common.RoleFeePayer)},
	{FieldCodeFormat, func(tx *Transaction) bool { return tx.CodeFormat != CodeFormatEVM }},
	{FieldLegacyKey, keyIsSet(common.AccountKeyTypeLegacy)},
	{FieldFailKey, keyIsSet(common.AccountKeyTypeFail)},
	{FieldV, signaturesAreSet},
	{FieldR, signaturesAreSet},
	{FieldS, signaturesAreSet},
	{FieldSignatures, signaturesAreSet},
	{FieldFeePayer, func(tx *Transaction) bool { return tx.FeePayer != nil }},
	{FieldPayerV, feePayerSignaturesAreSet},
	{FieldPayerR, feePayerSignaturesAreSet},
	{FieldPayerS, feePayerSignaturesAreSet},
	{FieldFeePayerSignatures, feePayerSignaturesAreSet},
}

var recordFieldIndex = func() map[string]int {
	ret := make(map[string]int, len(recordFields))
	for idx, field := range recordFields {
		ret[field.name] = idx
	}
	return ret
}()

func keyIsSet(keyType common.AccountKeyType) func(*Transaction) bool {
	return func(tx *Transaction) bool {
		return tx.Key != nil && tx.Key.Type() == keyType
	}
}

func roleKeyIsSet(role int) func(*Transaction) bool {
	return func(tx *Transaction) bool {
		roleKey, ok := tx.Key.(common.AccountKeyRoleBased)
		if !ok {
			return false
		}
		return roleKey.Keys[role] != nil &&
			roleKey.Keys[role].Type() != common.AccountKeyTypeNil
	}
}

func signaturesAreSet(tx *Transaction) bool {
	return len(tx.Signatures) > 0
}

func feePayerSignaturesAreSet(tx *Transaction) bool {
	return !tx.FeePayerSignatures.IsPlaceholder()
}

// Account key record fields, any one of which satisfies an account update
var accountKeyFields = []string{
	FieldPublicKey,
	FieldMultisig,
	FieldRoleTransactionKey,
	FieldRoleAccountUpdateKey,
	FieldRoleFeePayerKey,
	FieldLegacyKey,
	FieldFailKey,
}

var (
	baseRequiredFields = []string{
		FieldFrom,
		FieldNonce,
		FieldGas,
		FieldGasPrice,
	}
	baseOptionalFields = []string{
		FieldV,
		FieldR,
		FieldS,
		FieldSignatures,
	}
	feePayerFields = []string{
		FieldFeePayer,
		FieldPayerV,
		FieldPayerR,
		FieldPayerS,
		FieldFeePayerSignatures,
	}
)

type feeDelegation int

const (
	feeDelegationNone feeDelegation = iota
	feeDelegationFull
	feeDelegationWithRatio
)

// txGrammar describes one transaction type: the record fields it accepts and the order of
// its fields on the wire
type txGrammar struct {
	txType     TxType
	name       string
	delegation feeDelegation
	// Wire order of the body, after the type tag and before the signatures
	body     []wireField
	required []string
	optional []string
	allowed  map[string]bool
	// Type specific value checks, run after the grammar checks
	check func(tx *Transaction) error
}

func (g *txGrammar) isRequired(field string) bool {
	return slices.Contains(g.required, field)
}

// txFamily is the declaration of a basic type. Registering it also registers the fee
// delegated and partially fee delegated types of the same family
type txFamily struct {
	txType   TxType
	name     string
	body     []wireField
	required []string
	optional []string
	// Position of the fee ratio in the body of the partial fee delegation type. A negative
	// value places it after the last body field
	feeRatioIndex int
	check         func(tx *Transaction) error
}

var (
	grammars       = map[TxType]*txGrammar{}
	grammarsByName = map[string]*txGrammar{}
	grammarOrder   []*txGrammar
)

func init() {
	registerGrammar(legacyGrammar())
	for _, family := range []txFamily{
		valueTransferFamily,
		valueTransferMemoFamily,
		accountUpdateFamily,
		smartContractDeployFamily,
		smartContractExecutionFamily,
		cancelFamily,
		chainDataAnchoringFamily,
	} {
		registerFamily(family)
	}
}

func registerGrammar(g *txGrammar) {
	if _, ok := grammars[g.txType]; ok {
		panic("duplicate transaction type registration: " + g.name)
	}
	g.allowed = make(map[string]bool, len(g.required)+len(g.optional))
	for _, field := range g.required {
		g.allowed[field] = true
	}
	for _, field := range g.optional {
		g.allowed[field] = true
	}
	grammars[g.txType] = g
	grammarsByName[g.name] = g
	grammarOrder = append(grammarOrder, g)
}

func registerFamily(family txFamily) {
	required := concatFields(baseRequiredFields, []string{FieldChainId}, family.required)
	optional := concatFields(baseOptionalFields, family.optional)
	// Basic
	registerGrammar(
		&txGrammar{
			txType:   family.txType,
			name:     family.name,
			body:     family.body,
			required: required,
			optional: optional,
			check:    family.check,
		},
	)
	// Fee delegated
	registerGrammar(
		&txGrammar{
			txType:     family.txType + txTypeFeeDelegatedOffset,
			name:       txTypeNameFeeDelegatedPrefix + family.name,
			delegation: feeDelegationFull,
			body:       family.body,
			required:   required,
			optional:   concatFields(optional, feePayerFields),
			check:      family.check,
		},
	)
	// Partial fee delegation
	ratioBody := slices.Clone(family.body)
	if family.feeRatioIndex < 0 || family.feeRatioIndex >= len(ratioBody) {
		ratioBody = append(ratioBody, wireFeeRatio)
	} else {
		ratioBody = slices.Insert(ratioBody, family.feeRatioIndex, wireFeeRatio)
	}
	registerGrammar(
		&txGrammar{
			txType:     family.txType + txTypeFeeDelegatedRatioOffset,
			name:       txTypeNameFeeDelegatedPrefix + family.name + txTypeNameWithRatioSuffix,
			delegation: feeDelegationWithRatio,
			body:       ratioBody,
			required:   concatFields(required, []string{FieldFeeRatio}),
			optional:   concatFields(optional, feePayerFields),
			check:      family.check,
		},
	)
}

func concatFields(fields ...[]string) []string {
	var ret []string
	for _, tmpFields := range fields {
		ret = append(ret, tmpFields...)
	}
	return ret
}

func lookupGrammar(txType TxType) (*txGrammar, error) {
	g, ok := grammars[txType]
	if !ok {
		return nil, common.UnknownTypeError{Type: txType.String()}
	}
	return g, nil
}
