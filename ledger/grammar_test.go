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

package ledger_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feeDelegatedCancelRecord() ledger.Record {
	return ledger.Record{
		"type":     "FEE_DELEGATED_CANCEL",
		"from":     testSenderAddress,
		"nonce":    15,
		"gas":      900000,
		"gasPrice": "0x19",
		"chainId":  "0x1",
	}
}

func TestTxTypeNames(t *testing.T) {
	testDefs := []struct {
		txType       ledger.TxType
		name         string
		basicType    ledger.TxType
		feeDelegated bool
		withRatio    bool
	}{
		{ledger.TxTypeLegacy, "LEGACY", ledger.TxTypeLegacy, false, false},
		{ledger.TxTypeValueTransfer, "VALUE_TRANSFER", ledger.TxTypeValueTransfer, false, false},
		{ledger.TxTypeFeeDelegatedValueTransferMemo, "FEE_DELEGATED_VALUE_TRANSFER_MEMO", ledger.TxTypeValueTransferMemo, true, false},
		{ledger.TxTypeFeeDelegatedAccountUpdateWithRatio, "FEE_DELEGATED_ACCOUNT_UPDATE_WITH_RATIO", ledger.TxTypeAccountUpdate, true, true},
		{ledger.TxTypeSmartContractDeploy, "SMART_CONTRACT_DEPLOY", ledger.TxTypeSmartContractDeploy, false, false},
		{ledger.TxTypeFeeDelegatedSmartContractExecution, "FEE_DELEGATED_SMART_CONTRACT_EXECUTION", ledger.TxTypeSmartContractExecution, true, false},
		{ledger.TxTypeFeeDelegatedCancel, "FEE_DELEGATED_CANCEL", ledger.TxTypeCancel, true, false},
		{ledger.TxTypeFeeDelegatedChainDataAnchoringWithRatio, "FEE_DELEGATED_CHAIN_DATA_ANCHORING_WITH_RATIO", ledger.TxTypeChainDataAnchoring, true, true},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.name, testDef.txType.String())
		txType, err := ledger.TxTypeByName(testDef.name)
		require.NoError(t, err)
		assert.Equal(t, testDef.txType, txType)
		assert.Equal(t, testDef.basicType, testDef.txType.BasicType())
		assert.Equal(t, testDef.feeDelegated, testDef.txType.IsFeeDelegated())
		assert.Equal(t, testDef.withRatio, testDef.txType.IsFeeDelegatedWithRatio())
	}
	// Lookup ignores case
	txType, err := ledger.TxTypeByName("fee_delegated_cancel")
	require.NoError(t, err)
	assert.Equal(t, ledger.TxTypeFeeDelegatedCancel, txType)
	_, err = ledger.TxTypeByName("ACCOUNT_CREATION")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownType))
	assert.Equal(t, "UNKNOWN(0x0b)", ledger.TxType(0x0b).String())
}

func TestTxTypesRegistry(t *testing.T) {
	txTypes := ledger.TxTypes()
	// Legacy plus seven families of three
	require.Len(t, txTypes, 22)
	assert.Equal(t, ledger.TxTypeLegacy, txTypes[0])
	for idx := 1; idx < len(txTypes); idx++ {
		assert.Less(t, txTypes[idx-1], txTypes[idx])
	}
	for _, txType := range txTypes {
		assert.True(t, txType.IsRegistered())
		// Every registered type accepts its minimal valid transaction
		require.NoError(t, testTransaction(t, txType).Validate(), txType.String())
	}
}

func TestFeeDelegatedCancelForbiddenFields(t *testing.T) {
	multisig := map[string]any{
		"threshold": 2,
		"keys": []any{
			map[string]any{"weight": 1, "publicKey": "0x" + testSenderPubKeyHex},
			map[string]any{"weight": 1, "publicKey": "0x" + testFeePayerPubKeyHex},
		},
	}
	testDefs := []struct {
		field string
		value any
	}{
		{"to", testRecipientAddress},
		{"value", 1},
		{"data", "0x68656c6c6f"},
		{"feeRatio", 10},
		{"publicKey", "0x" + testSenderPubKeyHex},
		{"multisig", multisig},
		{"roleTransactionKey", map[string]any{"publicKey": "0x" + testSenderPubKeyHex}},
		{"roleAccountUpdateKey", map[string]any{"publicKey": "0x" + testSenderPubKeyHex}},
		{"roleFeePayerKey", map[string]any{"publicKey": "0x" + testSenderPubKeyHex}},
		{"failKey", true},
		// The value is never parsed for a forbidden field
		{"codeFormat", "EVM"},
		{"legacyKey", true},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.field, func(t *testing.T) {
			rec := feeDelegatedCancelRecord()
			rec[testDef.field] = testDef.value
			_, err := ledger.ParseRecord(rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrForbiddenField))
			assert.Equal(
				t,
				`"`+testDef.field+`" cannot be used with FEE_DELEGATED_CANCEL transaction`,
				err.Error(),
			)
		})
	}
}

func TestForbiddenFieldOrder(t *testing.T) {
	rec := feeDelegatedCancelRecord()
	rec["legacyKey"] = true
	rec["value"] = 1
	rec["zzz"] = 1
	rec["to"] = testRecipientAddress
	_, err := ledger.ParseRecord(rec)
	require.Error(t, err)
	// Reported in canonical field order
	assert.Equal(t, `"to" cannot be used with FEE_DELEGATED_CANCEL transaction`, err.Error())

	rec = feeDelegatedCancelRecord()
	rec["zzz"] = 1
	rec["aaa"] = 1
	_, err = ledger.ParseRecord(rec)
	require.Error(t, err)
	assert.Equal(t, `"aaa" cannot be used with FEE_DELEGATED_CANCEL transaction`, err.Error())

	// Forbidden fields are reported before missing ones
	rec = feeDelegatedCancelRecord()
	delete(rec, "from")
	rec["value"] = 1
	_, err = ledger.ParseRecord(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbiddenField))
}

func TestMissingFields(t *testing.T) {
	testDefs := []struct {
		field    string
		expected string
	}{
		{"from", `"from" is missing`},
		{"nonce", `"nonce" is missing`},
		{"gas", `"gas" is missing`},
		{"gasPrice", `"gasPrice" is missing`},
		{"chainId", `"chainId" is missing`},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.field, func(t *testing.T) {
			rec := feeDelegatedCancelRecord()
			delete(rec, testDef.field)
			err := ledger.ValidateRecord(rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrMissingField))
			assert.Equal(t, testDef.expected, err.Error())
		})
	}
	// The first missing field in canonical order is reported
	rec := feeDelegatedCancelRecord()
	delete(rec, "gas")
	delete(rec, "from")
	assert.Equal(t, `"from" is missing`, ledger.ValidateRecord(rec).Error())
}

func TestMissingTypeSpecificFields(t *testing.T) {
	testDefs := []struct {
		name     string
		txType   ledger.TxType
		modify   func(tx *ledger.Transaction)
		expected string
	}{
		{
			name:     "ValueTransferTo",
			txType:   ledger.TxTypeValueTransfer,
			modify:   func(tx *ledger.Transaction) { tx.To = nil },
			expected: `"to" is missing`,
		},
		{
			name:     "ValueTransferValue",
			txType:   ledger.TxTypeFeeDelegatedValueTransfer,
			modify:   func(tx *ledger.Transaction) { tx.Value = nil },
			expected: `"value" is missing`,
		},
		{
			name:     "MemoData",
			txType:   ledger.TxTypeValueTransferMemo,
			modify:   func(tx *ledger.Transaction) { tx.Data = nil },
			expected: `"data" is missing`,
		},
		{
			name:     "FeeRatio",
			txType:   ledger.TxTypeFeeDelegatedCancelWithRatio,
			modify:   func(tx *ledger.Transaction) { tx.FeeRatio = 0 },
			expected: `"feeRatio" is missing`,
		},
		{
			name:     "AccountKey",
			txType:   ledger.TxTypeAccountUpdate,
			modify:   func(tx *ledger.Transaction) { tx.Key = nil },
			expected: `"key" is missing`,
		},
		{
			name:     "ChainId",
			txType:   ledger.TxTypeChainDataAnchoring,
			modify:   func(tx *ledger.Transaction) { tx.ChainID = nil },
			expected: `"chainId" is missing`,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			tx := testTransaction(t, testDef.txType)
			testDef.modify(tx)
			err := tx.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrMissingField))
			assert.Equal(t, testDef.expected, err.Error())
		})
	}
}

func TestValidateValues(t *testing.T) {
	testDefs := []struct {
		name   string
		txType ledger.TxType
		modify func(tx *ledger.Transaction)
	}{
		{
			name:   "FeeRatioTooHigh",
			txType: ledger.TxTypeFeeDelegatedValueTransferWithRatio,
			modify: func(tx *ledger.Transaction) { tx.FeeRatio = 100 },
		},
		{
			name:   "ValueTooLarge",
			txType: ledger.TxTypeValueTransfer,
			modify: func(tx *ledger.Transaction) { tx.Value = new(big.Int).Lsh(big.NewInt(1), 256) },
		},
		{
			name:   "DeployHumanReadable",
			txType: ledger.TxTypeSmartContractDeploy,
			modify: func(tx *ledger.Transaction) { tx.HumanReadable = true },
		},
		{
			name:   "DeployCodeFormat",
			txType: ledger.TxTypeSmartContractDeploy,
			modify: func(tx *ledger.Transaction) { tx.CodeFormat = 1 },
		},
		{
			name:   "ZeroFeePayer",
			txType: ledger.TxTypeFeeDelegatedCancel,
			modify: func(tx *ledger.Transaction) { tx.FeePayer = &common.Address{} },
		},
		{
			name:   "LegacyContractCreationWithoutData",
			txType: ledger.TxTypeLegacy,
			modify: func(tx *ledger.Transaction) { tx.To = nil },
		},
		{
			name:   "InvalidMultisig",
			txType: ledger.TxTypeAccountUpdate,
			modify: func(tx *ledger.Transaction) {
				tx.Key = common.AccountKeyWeightedMultisig{
					Threshold: 3,
					Keys: []common.WeightedPublicKey{
						{Weight: 1, PublicKey: testPublicKey(t, testSenderPubKeyHex).PublicKey},
					},
				}
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			tx := testTransaction(t, testDef.txType)
			testDef.modify(tx)
			err := tx.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidFieldValue), "unexpected error: %s", err)
		})
	}
}

func TestValidateForbiddenTransactionFields(t *testing.T) {
	tx := testTransaction(t, ledger.TxTypeCancel)
	tx.Value = big.NewInt(1)
	assert.Equal(t, `"value" cannot be used with CANCEL transaction`, tx.Validate().Error())

	tx = testTransaction(t, ledger.TxTypeSmartContractDeploy)
	to := testAddress(t, testRecipientAddress)
	tx.To = &to
	assert.Equal(t, `"to" cannot be used with SMART_CONTRACT_DEPLOY transaction`, tx.Validate().Error())

	// Fee payer data on a basic type
	tx = testTransaction(t, ledger.TxTypeValueTransfer)
	feePayer := testAddress(t, testFeePayerAddress)
	tx.FeePayer = &feePayer
	assert.Equal(t, `"feePayer" cannot be used with VALUE_TRANSFER transaction`, tx.Validate().Error())

	_, err := ledger.EncodeSigned(&ledger.Transaction{Type: 0x0b})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownType))
}
