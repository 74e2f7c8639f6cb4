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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/blinklabs-io/goklaytn/internal/test"
	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordJson(t *testing.T) {
	input := `{
		"type": "FEE_DELEGATED_VALUE_TRANSFER_MEMO_WITH_RATIO",
		"from": "0x90B3E9A3770481345A7F17f22f16D020Bccfd33e",
		"to": "0x7b65B75d204aBed71587c9E519a89277766EE1d0",
		"nonce": 1234,
		"gasLimit": "0x15f90",
		"gasPrice": "25000000000",
		"chainId": 1001,
		"value": "0xa",
		"input": "0x68656c6c6f",
		"feeRatio": 30
	}`
	dec := json.NewDecoder(bytes.NewReader([]byte(input)))
	dec.UseNumber()
	var rec ledger.Record
	require.NoError(t, dec.Decode(&rec))
	tx, err := ledger.ParseRecord(rec)
	require.NoError(t, err)
	expected := testTransaction(t, ledger.TxTypeFeeDelegatedValueTransferMemoWithRatio)
	assert.True(t, expected.Equal(tx))
}

func TestParseRecordAliasConflict(t *testing.T) {
	rec := feeDelegatedCancelRecord()
	rec["gasLimit"] = 21000
	_, err := ledger.ParseRecord(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidFieldValue))
}

func TestParseRecordValues(t *testing.T) {
	testDefs := []struct {
		name   string
		modify func(rec ledger.Record)
	}{
		{"NegativeNonce", func(rec ledger.Record) { rec["nonce"] = -1 }},
		{"FractionalGas", func(rec ledger.Record) { rec["gas"] = 1.5 }},
		{"BadGasPrice", func(rec ledger.Record) { rec["gasPrice"] = "0xzz" }},
		{"BadAddress", func(rec ledger.Record) { rec["from"] = "0x1234" }},
		{"UnsupportedType", func(rec ledger.Record) { rec["chainId"] = []int{1} }},
		{"PartialSignature", func(rec ledger.Record) { rec["v"] = "0x25" }},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			rec := feeDelegatedCancelRecord()
			testDef.modify(rec)
			_, err := ledger.ParseRecord(rec)
			require.Error(t, err)
		})
	}
	rec := feeDelegatedCancelRecord()
	rec["type"] = "ACCOUNT_CREATION"
	_, err := ledger.ParseRecord(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownType))
}

func TestParseRecordAccountKeys(t *testing.T) {
	base := func() ledger.Record {
		return ledger.Record{
			"type":     "ACCOUNT_UPDATE",
			"from":     testSenderAddress,
			"nonce":    "0x0",
			"gas":      "0x30d40",
			"gasPrice": "0x5d21dba00",
			"chainId":  "0x3e9",
		}
	}
	testDefs := []struct {
		name        string
		fields      ledger.Record
		expectedHex string
	}{
		{
			name:        "Public",
			fields:      ledger.Record{"publicKey": "0x" + testSenderPubKeyHex},
			expectedHex: "02a1" + testSenderPubKeyHex,
		},
		{
			name: "Multisig",
			fields: ledger.Record{
				"multisig": map[string]any{
					"threshold": 2,
					"keys": []any{
						map[string]any{"weight": 1, "publicKey": "0x" + testSenderPubKeyHex},
						map[string]any{"weight": 1, "publicKey": "0x" + testFeePayerPubKeyHex},
					},
				},
			},
			expectedHex: "04f84b02f848e301a1" + testSenderPubKeyHex + "e301a1" + testFeePayerPubKeyHex,
		},
		{
			name: "RoleBased",
			fields: ledger.Record{
				"roleTransactionKey": map[string]any{"publicKey": "0x" + testSenderPubKeyHex},
				"roleFeePayerKey": map[string]any{
					"multisig": map[string]any{
						"threshold": 2,
						"keys": []any{
							map[string]any{"weight": 1, "publicKey": "0x" + testSenderPubKeyHex},
							map[string]any{"weight": 1, "publicKey": "0x" + testFeePayerPubKeyHex},
						},
					},
				},
			},
			expectedHex: "05f876a302a1" + testSenderPubKeyHex + "8180b84e04f84b02f848e301a1" + testSenderPubKeyHex + "e301a1" + testFeePayerPubKeyHex,
		},
		{
			name:        "Legacy",
			fields:      ledger.Record{"legacyKey": true},
			expectedHex: "01c0",
		},
		{
			name:        "Fail",
			fields:      ledger.Record{"failKey": true},
			expectedHex: "03c0",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			rec := base()
			for name, val := range testDef.fields {
				rec[name] = val
			}
			tx, err := ledger.ParseRecord(rec)
			require.NoError(t, err)
			keyBytes, err := tx.Key.Bytes()
			require.NoError(t, err)
			assert.Equal(t, test.DecodeHexString(testDef.expectedHex), keyBytes)
			// The rendered record parses back to the same transaction
			parsed, err := ledger.ParseRecord(tx.Record())
			require.NoError(t, err)
			assert.True(t, tx.Equal(parsed))
		})
	}

	// No key at all
	_, err := ledger.ParseRecord(base())
	require.Error(t, err)
	assert.Equal(t, `"key" is missing`, err.Error())

	// Role keys do not combine with other key kinds
	rec := base()
	rec["publicKey"] = "0x" + testSenderPubKeyHex
	rec["roleFeePayerKey"] = map[string]any{"legacyKey": true}
	_, err = ledger.ParseRecord(rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidFieldValue))
}

func TestTransactionRecord(t *testing.T) {
	full, err := ledger.DecodeRawTransaction(test.DecodeHexString(caverFeeDelegatedCancelRawHex))
	require.NoError(t, err)
	rec := full.Record()
	assert.Equal(t, "FEE_DELEGATED_CANCEL", rec["type"])
	assert.Equal(t, testSenderAddress, rec["from"])
	assert.Equal(t, "0xf", rec["nonce"])
	assert.Equal(t, "0x3b9ac9ff", rec["gas"])
	assert.Equal(t, "0x19", rec["gasPrice"])
	assert.Equal(t, "0x1", rec["chainId"])
	assert.Equal(t, "0x26", rec["v"])
	assert.Equal(t, "0x25", rec["payerV"])
	assert.Equal(t, testFeePayerAddress, rec["feePayer"])
	assert.NotContains(t, rec, "signatures")
	parsed, err := ledger.ParseRecord(rec)
	require.NoError(t, err)
	assert.True(t, full.Equal(parsed))

	// Several signatures render as a list
	signed, err := ledger.SignTransaction(
		context.Background(),
		testTransaction(t, ledger.TxTypeValueTransfer),
		testSigner(t, testSenderKeyHex),
		testSigner(t, testFeePayerKeyHex),
	)
	require.NoError(t, err)
	rec = signed.Record()
	assert.NotContains(t, rec, "v")
	sigs, ok := rec["signatures"].([]any)
	require.True(t, ok)
	assert.Len(t, sigs, 2)
	parsed, err = ledger.ParseRecord(rec)
	require.NoError(t, err)
	assert.True(t, signed.Equal(parsed))
}
