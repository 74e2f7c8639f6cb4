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
	"context"
	"math/big"
	"testing"

	"github.com/blinklabs-io/goklaytn/internal/test"
	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/stretchr/testify/require"
)

const (
	testSenderKeyHex    = "f8cc7c3813ad23817466b1802ee805ee417001fcce9376ab8728c92dd8ea0a6b"
	testSenderAddress   = "0x90B3E9A3770481345A7F17f22f16D020Bccfd33e"
	testSenderPubKeyHex = "02dbac81e8486d68eac4e6ef9db617f7fbd79a04a3b323c982a09cdfc61f0ae0e8"

	testFeePayerKeyHex    = "b9d5558443585bca6f225b935950e3f6e69f9da8a5809a83f51c3365dff53936"
	testFeePayerAddress   = "0x33f524631e573329a550296F595c820D6c65213f"
	testFeePayerPubKeyHex = "03327434d4cfc66ef8857d431419e9deebdc53a3e415edcc55382e2d417b8dd102"

	testRecipientAddress = "0x7b65B75d204aBed71587c9E519a89277766EE1d0"
)

func testSigner(t *testing.T, keyHex string) *ledger.PrivateKeySigner {
	t.Helper()
	signer, err := ledger.NewPrivateKeySignerFromECDSA(test.DecodePrivateKey(keyHex))
	require.NoError(t, err)
	return signer
}

func testAddress(t *testing.T, addr string) common.Address {
	t.Helper()
	ret, err := common.NewAddress(addr)
	require.NoError(t, err)
	return ret
}

func testPublicKey(t *testing.T, pubKeyHex string) common.AccountKeyPublic {
	t.Helper()
	pubKey, err := common.ParsePublicKey(test.DecodeHexString(pubKeyHex))
	require.NoError(t, err)
	return common.AccountKeyPublic{PublicKey: pubKey}
}

// testFeeDelegatedCancel returns the unsigned fee-delegated cancel transaction used by the
// signing vectors
func testFeeDelegatedCancel(t *testing.T) *ledger.Transaction {
	t.Helper()
	return &ledger.Transaction{
		Type:     ledger.TxTypeFeeDelegatedCancel,
		ChainID:  big.NewInt(1),
		Nonce:    15,
		GasPrice: big.NewInt(0x19),
		Gas:      0x3b9ac9ff,
		From:     testAddress(t, testSenderAddress),
	}
}

// testTransaction returns a valid unsigned transaction of the given type
func testTransaction(t *testing.T, txType ledger.TxType) *ledger.Transaction {
	t.Helper()
	to := testAddress(t, testRecipientAddress)
	tx := &ledger.Transaction{
		Type:     txType,
		ChainID:  big.NewInt(1001),
		Nonce:    1234,
		GasPrice: big.NewInt(25000000000),
		Gas:      90000,
		From:     testAddress(t, testSenderAddress),
	}
	switch txType.BasicType() {
	case ledger.TxTypeLegacy:
		tx.To = &to
		tx.Value = big.NewInt(10)
		tx.Data = []byte{}
	case ledger.TxTypeValueTransfer:
		tx.To = &to
		tx.Value = big.NewInt(10)
	case ledger.TxTypeValueTransferMemo:
		tx.To = &to
		tx.Value = big.NewInt(10)
		tx.Data = []byte("hello")
	case ledger.TxTypeAccountUpdate:
		tx.Key = testPublicKey(t, testSenderPubKeyHex)
	case ledger.TxTypeSmartContractDeploy:
		tx.Value = big.NewInt(0)
		tx.Data = test.DecodeHexString("6080604052348015600f57600080fd5b50")
	case ledger.TxTypeSmartContractExecution:
		tx.To = &to
		tx.Value = big.NewInt(0)
		tx.Data = test.DecodeHexString("6353586b000000000000000000000000bc5951f055a85f41a3b62fd6f68ab7de76d299b2")
	case ledger.TxTypeCancel:
	case ledger.TxTypeChainDataAnchoring:
		tx.Data = test.DecodeHexString("f8a6a00000000000000000000000000000000000000000000000000000000000000000")
	}
	if txType.IsFeeDelegatedWithRatio() {
		tx.FeeRatio = 30
	}
	return tx
}

// testSignedTransaction signs the transaction as sender and, for fee-delegated types, as fee
// payer
func testSignedTransaction(t *testing.T, tx *ledger.Transaction) *ledger.Transaction {
	t.Helper()
	ctx := context.Background()
	signed, err := ledger.SignTransaction(ctx, tx, testSigner(t, testSenderKeyHex))
	require.NoError(t, err)
	if !tx.Type.IsFeeDelegated() {
		return signed
	}
	senderRaw, err := ledger.EncodeSigned(signed)
	require.NoError(t, err)
	signed, err = ledger.SignAsFeePayer(
		ctx,
		senderRaw,
		testAddress(t, testFeePayerAddress),
		nil,
		testSigner(t, testFeePayerKeyHex),
	)
	require.NoError(t, err)
	return signed
}
