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
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/blinklabs-io/goklaytn/internal/test"
	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	feeDelegatedCancelSenderHashHex   = "5a24c83fc5482368c731222aa27515fc4cf4df7e4cc56c4225482121c8127948"
	feeDelegatedCancelFeePayerHashHex = "ae0c3d7a43e932ecb2fdc9b0fb1f8e2005e25a0bd3f5799debade82cf8cde794"
	feeDelegatedCancelSenderRawHex    = "39f8690f19843b9ac9ff9490b3e9a3770481345a7f17f22f16d020bccfd33ef845f84326a04309d80412c206e604771e2a4b15017f2a0bdfc1f1dd28c9c63dabdc7e8d9ff0a05b98c2c1bb2faae610f791e424444664d6f18d8ed8787bfe66ea6672d974ef3480c4c3018080"
	feeDelegatedCancelRawHex          = "39f8bf0f19843b9ac9ff9490b3e9a3770481345a7f17f22f16d020bccfd33ef845f84326a04309d80412c206e604771e2a4b15017f2a0bdfc1f1dd28c9c63dabdc7e8d9ff0a05b98c2c1bb2faae610f791e424444664d6f18d8ed8787bfe66ea6672d974ef349433f524631e573329a550296f595c820d6c65213ff845f84325a062fbaa9cf65a57f61dd680e13f93cacf8ea064211f111cae11222cae6fdfde77a060df7c7b9958d2e10568df83a8e84e7c73b4549075957c344a7848d16fd34915"
)

func TestEncodeUnsigned(t *testing.T) {
	testDefs := []struct {
		txType        ledger.TxType
		expectedHex   string
		senderHashHex string
	}{
		{
			txType:        ledger.TxTypeValueTransfer,
			expectedHex:   "f839088204d28505d21dba0083015f90947b65b75d204abed71587c9e519a89277766ee1d00a9490b3e9a3770481345a7f17f22f16d020bccfd33e",
			senderHashHex: "80a77c8cb3ac6b6d3c7649bb3045afbfe400fc64a85d6b68d888542c14bedd6a",
		},
		{
			txType:        ledger.TxTypeValueTransferMemo,
			expectedHex:   "f83f108204d28505d21dba0083015f90947b65b75d204abed71587c9e519a89277766ee1d00a9490b3e9a3770481345a7f17f22f16d020bccfd33e8568656c6c6f",
			senderHashHex: "76ee032834e47b922bbad20d0e3bef3f86d969967566be82d1311a36411a947e",
		},
		{
			txType:        ledger.TxTypeFeeDelegatedAccountUpdateWithRatio,
			expectedHex:   "f848228204d28505d21dba0083015f909490b3e9a3770481345a7f17f22f16d020bccfd33ea302a102dbac81e8486d68eac4e6ef9db617f7fbd79a04a3b323c982a09cdfc61f0ae0e81e",
			senderHashHex: "e0f5a63c0e541c42d892d24473521b96b58129fe3fcb4c1b1e22bd55ed9c1ee3",
		},
		{
			// The fee ratio sits between humanReadable and codeFormat
			txType:        ledger.TxTypeFeeDelegatedSmartContractDeployWithRatio,
			expectedHex:   "f83a2a8204d28505d21dba0083015f9080809490b3e9a3770481345a7f17f22f16d020bccfd33e916080604052348015600f57600080fd5b50801e80",
			senderHashHex: "1019f6e371980dc7f0a2413a7689bd58cb77a473787220a25cb6ffa2f4967929",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.txType.String(), func(t *testing.T) {
			tx := testTransaction(t, testDef.txType)
			unsigned, err := ledger.EncodeUnsigned(tx)
			require.NoError(t, err)
			assert.Equal(t, testDef.expectedHex, hex.EncodeToString(unsigned))
			hash, err := ledger.SenderHash(tx)
			require.NoError(t, err)
			assert.Equal(t, testDef.senderHashHex, hex.EncodeToString(hash.Bytes()))
		})
	}
}

func TestEncodeSignedFeeDelegatedCancel(t *testing.T) {
	ctx := context.Background()
	tx := testFeeDelegatedCancel(t)
	senderHash, err := ledger.SenderHash(tx)
	require.NoError(t, err)
	assert.Equal(t, feeDelegatedCancelSenderHashHex, hex.EncodeToString(senderHash.Bytes()))

	signed, err := ledger.SignTransaction(ctx, tx, testSigner(t, testSenderKeyHex))
	require.NoError(t, err)
	require.Len(t, signed.Signatures, 1)
	assert.Equal(t, int64(0x26), signed.Signatures[0].V.Int64())
	// The input transaction is left untouched
	assert.Empty(t, tx.Signatures)

	senderRaw, err := ledger.EncodeSigned(signed)
	require.NoError(t, err)
	assert.Equal(t, feeDelegatedCancelSenderRawHex, hex.EncodeToString(senderRaw))

	feePayer := testAddress(t, testFeePayerAddress)
	feePayerHash, err := ledger.FeePayerHash(senderRaw, feePayer, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, feeDelegatedCancelFeePayerHashHex, hex.EncodeToString(feePayerHash.Bytes()))

	full, err := ledger.SignAsFeePayer(
		ctx,
		senderRaw,
		feePayer,
		big.NewInt(1),
		testSigner(t, testFeePayerKeyHex),
	)
	require.NoError(t, err)
	raw, err := ledger.EncodeSigned(full)
	require.NoError(t, err)
	assert.Equal(t, feeDelegatedCancelRawHex, hex.EncodeToString(raw))

	// Encoding is deterministic
	rawAgain, err := ledger.EncodeSigned(full)
	require.NoError(t, err)
	assert.Equal(t, raw, rawAgain)

	require.NoError(t, ledger.VerifySenderSignatures(full))
	require.NoError(t, ledger.VerifyFeePayerSignatures(full))
}

func TestEncodeSenderStageHasPlaceholder(t *testing.T) {
	tx := testFeeDelegatedCancel(t)
	raw, err := ledger.EncodeSigned(tx)
	require.NoError(t, err)
	// Empty sender signatures, empty fee payer and the placeholder fee payer signature
	assert.Equal(
		t,
		"39e30f19843b9ac9ff9490b3e9a3770481345a7f17f22f16d020bccfd33ec080c4c3018080",
		hex.EncodeToString(raw),
	)
}

func TestEncodeValidatesFirst(t *testing.T) {
	tx := testFeeDelegatedCancel(t)
	to := testAddress(t, testRecipientAddress)
	tx.To = &to
	_, err := ledger.EncodeUnsigned(tx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrForbiddenField))
	_, err = ledger.EncodeSigned(tx)
	require.Error(t, err)
	assert.Equal(
		t,
		`"to" cannot be used with FEE_DELEGATED_CANCEL transaction`,
		err.Error(),
	)
}

func TestEncodeRejectsNegativeValues(t *testing.T) {
	tx := testTransaction(t, ledger.TxTypeValueTransfer)
	tx.Value = big.NewInt(-1)
	_, err := ledger.EncodeSigned(tx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidFieldValue))
}

func TestTransactionHash(t *testing.T) {
	full, err := ledger.DecodeRawTransaction(test.DecodeHexString(feeDelegatedCancelRawHex))
	require.NoError(t, err)
	hash, err := full.Hash()
	require.NoError(t, err)
	assert.Equal(
		t,
		common.Keccak256Hash(test.DecodeHexString(feeDelegatedCancelRawHex)),
		hash,
	)
	// The sender transaction hash ignores the fee payer
	senderTxHash, err := full.SenderTxHash()
	require.NoError(t, err)
	assert.Equal(
		t,
		"d4be8e05fa858eeaec6a10076692324257eb766293c640922f75392d9e3fd47e",
		hex.EncodeToString(senderTxHash.Bytes()),
	)
}
