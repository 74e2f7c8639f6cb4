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
	"errors"
	"testing"

	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSignerFunc func(ctx context.Context, hash common.Hash) ([]byte, error)

func (f testSignerFunc) SignHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	return f(ctx, hash)
}

func TestNewPrivateKeySigner(t *testing.T) {
	signer, err := ledger.NewPrivateKeySignerFromHex("0x" + testSenderKeyHex)
	require.NoError(t, err)
	assert.Equal(t, testSenderAddress, signer.Address().String())

	for _, keyHex := range []string{
		"",
		"0x1234",
		"0000000000000000000000000000000000000000000000000000000000000000",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
	} {
		_, err := ledger.NewPrivateKeySignerFromHex(keyHex)
		require.Error(t, err, keyHex)
		assert.True(t, errors.Is(err, common.ErrInvalidPrivateKey))
	}
	_, err = ledger.NewPrivateKeySigner(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidPrivateKey))
	_, err = ledger.NewPrivateKeySignerFromECDSA(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidPrivateKey))
}

func TestSignTransactionSignerFailures(t *testing.T) {
	ctx := context.Background()
	tx := testFeeDelegatedCancel(t)
	signerErr := errors.New("HSM unavailable")
	testDefs := []struct {
		name   string
		signer ledger.Signer
	}{
		{
			name: "Error",
			signer: testSignerFunc(func(context.Context, common.Hash) ([]byte, error) {
				return nil, signerErr
			}),
		},
		{
			name: "ShortSignature",
			signer: testSignerFunc(func(context.Context, common.Hash) ([]byte, error) {
				return make([]byte, 64), nil
			}),
		},
		{
			name: "Unrecoverable",
			signer: testSignerFunc(func(context.Context, common.Hash) ([]byte, error) {
				return make([]byte, 65), nil
			}),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := ledger.SignTransaction(ctx, tx, testDef.signer)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrSigningPrimitiveFailure), "unexpected error: %s", err)
		})
	}
	_, err := ledger.SignTransaction(ctx, tx, testDefs[0].signer)
	assert.True(t, errors.Is(err, signerErr))

	_, err = ledger.SignTransaction(ctx, tx)
	require.Error(t, err)
	assert.Equal(t, `"signer" is missing`, err.Error())
}

func TestSignTransactionExternalSigner(t *testing.T) {
	ctx := context.Background()
	inner := testSigner(t, testSenderKeyHex)
	// Signers that return V as 27 or 28 are accepted
	external := testSignerFunc(func(ctx context.Context, hash common.Hash) ([]byte, error) {
		sig, err := inner.SignHash(ctx, hash)
		if err != nil {
			return nil, err
		}
		sig[64] += 27
		return sig, nil
	})
	expected, err := ledger.SignTransaction(ctx, testFeeDelegatedCancel(t), inner)
	require.NoError(t, err)
	signed, err := ledger.SignTransaction(ctx, testFeeDelegatedCancel(t), external)
	require.NoError(t, err)
	assert.True(t, expected.Equal(signed))
}

func TestSignTransactionCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ledger.SignTransaction(ctx, testFeeDelegatedCancel(t), testSigner(t, testSenderKeyHex))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSignTransactionValidatesFirst(t *testing.T) {
	tx := testFeeDelegatedCancel(t)
	tx.Data = []byte("hello")
	_, err := ledger.SignTransaction(context.Background(), tx, testSigner(t, testSenderKeyHex))
	require.Error(t, err)
	assert.Equal(t, `"data" cannot be used with FEE_DELEGATED_CANCEL transaction`, err.Error())
}
