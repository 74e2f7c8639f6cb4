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

// Package bench provides benchmark fixtures for the transaction codec and signer.
package bench

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/ledger/common"
)

const (
	benchSenderKeyHex   = "f8cc7c3813ad23817466b1802ee805ee417001fcce9376ab8728c92dd8ea0a6b"
	benchFeePayerKeyHex = "b9d5558443585bca6f225b935950e3f6e69f9da8a5809a83f51c3365dff53936"
	benchRecipient      = "0x7b65B75d204aBed71587c9E519a89277766EE1d0"
	benchChainId        = 1001
)

// TxFixture contains a signed transaction and its raw encoding for benchmarking.
type TxFixture struct {
	Name string
	Tx   *ledger.Transaction
	// Unsigned copy of Tx, used by the signing benchmarks
	Unsigned *ledger.Transaction
	Raw      []byte
}

// BenchSenderSigner returns the signer for the sender of every fixture.
func BenchSenderSigner() *ledger.PrivateKeySigner {
	return mustSigner(benchSenderKeyHex)
}

// BenchFeePayerSigner returns the signer for the fee payer of the fee-delegated fixtures.
func BenchFeePayerSigner() *ledger.PrivateKeySigner {
	return mustSigner(benchFeePayerKeyHex)
}

func mustSigner(keyHex string) *ledger.PrivateKeySigner {
	signer, err := ledger.NewPrivateKeySignerFromHex(keyHex)
	if err != nil {
		panic(fmt.Sprintf("failed to load bench key: %s", err))
	}
	return signer
}

func mustDecodeHex(data string) []byte {
	ret, err := hex.DecodeString(data)
	if err != nil {
		panic(fmt.Sprintf("failed to decode hex: %s", err))
	}
	return ret
}

// BenchUnsignedTransaction returns a valid unsigned transaction of the given type.
func BenchUnsignedTransaction(txType ledger.TxType) *ledger.Transaction {
	sender := BenchSenderSigner()
	to, err := ledger.NewAddress(benchRecipient)
	if err != nil {
		panic(fmt.Sprintf("failed to parse bench address: %s", err))
	}
	tx := &ledger.Transaction{
		Type:     txType,
		ChainID:  big.NewInt(benchChainId),
		Nonce:    1234,
		GasPrice: big.NewInt(25000000000),
		Gas:      90000,
		From:     sender.Address(),
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
		tx.Data = []byte("benchmark memo")
	case ledger.TxTypeAccountUpdate:
		tx.Key = common.AccountKeyPublic{PublicKey: sender.PublicKey()}
	case ledger.TxTypeSmartContractDeploy:
		tx.Value = big.NewInt(0)
		tx.Data = mustDecodeHex("6080604052348015600f57600080fd5b50")
	case ledger.TxTypeSmartContractExecution:
		tx.To = &to
		tx.Value = big.NewInt(0)
		tx.Data = mustDecodeHex("6353586b000000000000000000000000bc5951f055a85f41a3b62fd6f68ab7de76d299b2")
	case ledger.TxTypeChainDataAnchoring:
		tx.Data = mustDecodeHex("f8a6a00000000000000000000000000000000000000000000000000000000000000000")
	}
	if txType.IsFeeDelegatedWithRatio() {
		tx.FeeRatio = 30
	}
	return tx
}

// LoadTxFixture builds a signed fixture for the given type. Fee-delegated types carry the fee
// payer signature as well
func LoadTxFixture(txType ledger.TxType) (*TxFixture, error) {
	ctx := context.Background()
	unsigned := BenchUnsignedTransaction(txType)
	signed, err := ledger.SignTransaction(ctx, unsigned, BenchSenderSigner())
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", txType, err)
	}
	if txType.IsFeeDelegated() {
		senderRaw, err := ledger.EncodeSigned(signed)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", txType, err)
		}
		feePayer := BenchFeePayerSigner()
		signed, err = ledger.SignAsFeePayer(ctx, senderRaw, feePayer.Address(), nil, feePayer)
		if err != nil {
			return nil, fmt.Errorf("fee payer sign %s: %w", txType, err)
		}
	}
	raw, err := ledger.EncodeSigned(signed)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", txType, err)
	}
	return &TxFixture{
		Name:     txType.String(),
		Tx:       signed,
		Unsigned: unsigned,
		Raw:      raw,
	}, nil
}

// MustLoadTxFixture is like LoadTxFixture but panics on error.
func MustLoadTxFixture(txType ledger.TxType) *TxFixture {
	fixture, err := LoadTxFixture(txType)
	if err != nil {
		panic(fmt.Sprintf("failed to load tx fixture: %s", err))
	}
	return fixture
}

// AllTxFixtures returns a fixture for every registered transaction type.
func AllTxFixtures() []*TxFixture {
	txTypes := ledger.TxTypes()
	ret := make([]*TxFixture, 0, len(txTypes))
	for _, txType := range txTypes {
		ret = append(ret, MustLoadTxFixture(txType))
	}
	return ret
}
