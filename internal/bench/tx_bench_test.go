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

package bench

import (
	"context"
	"testing"

	"github.com/blinklabs-io/goklaytn/ledger"
)

// benchSink prevents compiler dead-code elimination in benchmarks.
var benchSink any

// BenchmarkTxDecode benchmarks raw transaction decoding by type.
func BenchmarkTxDecode(b *testing.B) {
	for _, fixture := range AllTxFixtures() {
		b.Run("Type_"+fixture.Name, func(b *testing.B) {
			// Pre-validate that decoding succeeds before measuring
			tx, err := ledger.DecodeRawTransaction(fixture.Raw)
			if err != nil {
				b.Fatalf("DecodeRawTransaction failed for %s: %v", fixture.Name, err)
			}
			benchSink = tx

			b.SetBytes(int64(len(fixture.Raw)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = ledger.DecodeRawTransaction(fixture.Raw)
			}
		})
	}
}

// BenchmarkTxEncode benchmarks signed transaction encoding, including validation.
func BenchmarkTxEncode(b *testing.B) {
	for _, fixture := range AllTxFixtures() {
		b.Run("Type_"+fixture.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = ledger.EncodeSigned(fixture.Tx)
			}
		})
	}
}

// BenchmarkTxHash benchmarks transaction hash calculation.
func BenchmarkTxHash(b *testing.B) {
	for _, fixture := range AllTxFixtures() {
		b.Run("Type_"+fixture.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = fixture.Tx.Hash()
			}
		})
	}
}

// BenchmarkTxSign benchmarks sender signing, which covers hashing and ECDSA signing.
func BenchmarkTxSign(b *testing.B) {
	ctx := context.Background()
	signer := BenchSenderSigner()
	for _, fixture := range AllTxFixtures() {
		b.Run("Type_"+fixture.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = ledger.SignTransaction(ctx, fixture.Unsigned, signer)
			}
		})
	}
}

// BenchmarkTxVerify benchmarks sender signature verification.
func BenchmarkTxVerify(b *testing.B) {
	for _, fixture := range AllTxFixtures() {
		b.Run("Type_"+fixture.Name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = ledger.VerifySenderSignatures(fixture.Tx)
			}
		})
	}
}
