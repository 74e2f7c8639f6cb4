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

// Package rlp provides RLP encoding/decoding utilities for Klaytn transactions.
//
// This package wraps github.com/ethereum/go-ethereum/rlp. The upstream
// library already rejects non-canonical input (leading zero bytes in
// integers, oversized length prefixes, single bytes wrapped in a string
// header); the helpers here add the list splitting and kind probing that
// the transaction decoder needs.
//
// # Key Types
//
//   - RawValue: Deferred decoding of an already-encoded item
//   - Kind: The kind of an encoded item (byte, string or list)
//
// # Encoding Gotchas
//
//  1. Integers are minimal big-endian; zero encodes as the empty string 0x80
//  2. A nil *big.Int encodes as zero, a negative one fails to encode
//  3. Decode fails when any input is left over after the first value
//  4. Byte strings passed through RawValue are written verbatim, so they
//     must already be valid RLP
package rlp
