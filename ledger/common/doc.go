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

// Package common provides the shared types used by the transaction codec.
//
// # Key Files by Purpose
//
// Core Types:
//   - common.go: Hash, Keccak-256 hashing and 256-bit integer helpers
//   - address.go: 20 byte account addresses with EIP-55 checksum text form
//   - signature.go: Signature and SignatureList, in both RLP layouts
//   - accountkey.go: AccountKey variants and their RLP encoding
//
// Errors:
//   - errors.go: Error types shared by validation, encoding, decoding, and signing
//
// Every error type has a matching sentinel in errors.go for use with errors.Is.
package common
