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

package rlp

import (
	_rlp "github.com/ethereum/go-ethereum/rlp"
)

const (
	// Headers at or above this value start a list
	RLP_TYPE_LIST uint8 = 0xc0

	// Encoding of the empty string, used for zero integers and nil addresses
	RLP_EMPTY_STRING uint8 = 0x80
	// Encoding of the empty list
	RLP_EMPTY_LIST uint8 = 0xc0
)

// Create an alias for RawValue for convenience
type RawValue = _rlp.RawValue

// Alias for Kind for convenience
type Kind = _rlp.Kind

const (
	KindByte   = _rlp.Byte
	KindString = _rlp.String
	KindList   = _rlp.List
)

// EmptyList is the encoded empty list
var EmptyList = RawValue{RLP_EMPTY_LIST}
