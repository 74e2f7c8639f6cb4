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

package ledger

import (
	"github.com/blinklabs-io/goklaytn/ledger/common"
)

// Aliases for the shared types in the common package, so callers of the ledger package do not
// need to import both

// Hash
type Hash = common.Hash

func NewHash(data []byte) Hash {
	return common.NewHash(data)
}

// Address
type Address = common.Address

func NewAddress(addr string) (Address, error) {
	return common.NewAddress(addr)
}

// Signatures
type Signature = common.Signature
type SignatureList = common.SignatureList

// Account keys
type AccountKey = common.AccountKey
type AccountKeyNil = common.AccountKeyNil
type AccountKeyLegacy = common.AccountKeyLegacy
type AccountKeyFail = common.AccountKeyFail
type AccountKeyPublic = common.AccountKeyPublic
type AccountKeyWeightedMultisig = common.AccountKeyWeightedMultisig
type AccountKeyRoleBased = common.AccountKeyRoleBased
type WeightedPublicKey = common.WeightedPublicKey

func NewAccountKeyFromBytes(data []byte) (AccountKey, error) {
	return common.NewAccountKeyFromBytes(data)
}
