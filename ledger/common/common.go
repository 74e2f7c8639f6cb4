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

package common

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

const (
	HashSize = 32
)

type Hash [HashSize]byte

func NewHash(data []byte) Hash {
	h := Hash{}
	copy(h[:], data)
	return h
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// Keccak256Hash generates a Keccak-256 hash (the pre-standard SHA-3 variant) over the
// concatenation of the provided data
func Keccak256Hash(data ...[]byte) Hash {
	tmpHash := sha3.NewLegacyKeccak256()
	for _, d := range data {
		tmpHash.Write(d)
	}
	return Hash(tmpHash.Sum(nil))
}

// CheckUint256 returns an error if the provided value is negative or does not fit in 256 bits
func CheckUint256(val *big.Int) error {
	if val == nil {
		return nil
	}
	if val.Sign() < 0 {
		return fmt.Errorf("negative value %s", val.String())
	}
	if _, overflow := uint256.FromBig(val); overflow {
		return fmt.Errorf("value %s exceeds 256 bits", val.String())
	}
	return nil
}

// BigEqual compares two integers, treating nil as zero
func BigEqual(a, b *big.Int) bool {
	if a == nil {
		a = new(big.Int)
	}
	if b == nil {
		b = new(big.Int)
	}
	return a.Cmp(b) == 0
}

// CopyBig returns a copy of the provided integer, preserving nil
func CopyBig(val *big.Int) *big.Int {
	if val == nil {
		return nil
	}
	return new(big.Int).Set(val)
}
