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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	AddressSize = 20
)

type Address [AddressSize]byte

// NewAddress returns an Address based on the provided hex string. The 0x prefix is optional
// and the hex digits may use any case
func NewAddress(addr string) (Address, error) {
	tmpAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X")
	if len(tmpAddr) != AddressSize*2 {
		return Address{}, fmt.Errorf(
			"invalid address length: expected %d hex characters, got %d",
			AddressSize*2,
			len(tmpAddr),
		)
	}
	decoded, err := hex.DecodeString(tmpAddr)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address hex: %w", err)
	}
	return NewAddressFromBytes(decoded)
}

// NewAddressFromBytes returns an Address based on the raw bytes provided
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	if len(addrBytes) != AddressSize {
		return Address{}, fmt.Errorf(
			"invalid address length: expected %d bytes, got %d",
			AddressSize,
			len(addrBytes),
		)
	}
	var ret Address
	copy(ret[:], addrBytes)
	return ret, nil
}

// NewAddressFromEth converts an address from the go-ethereum representation
func NewAddressFromEth(addr ethcommon.Address) Address {
	return Address(addr)
}

func (a Address) Bytes() []byte {
	return a[:]
}

// Eth returns the address in the go-ethereum representation
func (a Address) Eth() ethcommon.Address {
	return ethcommon.Address(a)
}

// IsZero returns true for the all-zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

// String returns the EIP-55 mixed-case checksum form of the address
func (a Address) String() string {
	return a.Eth().Hex()
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var tmpAddr string
	if err := json.Unmarshal(data, &tmpAddr); err != nil {
		return err
	}
	if tmpAddr == "" {
		return errors.New("empty address")
	}
	addr, err := NewAddress(tmpAddr)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// CopyAddressPtr returns a copy of the provided address pointer, preserving nil
func CopyAddressPtr(a *Address) *Address {
	if a == nil {
		return nil
	}
	tmp := *a
	return &tmp
}
