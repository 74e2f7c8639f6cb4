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
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/blinklabs-io/goklaytn/rlp"
	"github.com/ethereum/go-ethereum/crypto"
)

type AccountKeyType uint8

const (
	AccountKeyTypeNil              AccountKeyType = 0x00
	AccountKeyTypeLegacy           AccountKeyType = 0x01
	AccountKeyTypePublic           AccountKeyType = 0x02
	AccountKeyTypeFail             AccountKeyType = 0x03
	AccountKeyTypeWeightedMultisig AccountKeyType = 0x04
	AccountKeyTypeRoleBased        AccountKeyType = 0x05
)

const (
	MaxMultisigKeys = 10

	RoleTransaction   = 0
	RoleAccountUpdate = 1
	RoleFeePayer      = 2
	RoleCount         = 3

	compressedPublicKeySize   = 33
	uncompressedPublicKeySize = 65
)

// AccountKey is the key scheme installed on an account by an account update transaction
type AccountKey interface {
	Type() AccountKeyType
	// Bytes returns the wire encoding: the key type byte followed by the RLP encoded key
	Bytes() ([]byte, error)
	Validate() error
	Equal(AccountKey) bool
}

// AccountKeyNil marks an unset role inside a role-based key
type AccountKeyNil struct{}

func (AccountKeyNil) Type() AccountKeyType { return AccountKeyTypeNil }

func (AccountKeyNil) Bytes() ([]byte, error) {
	return []byte{rlp.RLP_EMPTY_STRING}, nil
}

func (AccountKeyNil) Validate() error { return nil }

func (AccountKeyNil) Equal(other AccountKey) bool {
	return other == nil || other.Type() == AccountKeyTypeNil
}

// AccountKeyLegacy means the account is controlled by the key its address was derived from
type AccountKeyLegacy struct{}

func (AccountKeyLegacy) Type() AccountKeyType { return AccountKeyTypeLegacy }

func (AccountKeyLegacy) Bytes() ([]byte, error) {
	return []byte{byte(AccountKeyTypeLegacy), rlp.RLP_EMPTY_LIST}, nil
}

func (AccountKeyLegacy) Validate() error { return nil }

func (AccountKeyLegacy) Equal(other AccountKey) bool {
	return other != nil && other.Type() == AccountKeyTypeLegacy
}

// AccountKeyFail makes every transaction from the account fail
type AccountKeyFail struct{}

func (AccountKeyFail) Type() AccountKeyType { return AccountKeyTypeFail }

func (AccountKeyFail) Bytes() ([]byte, error) {
	return []byte{byte(AccountKeyTypeFail), rlp.RLP_EMPTY_LIST}, nil
}

func (AccountKeyFail) Validate() error { return nil }

func (AccountKeyFail) Equal(other AccountKey) bool {
	return other != nil && other.Type() == AccountKeyTypeFail
}

// AccountKeyPublic controls the account with a single public key
type AccountKeyPublic struct {
	PublicKey *ecdsa.PublicKey
}

func (AccountKeyPublic) Type() AccountKeyType { return AccountKeyTypePublic }

func (k AccountKeyPublic) Bytes() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	encoded, err := rlp.Encode(crypto.CompressPubkey(k.PublicKey))
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(AccountKeyTypePublic)}, encoded...), nil
}

func (k AccountKeyPublic) Validate() error {
	if k.PublicKey == nil {
		return errors.New("missing public key")
	}
	return nil
}

func (k AccountKeyPublic) Equal(other AccountKey) bool {
	tmpKey, ok := other.(AccountKeyPublic)
	if !ok {
		return false
	}
	return publicKeyEqual(k.PublicKey, tmpKey.PublicKey)
}

type WeightedPublicKey struct {
	Weight    uint
	PublicKey *ecdsa.PublicKey
}

// AccountKeyWeightedMultisig controls the account with a weighted set of keys. A transaction
// is authorized once the weights of its signers reach the threshold
type AccountKeyWeightedMultisig struct {
	Threshold uint
	Keys      []WeightedPublicKey
}

type weightedPublicKeyRlp struct {
	Weight uint
	Key    []byte
}

type weightedMultisigRlp struct {
	Threshold uint
	Keys      []weightedPublicKeyRlp
}

func (AccountKeyWeightedMultisig) Type() AccountKeyType {
	return AccountKeyTypeWeightedMultisig
}

func (k AccountKeyWeightedMultisig) Bytes() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	tmpKey := weightedMultisigRlp{
		Threshold: k.Threshold,
		Keys:      make([]weightedPublicKeyRlp, 0, len(k.Keys)),
	}
	for _, key := range k.Keys {
		tmpKey.Keys = append(
			tmpKey.Keys,
			weightedPublicKeyRlp{
				Weight: key.Weight,
				Key:    crypto.CompressPubkey(key.PublicKey),
			},
		)
	}
	encoded, err := rlp.Encode(tmpKey)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(AccountKeyTypeWeightedMultisig)}, encoded...), nil
}

func (k AccountKeyWeightedMultisig) Validate() error {
	if k.Threshold == 0 {
		return errors.New("threshold must be greater than zero")
	}
	if len(k.Keys) == 0 {
		return errors.New("no keys provided")
	}
	if len(k.Keys) > MaxMultisigKeys {
		return fmt.Errorf(
			"too many keys: maximum is %d, got %d",
			MaxMultisigKeys,
			len(k.Keys),
		)
	}
	var weightSum uint64
	seen := make(map[string]struct{}, len(k.Keys))
	for idx, key := range k.Keys {
		if key.PublicKey == nil {
			return fmt.Errorf("key %d: missing public key", idx)
		}
		if key.Weight == 0 {
			return fmt.Errorf("key %d: weight must be greater than zero", idx)
		}
		compressed := string(crypto.CompressPubkey(key.PublicKey))
		if _, ok := seen[compressed]; ok {
			return fmt.Errorf("key %d: duplicate public key", idx)
		}
		seen[compressed] = struct{}{}
		weightSum += uint64(key.Weight)
	}
	if uint64(k.Threshold) > weightSum {
		return fmt.Errorf(
			"threshold %d exceeds the sum of weights %d",
			k.Threshold,
			weightSum,
		)
	}
	return nil
}

func (k AccountKeyWeightedMultisig) Equal(other AccountKey) bool {
	tmpKey, ok := other.(AccountKeyWeightedMultisig)
	if !ok {
		return false
	}
	if k.Threshold != tmpKey.Threshold || len(k.Keys) != len(tmpKey.Keys) {
		return false
	}
	for idx := range k.Keys {
		if k.Keys[idx].Weight != tmpKey.Keys[idx].Weight {
			return false
		}
		if !publicKeyEqual(k.Keys[idx].PublicKey, tmpKey.Keys[idx].PublicKey) {
			return false
		}
	}
	return true
}

// AccountKeyRoleBased assigns a separate key to each role. Unset roles are nil
type AccountKeyRoleBased struct {
	Keys [RoleCount]AccountKey
}

func (AccountKeyRoleBased) Type() AccountKeyType { return AccountKeyTypeRoleBased }

func (k AccountKeyRoleBased) Bytes() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	roles := make([]any, 0, RoleCount)
	for _, key := range k.Keys {
		if key == nil {
			key = AccountKeyNil{}
		}
		keyBytes, err := key.Bytes()
		if err != nil {
			return nil, err
		}
		roles = append(roles, keyBytes)
	}
	return rlp.EncodeWithPrefix([]byte{byte(AccountKeyTypeRoleBased)}, roles...)
}

func (k AccountKeyRoleBased) Validate() error {
	hasKey := false
	for idx, key := range k.Keys {
		if key == nil || key.Type() == AccountKeyTypeNil {
			continue
		}
		if key.Type() == AccountKeyTypeRoleBased {
			return fmt.Errorf("role %d: role-based keys cannot be nested", idx)
		}
		if err := key.Validate(); err != nil {
			return fmt.Errorf("role %d: %w", idx, err)
		}
		hasKey = true
	}
	if !hasKey {
		return errors.New("no role keys provided")
	}
	return nil
}

func (k AccountKeyRoleBased) Equal(other AccountKey) bool {
	tmpKey, ok := other.(AccountKeyRoleBased)
	if !ok {
		return false
	}
	for idx := range k.Keys {
		var tmpRole AccountKey = AccountKeyNil{}
		if tmpKey.Keys[idx] != nil {
			tmpRole = tmpKey.Keys[idx]
		}
		if k.Keys[idx] == nil {
			if tmpRole.Type() != AccountKeyTypeNil {
				return false
			}
			continue
		}
		if !k.Keys[idx].Equal(tmpRole) {
			return false
		}
	}
	return true
}

// NewAccountKeyFromBytes decodes the wire encoding of an account key
func NewAccountKeyFromBytes(data []byte) (AccountKey, error) {
	return decodeAccountKey(data, true)
}

func decodeAccountKey(data []byte, allowRoleBased bool) (AccountKey, error) {
	if len(data) == 0 {
		return nil, errors.New("empty account key")
	}
	if len(data) == 1 && data[0] == rlp.RLP_EMPTY_STRING {
		return AccountKeyNil{}, nil
	}
	keyType := AccountKeyType(data[0])
	keyData := data[1:]
	switch keyType {
	case AccountKeyTypeLegacy:
		if !bytes.Equal(keyData, rlp.EmptyList) {
			return nil, errors.New("legacy account key must be an empty list")
		}
		return AccountKeyLegacy{}, nil
	case AccountKeyTypeFail:
		if !bytes.Equal(keyData, rlp.EmptyList) {
			return nil, errors.New("fail account key must be an empty list")
		}
		return AccountKeyFail{}, nil
	case AccountKeyTypePublic:
		keyBytes, err := rlp.DecodeBytes(keyData)
		if err != nil {
			return nil, fmt.Errorf("public account key: %w", err)
		}
		pubKey, err := decodeCompressedPublicKey(keyBytes)
		if err != nil {
			return nil, err
		}
		return AccountKeyPublic{PublicKey: pubKey}, nil
	case AccountKeyTypeWeightedMultisig:
		var tmpKey weightedMultisigRlp
		if err := rlp.Decode(keyData, &tmpKey); err != nil {
			return nil, fmt.Errorf("weighted multisig account key: %w", err)
		}
		ret := AccountKeyWeightedMultisig{
			Threshold: tmpKey.Threshold,
			Keys:      make([]WeightedPublicKey, 0, len(tmpKey.Keys)),
		}
		for idx, key := range tmpKey.Keys {
			pubKey, err := decodeCompressedPublicKey(key.Key)
			if err != nil {
				return nil, fmt.Errorf("multisig key %d: %w", idx, err)
			}
			ret.Keys = append(
				ret.Keys,
				WeightedPublicKey{Weight: key.Weight, PublicKey: pubKey},
			)
		}
		return ret, nil
	case AccountKeyTypeRoleBased:
		if !allowRoleBased {
			return nil, errors.New("role-based keys cannot be nested")
		}
		var roles [][]byte
		if err := rlp.Decode(keyData, &roles); err != nil {
			return nil, fmt.Errorf("role-based account key: %w", err)
		}
		if len(roles) == 0 || len(roles) > RoleCount {
			return nil, fmt.Errorf(
				"role-based account key must have between 1 and %d roles, found %d",
				RoleCount,
				len(roles),
			)
		}
		ret := AccountKeyRoleBased{}
		for idx, roleData := range roles {
			roleKey, err := decodeAccountKey(roleData, false)
			if err != nil {
				return nil, fmt.Errorf("role %d: %w", idx, err)
			}
			if roleKey.Type() != AccountKeyTypeNil {
				ret.Keys[idx] = roleKey
			}
		}
		return ret, nil
	}
	return nil, fmt.Errorf("unknown account key type: %d", keyType)
}

// ParsePublicKey accepts a secp256k1 public key in compressed (33 bytes), uncompressed
// (65 bytes) or bare X || Y (64 bytes) form
func ParsePublicKey(data []byte) (*ecdsa.PublicKey, error) {
	switch len(data) {
	case compressedPublicKeySize:
		return decodeCompressedPublicKey(data)
	case uncompressedPublicKeySize - 1:
		return crypto.UnmarshalPubkey(append([]byte{0x04}, data...))
	case uncompressedPublicKeySize:
		return crypto.UnmarshalPubkey(data)
	}
	return nil, fmt.Errorf("invalid public key length %d", len(data))
}

// CompressPublicKey returns the 33-byte compressed form of a public key
func CompressPublicKey(pubKey *ecdsa.PublicKey) []byte {
	return crypto.CompressPubkey(pubKey)
}

func decodeCompressedPublicKey(data []byte) (*ecdsa.PublicKey, error) {
	if len(data) != compressedPublicKeySize {
		return nil, fmt.Errorf(
			"invalid compressed public key length: expected %d bytes, got %d",
			compressedPublicKeySize,
			len(data),
		)
	}
	return crypto.DecompressPubkey(data)
}

func publicKeyEqual(a, b *ecdsa.PublicKey) bool {
	if a == nil || b == nil {
		return a == b
	}
	return bytes.Equal(crypto.CompressPubkey(a), crypto.CompressPubkey(b))
}
