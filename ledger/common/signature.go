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
	"errors"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/goklaytn/rlp"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// Size of a raw signature as produced by a secp256k1 signer: R || S || recovery id
	RawSignatureSize = 65

	// Offsets used to fold the chain ID into V (EIP-155 style)
	signatureChainIdOffset = 35
	signatureLegacyOffset  = 27
)

// Signature is a single [V, R, S] triple. V carries the recovery ID folded together with the
// chain ID, so the signer can be recovered from the triple and the signing hash alone
type Signature struct {
	V *big.Int
	R *big.Int
	S *big.Int
}

// NewSignature builds a signature triple from a 65-byte raw signature. A nil chain ID produces
// an unprotected V of 27 or 28
func NewSignature(rawSig []byte, chainId *big.Int) (Signature, error) {
	if len(rawSig) != RawSignatureSize {
		return Signature{}, fmt.Errorf(
			"invalid raw signature length: expected %d bytes, got %d",
			RawSignatureSize,
			len(rawSig),
		)
	}
	recoveryId := rawSig[RawSignatureSize-1]
	if recoveryId > 1 {
		return Signature{}, fmt.Errorf("invalid recovery ID %d", recoveryId)
	}
	v := new(big.Int).SetUint64(uint64(recoveryId))
	if chainId == nil {
		v.Add(v, big.NewInt(signatureLegacyOffset))
	} else {
		v.Add(v, new(big.Int).Mul(chainId, big.NewInt(2)))
		v.Add(v, big.NewInt(signatureChainIdOffset))
	}
	return Signature{
		V: v,
		R: new(big.Int).SetBytes(rawSig[0:32]),
		S: new(big.Int).SetBytes(rawSig[32:64]),
	}, nil
}

// RecoveryId extracts the recovery ID from V, checking that V was produced for the given chain ID
func (s Signature) RecoveryId(chainId *big.Int) (byte, error) {
	if s.V == nil {
		return 0, errors.New("missing V")
	}
	tmpV := new(big.Int).Set(s.V)
	if chainId == nil {
		tmpV.Sub(tmpV, big.NewInt(signatureLegacyOffset))
	} else {
		tmpV.Sub(tmpV, big.NewInt(signatureChainIdOffset))
		tmpV.Sub(tmpV, new(big.Int).Mul(chainId, big.NewInt(2)))
	}
	if tmpV.Sign() < 0 || tmpV.Cmp(big.NewInt(1)) > 0 {
		return 0, fmt.Errorf(
			"V value %s does not belong to chain ID %s",
			s.V.String(),
			chainIdString(chainId),
		)
	}
	return byte(tmpV.Uint64()), nil
}

// ChainId derives the chain ID folded into V. It returns nil for unprotected signatures
func (s Signature) ChainId() *big.Int {
	if s.V == nil || s.V.Cmp(big.NewInt(signatureChainIdOffset)) < 0 {
		return nil
	}
	tmpV := new(big.Int).Sub(s.V, big.NewInt(signatureChainIdOffset))
	return tmpV.Rsh(tmpV, 1)
}

// RawBytes returns the 65-byte R || S || recovery ID form used for public key recovery
func (s Signature) RawBytes(chainId *big.Int) ([]byte, error) {
	recoveryId, err := s.RecoveryId(chainId)
	if err != nil {
		return nil, err
	}
	if s.R == nil || s.S == nil {
		return nil, errors.New("missing R or S")
	}
	if s.R.BitLen() > 256 || s.S.BitLen() > 256 {
		return nil, errors.New("R or S exceeds 256 bits")
	}
	ret := make([]byte, RawSignatureSize)
	s.R.FillBytes(ret[0:32])
	s.S.FillBytes(ret[32:64])
	ret[64] = recoveryId
	return ret, nil
}

// IsEmpty returns true when the signature carries no R and S values
func (s Signature) IsEmpty() bool {
	return (s.R == nil || s.R.Sign() == 0) && (s.S == nil || s.S.Sign() == 0)
}

func (s Signature) Equal(other Signature) bool {
	return BigEqual(s.V, other.V) &&
		BigEqual(s.R, other.R) &&
		BigEqual(s.S, other.S)
}

func (s Signature) Copy() Signature {
	return Signature{
		V: CopyBig(s.V),
		R: CopyBig(s.R),
		S: CopyBig(s.S),
	}
}

// Validate checks that all values fit the wire format
func (s Signature) Validate() error {
	for _, val := range []*big.Int{s.V, s.R, s.S} {
		if err := CheckUint256(val); err != nil {
			return err
		}
	}
	return nil
}

// Hex returns the signature as [V, R, S] hex strings
func (s Signature) Hex() []string {
	return []string{
		hexutil.EncodeBig(bigOrZero(s.V)),
		hexutil.EncodeBig(bigOrZero(s.R)),
		hexutil.EncodeBig(bigOrZero(s.S)),
	}
}

// SignatureList holds one or more signatures. It always encodes as a list of triples
type SignatureList []Signature

// PlaceholderFeePayerSignatures is written in place of the fee payer signatures of a
// fee-delegated transaction that has not been signed by a fee payer yet
var PlaceholderFeePayerSignatures = SignatureList{
	{V: big.NewInt(1), R: new(big.Int), S: new(big.Int)},
}

// DecodeSignatureList decodes a signature section. Two shapes are accepted: a flat
// [V, R, S] list, which is a single signature in the older wire format, and a list
// of [V, R, S] lists
func DecodeSignatureList(data []byte) (SignatureList, error) {
	items, err := rlp.DecodeList(data)
	if err != nil {
		return nil, MalformedEncodingError{Context: "signature list", Err: err}
	}
	if len(items) == 0 {
		return SignatureList{}, nil
	}
	if !rlp.IsList(items[0]) {
		if len(items) != 3 {
			return nil, MalformedEncodingError{
				Context: fmt.Sprintf(
					"single signature must have 3 values, found %d",
					len(items),
				),
			}
		}
		var sig Signature
		if err := rlp.Decode(data, &sig); err != nil {
			return nil, MalformedEncodingError{Context: "signature", Err: err}
		}
		return SignatureList{sig}, nil
	}
	ret := make(SignatureList, 0, len(items))
	for idx, item := range items {
		if !rlp.IsList(item) {
			return nil, MalformedEncodingError{
				Context: fmt.Sprintf("signature %d is not a list", idx),
			}
		}
		var sig Signature
		if err := rlp.Decode(item, &sig); err != nil {
			return nil, MalformedEncodingError{
				Context: fmt.Sprintf("signature %d", idx),
				Err:     err,
			}
		}
		ret = append(ret, sig)
	}
	return ret, nil
}

// IsPlaceholder returns true for the signature list written before a fee payer has signed
func (l SignatureList) IsPlaceholder() bool {
	if len(l) == 0 {
		return true
	}
	for _, sig := range l {
		if !sig.IsEmpty() {
			return false
		}
	}
	return true
}

func (l SignatureList) Equal(other SignatureList) bool {
	if len(l) != len(other) {
		return false
	}
	for idx := range l {
		if !l[idx].Equal(other[idx]) {
			return false
		}
	}
	return true
}

func (l SignatureList) Contains(sig Signature) bool {
	for _, tmpSig := range l {
		if tmpSig.Equal(sig) {
			return true
		}
	}
	return false
}

func (l SignatureList) Copy() SignatureList {
	if l == nil {
		return nil
	}
	ret := make(SignatureList, len(l))
	for idx, sig := range l {
		ret[idx] = sig.Copy()
	}
	return ret
}

func chainIdString(chainId *big.Int) string {
	if chainId == nil {
		return "<none>"
	}
	return chainId.String()
}

func bigOrZero(val *big.Int) *big.Int {
	if val == nil {
		return new(big.Int)
	}
	return val
}
