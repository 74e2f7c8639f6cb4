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
	"errors"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/goklaytn/ledger/common"
	"github.com/blinklabs-io/goklaytn/rlp"
)

// wireField moves one body field between a Transaction and its RLP item
type wireField struct {
	name   string
	encode func(tx *Transaction) (any, error)
	decode func(tx *Transaction, data []byte) error
}

var (
	wireNonce = wireField{
		name: FieldNonce,
		encode: func(tx *Transaction) (any, error) {
			return tx.Nonce, nil
		},
		decode: func(tx *Transaction, data []byte) error {
			return rlp.Decode(data, &tx.Nonce)
		},
	}
	wireGasPrice = wireField{
		name: FieldGasPrice,
		encode: func(tx *Transaction) (any, error) {
			return wireBig(tx.GasPrice)
		},
		decode: func(tx *Transaction, data []byte) error {
			return rlp.Decode(data, &tx.GasPrice)
		},
	}
	wireGas = wireField{
		name: FieldGas,
		encode: func(tx *Transaction) (any, error) {
			return tx.Gas, nil
		},
		decode: func(tx *Transaction, data []byte) error {
			return rlp.Decode(data, &tx.Gas)
		},
	}
	// A missing recipient encodes as the empty string
	wireTo = wireField{
		name: FieldTo,
		encode: func(tx *Transaction) (any, error) {
			if tx.To == nil {
				return []byte{}, nil
			}
			return tx.To.Bytes(), nil
		},
		decode: func(tx *Transaction, data []byte) error {
			addrBytes, err := rlp.DecodeBytes(data)
			if err != nil {
				return err
			}
			if len(addrBytes) == 0 {
				tx.To = nil
				return nil
			}
			addr, err := common.NewAddressFromBytes(addrBytes)
			if err != nil {
				return err
			}
			tx.To = &addr
			return nil
		},
	}
	wireValue = wireField{
		name: FieldValue,
		encode: func(tx *Transaction) (any, error) {
			return wireBig(tx.Value)
		},
		decode: func(tx *Transaction, data []byte) error {
			return rlp.Decode(data, &tx.Value)
		},
	}
	wireFrom = wireField{
		name: FieldFrom,
		encode: func(tx *Transaction) (any, error) {
			return tx.From.Bytes(), nil
		},
		decode: func(tx *Transaction, data []byte) error {
			addrBytes, err := rlp.DecodeBytes(data)
			if err != nil {
				return err
			}
			tx.From, err = common.NewAddressFromBytes(addrBytes)
			return err
		},
	}
	wireData = wireField{
		name: FieldData,
		encode: func(tx *Transaction) (any, error) {
			if tx.Data == nil {
				return []byte{}, nil
			}
			return tx.Data, nil
		},
		decode: func(tx *Transaction, data []byte) error {
			tmpData, err := rlp.DecodeBytes(data)
			if err != nil {
				return err
			}
			// Present but empty data stays distinguishable from absent data
			if tmpData == nil {
				tmpData = []byte{}
			}
			tx.Data = tmpData
			return nil
		},
	}
	wireHumanReadable = wireField{
		name: FieldHumanReadable,
		encode: func(tx *Transaction) (any, error) {
			return tx.HumanReadable, nil
		},
		decode: func(tx *Transaction, data []byte) error {
			return rlp.Decode(data, &tx.HumanReadable)
		},
	}
	wireFeeRatio = wireField{
		name: FieldFeeRatio,
		encode: func(tx *Transaction) (any, error) {
			return uint64(tx.FeeRatio), nil
		},
		decode: func(tx *Transaction, data []byte) error {
			return rlp.Decode(data, &tx.FeeRatio)
		},
	}
	wireCodeFormat = wireField{
		name: FieldCodeFormat,
		encode: func(tx *Transaction) (any, error) {
			return uint64(tx.CodeFormat), nil
		},
		decode: func(tx *Transaction, data []byte) error {
			return rlp.Decode(data, &tx.CodeFormat)
		},
	}
	// The account key travels as a byte string holding its own encoding
	wireAccountKey = wireField{
		name: FieldAccountKey,
		encode: func(tx *Transaction) (any, error) {
			if tx.Key == nil {
				return nil, errors.New("no account key")
			}
			return tx.Key.Bytes()
		},
		decode: func(tx *Transaction, data []byte) error {
			keyBytes, err := rlp.DecodeBytes(data)
			if err != nil {
				return err
			}
			tx.Key, err = common.NewAccountKeyFromBytes(keyBytes)
			return err
		},
	}
)

func wireBig(val *big.Int) (any, error) {
	if val == nil {
		return new(big.Int), nil
	}
	if val.Sign() < 0 {
		return nil, fmt.Errorf("negative value %s", val.String())
	}
	return val, nil
}
