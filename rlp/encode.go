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
	"bytes"

	_rlp "github.com/ethereum/go-ethereum/rlp"
)

func Encode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := _rlp.Encode(buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeList encodes the provided items as a single RLP list. Items which are
// already encoded should be passed as RawValue
func EncodeList(items ...any) ([]byte, error) {
	return Encode(items)
}

// EncodeWithPrefix encodes the provided items as an RLP list and prepends the
// given prefix bytes. This is the layout of typed transactions and account keys,
// which carry a one byte type tag in front of an RLP list
func EncodeWithPrefix(prefix []byte, items ...any) ([]byte, error) {
	list, err := EncodeList(items...)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, 0, len(prefix)+len(list))
	ret = append(ret, prefix...)
	ret = append(ret, list...)
	return ret, nil
}
