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
	"errors"
	"fmt"

	_rlp "github.com/ethereum/go-ethereum/rlp"
)

// Decode decodes a single RLP value into dest. Any data following the value is
// treated as an error
func Decode(data []byte, dest any) error {
	if len(data) == 0 {
		return errors.New("cannot decode empty input")
	}
	return _rlp.DecodeBytes(data, dest)
}

// KindOf returns the kind of the first RLP item in the provided data
func KindOf(data []byte) (Kind, error) {
	kind, _, _, err := _rlp.Split(data)
	return kind, err
}

// IsList returns true if the provided data starts with an RLP list header. This only
// looks at the first byte, so it is safe to call on data that has not been validated
func IsList(data []byte) bool {
	return len(data) > 0 && data[0] >= RLP_TYPE_LIST
}

// DecodeList splits a single RLP list into the raw encoding of each of its items.
// The input must contain exactly one list and nothing after it
func DecodeList(data []byte) ([]RawValue, error) {
	content, rest, err := _rlp.SplitList(data)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf(
			"found %d unexpected bytes after list",
			len(rest),
		)
	}
	ret := []RawValue{}
	for len(content) > 0 {
		_, _, tail, err := _rlp.Split(content)
		if err != nil {
			return nil, err
		}
		itemLen := len(content) - len(tail)
		item := make(RawValue, itemLen)
		copy(item, content[:itemLen])
		ret = append(ret, item)
		content = tail
	}
	return ret, nil
}

// DecodeBytes decodes an RLP string item and returns its content
func DecodeBytes(data []byte) ([]byte, error) {
	var ret []byte
	if err := Decode(data, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
