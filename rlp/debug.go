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
	"encoding/hex"
	"fmt"
	"math/big"
)

// DumpStructure returns a human readable outline of an RLP value. Short strings are shown as
// hex along with their integer value, longer ones by length. Invalid encodings are reported
// inline at the point where they occur
func DumpStructure(data []byte, prefix string) string {
	var ret bytes.Buffer
	dumpStructure(&ret, data, prefix)
	return ret.String()
}

func dumpStructure(ret *bytes.Buffer, data []byte, prefix string) {
	kind, err := KindOf(data)
	if err != nil {
		fmt.Fprintf(ret, "%s<invalid: %s>,\n", prefix, err)
		return
	}
	switch kind {
	case KindByte:
		fmt.Fprintf(ret, "%s0x%02x (%d),\n", prefix, data[0], data[0])
		return
	case KindString:
		val, err := DecodeBytes(data)
		if err != nil {
			fmt.Fprintf(ret, "%s<invalid: %s>,\n", prefix, err)
			return
		}
		switch {
		case len(val) == 0:
			fmt.Fprintf(ret, "%s<empty>,\n", prefix)
		case len(val) <= 8:
			fmt.Fprintf(
				ret,
				"%s0x%s (%s),\n",
				prefix,
				hex.EncodeToString(val),
				new(big.Int).SetBytes(val).String(),
			)
		case len(val) <= 32:
			fmt.Fprintf(ret, "%s0x%s,\n", prefix, hex.EncodeToString(val))
		default:
			fmt.Fprintf(ret, "%s<bytes> (length %d),\n", prefix, len(val))
		}
		return
	}
	items, err := DecodeList(data)
	if err != nil {
		fmt.Fprintf(ret, "%s<invalid: %s>,\n", prefix, err)
		return
	}
	fmt.Fprintf(ret, "%s[\n", prefix)
	for _, item := range items {
		dumpStructure(ret, item, "  "+prefix)
	}
	fmt.Fprintf(ret, "%s],\n", prefix)
}
