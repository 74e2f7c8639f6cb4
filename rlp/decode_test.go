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

package rlp_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/goklaytn/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	testDefs := []struct {
		name        string
		rlpHex      string
		expected    []string
		expectError bool
	}{
		{
			name:     "Empty",
			rlpHex:   "c0",
			expected: []string{},
		},
		{
			name:     "Mixed",
			rlpHex:   "c80f8204d2c30180c0",
			expected: []string{"0f", "8204d2", "c30180c0"},
		},
		{
			name:        "TrailingBytes",
			rlpHex:      "c20102ff",
			expectError: true,
		},
		{
			name:        "NotAList",
			rlpHex:      "820102",
			expectError: true,
		},
		{
			name:        "Truncated",
			rlpHex:      "c501020304",
			expectError: true,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := hex.DecodeString(testDef.rlpHex)
			require.NoError(t, err)
			items, err := rlp.DecodeList(data)
			if testDef.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, items, len(testDef.expected))
			for idx, item := range items {
				assert.Equal(t, testDef.expected[idx], hex.EncodeToString(item))
			}
		})
	}
}

func TestDecodeRejectsNonCanonical(t *testing.T) {
	testDefs := []struct {
		name   string
		rlpHex string
	}{
		// Integer with a leading zero byte
		{name: "LeadingZero", rlpHex: "82000f"},
		// Single byte below 0x80 wrapped in a string header
		{name: "WrappedSingleByte", rlpHex: "810f"},
		// Zero encoded as 0x00 instead of the empty string
		{name: "ZeroByte", rlpHex: "00"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, _ := hex.DecodeString(testDef.rlpHex)
			var dest uint64
			assert.Error(t, rlp.Decode(data, &dest))
		})
	}
}

func TestDecodeTrailingData(t *testing.T) {
	var dest uint64
	assert.Error(t, rlp.Decode([]byte{0x0f, 0x0f}, &dest))
	assert.Error(t, rlp.Decode(nil, &dest))
}

func TestKindOf(t *testing.T) {
	kind, err := rlp.KindOf([]byte{0xc0})
	require.NoError(t, err)
	assert.Equal(t, rlp.KindList, kind)
	kind, err = rlp.KindOf([]byte{0x82, 0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, rlp.KindString, kind)
	kind, err = rlp.KindOf([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, rlp.KindByte, kind)
	assert.True(t, rlp.IsList([]byte{0xc0}))
	assert.False(t, rlp.IsList([]byte{0x80}))
}
