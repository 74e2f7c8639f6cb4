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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// readInput returns the contents of the named file, or stdin when the name is "-"
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// loadRawTx decodes a hex encoded raw transaction from the flag value or the named file
func loadRawTx(rawTx string, rawTxFile string) ([]byte, error) {
	if rawTx == "" && rawTxFile == "" {
		return nil, errors.New("you must specify -raw-tx or -raw-tx-file")
	}
	if rawTx == "" {
		data, err := readInput(rawTxFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load raw transaction file: %w", err)
		}
		rawTx = string(data)
	}
	rawTx = strings.TrimSpace(rawTx)
	if !strings.HasPrefix(rawTx, "0x") {
		rawTx = "0x" + rawTx
	}
	ret, err := hexutil.Decode(rawTx)
	if err != nil {
		return nil, fmt.Errorf("failed to decode raw transaction: %w", err)
	}
	return ret, nil
}

// loadRecord parses a JSON transaction record. Numbers are kept as json.Number so that large
// values survive
func loadRecord(txFile string) (ledger.Record, error) {
	data, err := readInput(txFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction file: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec ledger.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse transaction file: %w", err)
	}
	return rec, nil
}

// loadSigners returns a signer for each hex encoded private key, read from the flag values or
// from the named files
func loadSigners(keys []string, keyFiles []string) ([]ledger.Signer, error) {
	for _, keyFile := range keyFiles {
		data, err := readInput(keyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load key file: %w", err)
		}
		keys = append(keys, strings.TrimSpace(string(data)))
	}
	if len(keys) == 0 {
		return nil, errors.New("you must specify -key or -key-file")
	}
	ret := make([]ledger.Signer, 0, len(keys))
	for _, key := range keys {
		signer, err := ledger.NewPrivateKeySignerFromHex(key)
		if err != nil {
			return nil, err
		}
		ret = append(ret, signer)
	}
	return ret, nil
}

func printJson(val any) {
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		fmt.Printf("ERROR: failed to encode output: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// stringListFlag collects a flag that may be given more than once
type stringListFlag []string

func (l *stringListFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *stringListFlag) Set(val string) error {
	*l = append(*l, val)
	return nil
}
