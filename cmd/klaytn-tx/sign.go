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
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/goklaytn"
	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type signFlags struct {
	flagset   *flag.FlagSet
	txFile    string
	rawTx     string
	rawTxFile string
	feePayer  string
	keys      stringListFlag
	keyFiles  stringListFlag
}

func newSignFlags(name string) *signFlags {
	f := &signFlags{
		flagset: flag.NewFlagSet(name, flag.ExitOnError),
	}
	f.flagset.Var(
		&f.keys,
		"key",
		"hex encoded private key to sign with (may be repeated)",
	)
	f.flagset.Var(
		&f.keyFiles,
		"key-file",
		"path to a file containing a hex encoded private key (may be repeated)",
	)
	return f
}

type signOutput struct {
	RawTransaction  string        `json:"rawTransaction"`
	TransactionHash string        `json:"transactionHash"`
	Transaction     ledger.Record `json:"transaction"`
}

func newSignOutput(tx *ledger.Transaction, raw []byte) signOutput {
	ret := signOutput{
		RawTransaction: hexutil.Encode(raw),
		Transaction:    tx.Record(),
	}
	if txHash, err := tx.Hash(); err == nil {
		ret.TransactionHash = txHash.String()
	}
	return ret
}

func runSign(f *globalFlags, signer *klaytn.TxSigner) {
	signFlags := newSignFlags("sign")
	signFlags.flagset.StringVar(
		&signFlags.txFile,
		"tx-file",
		"-",
		"path to the JSON transaction file to sign (- for stdin)",
	)
	err := signFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	signers, err := loadSigners(signFlags.keys, signFlags.keyFiles)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	rec, err := loadRecord(signFlags.txFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	tx, raw, err := signer.SignRecord(context.Background(), rec, signers...)
	if err != nil {
		fmt.Printf("ERROR: failed to sign transaction: %s\n", err)
		os.Exit(1)
	}
	printJson(newSignOutput(tx, raw))
}

func runFeePayerSign(f *globalFlags, signer *klaytn.TxSigner) {
	signFlags := newSignFlags("fee-payer-sign")
	signFlags.flagset.StringVar(
		&signFlags.rawTx,
		"raw-tx",
		"",
		"hex encoded raw transaction signed by the sender",
	)
	signFlags.flagset.StringVar(
		&signFlags.rawTxFile,
		"raw-tx-file",
		"",
		"path to a file containing a hex encoded raw transaction (- for stdin)",
	)
	signFlags.flagset.StringVar(
		&signFlags.feePayer,
		"fee-payer",
		"",
		"fee payer address",
	)
	err := signFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if signFlags.feePayer == "" {
		fmt.Printf("you must specify -fee-payer\n")
		os.Exit(1)
	}
	feePayer, err := ledger.NewAddress(signFlags.feePayer)
	if err != nil {
		fmt.Printf("ERROR: invalid fee payer address: %s\n", err)
		os.Exit(1)
	}
	signers, err := loadSigners(signFlags.keys, signFlags.keyFiles)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	rawTx, err := loadRawTx(signFlags.rawTx, signFlags.rawTxFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	tx, raw, err := signer.SignAsFeePayer(context.Background(), rawTx, feePayer, signers...)
	if err != nil {
		fmt.Printf("ERROR: failed to sign transaction as fee payer: %s\n", err)
		os.Exit(1)
	}
	printJson(newSignOutput(tx, raw))
}
