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
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/goklaytn"
	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/rlp"
)

type decodeFlags struct {
	flagset   *flag.FlagSet
	rawTx     string
	rawTxFile string
	verify    bool
	validate  bool
	dump      bool
	feePayer  string
}

func newDecodeFlags(name string) *decodeFlags {
	f := &decodeFlags{
		flagset: flag.NewFlagSet(name, flag.ExitOnError),
	}
	f.flagset.StringVar(&f.rawTx, "raw-tx", "", "hex encoded raw transaction")
	f.flagset.StringVar(
		&f.rawTxFile,
		"raw-tx-file",
		"",
		"path to a file containing a hex encoded raw transaction (- for stdin)",
	)
	return f
}

func runDecode(f *globalFlags, signer *klaytn.TxSigner) {
	decodeFlags := newDecodeFlags("decode")
	decodeFlags.flagset.BoolVar(
		&decodeFlags.verify,
		"verify",
		false,
		"verify the signatures of the decoded transaction",
	)
	decodeFlags.flagset.BoolVar(
		&decodeFlags.validate,
		"validate",
		false,
		"validate the decoded transaction against the grammar of its type",
	)
	decodeFlags.flagset.BoolVar(
		&decodeFlags.dump,
		"dump",
		false,
		"print the RLP structure of the transaction before decoding it",
	)
	err := decodeFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	rawTx, err := loadRawTx(decodeFlags.rawTx, decodeFlags.rawTxFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if decodeFlags.dump {
		dumpRawTx(rawTx)
	}
	tx, err := signer.Decode(rawTx)
	if err != nil {
		fmt.Printf("ERROR: failed to decode transaction: %s\n", err)
		os.Exit(1)
	}
	if decodeFlags.validate {
		if err := tx.Validate(); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	if decodeFlags.verify {
		if err := signer.Verify(tx); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	printJson(tx.Record())
}

func runHash(f *globalFlags, signer *klaytn.TxSigner) {
	hashFlags := newDecodeFlags("hash")
	hashFlags.flagset.StringVar(
		&hashFlags.feePayer,
		"fee-payer",
		"",
		"also compute the fee payer signing hash for this fee payer address",
	)
	err := hashFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	rawTx, err := loadRawTx(hashFlags.rawTx, hashFlags.rawTxFile)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	tx, err := signer.Decode(rawTx)
	if err != nil {
		fmt.Printf("ERROR: failed to decode transaction: %s\n", err)
		os.Exit(1)
	}
	out := map[string]string{}
	senderHash, err := ledger.SenderHash(tx)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	out["senderHash"] = senderHash.String()
	txHash, err := tx.Hash()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	out["transactionHash"] = txHash.String()
	if tx.Type.IsFeeDelegated() {
		senderTxHash, err := tx.SenderTxHash()
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		out["senderTransactionHash"] = senderTxHash.String()
	}
	if hashFlags.feePayer != "" {
		feePayer, err := ledger.NewAddress(hashFlags.feePayer)
		if err != nil {
			fmt.Printf("ERROR: invalid fee payer address: %s\n", err)
			os.Exit(1)
		}
		feePayerHash, err := ledger.FeePayerHash(rawTx, feePayer, signer.ChainId())
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		out["feePayerHash"] = feePayerHash.String()
	}
	printJson(out)
}

// dumpRawTx prints the RLP outline of a raw transaction. Typed transactions have their type
// tag printed ahead of the payload
func dumpRawTx(rawTx []byte) {
	if len(rawTx) == 0 {
		return
	}
	if !rlp.IsList(rawTx) {
		fmt.Printf("type tag: 0x%02x\n", rawTx[0])
		rawTx = rawTx[1:]
	}
	fmt.Print(rlp.DumpStructure(rawTx, ""))
}
