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
	"log/slog"
	"os"

	"github.com/blinklabs-io/goklaytn"
)

type globalFlags struct {
	flagset *flag.FlagSet
	network string
	chainId uint64
	debug   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.network,
		"network",
		"baobab",
		"specifies the network used for signing (cypress, baobab, local)",
	)
	f.flagset.Uint64Var(
		&f.chainId,
		"chain-id",
		0,
		"specifies the chain ID. this overrides the -network option",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}),
	)

	if f.chainId == 0 {
		network := klaytn.NetworkByName(f.network)
		if network == klaytn.NetworkInvalid {
			fmt.Printf("Invalid network specified: %s\n", f.network)
			os.Exit(1)
		}
		f.chainId = network.ChainId
	}
	signer := klaytn.New(
		klaytn.WithLogger(logger),
		klaytn.WithChainId(f.chainId),
		klaytn.WithVerifyAfterSign(true),
	)

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "decode":
			runDecode(f, signer)
		case "hash":
			runHash(f, signer)
		case "sign":
			runSign(f, signer)
		case "fee-payer-sign":
			runFeePayerSign(f, signer)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (decode, hash, sign, or fee-payer-sign)\n")
		os.Exit(1)
	}
}
