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

package klaytn

import (
	"log/slog"
	"math/big"
)

// TxSignerOptionFunc is a type that represents functions that modify the TxSigner config
type TxSignerOptionFunc func(*TxSigner)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) TxSignerOptionFunc {
	return func(s *TxSigner) {
		s.logger = logger
	}
}

// WithNetwork specifies the network. Its chain ID is used for transactions that do not carry one
func WithNetwork(network Network) TxSignerOptionFunc {
	return func(s *TxSigner) {
		s.chainId = network.ChainIdBig()
	}
}

// WithChainId specifies the chain ID used for transactions that do not carry one
func WithChainId(chainId uint64) TxSignerOptionFunc {
	return func(s *TxSigner) {
		if chainId == 0 {
			s.chainId = nil
			return
		}
		s.chainId = new(big.Int).SetUint64(chainId)
	}
}

// WithValidateOnDecode specifies whether decoded transactions are validated against the grammar
// of their type before they are returned. It defaults to false
func WithValidateOnDecode(validateOnDecode bool) TxSignerOptionFunc {
	return func(s *TxSigner) {
		s.validateOnDecode = validateOnDecode
	}
}

// WithVerifyAfterSign specifies whether every signature is verified against the signing hash
// after signing
func WithVerifyAfterSign(verifyAfterSign bool) TxSignerOptionFunc {
	return func(s *TxSigner) {
		s.verifyAfterSign = verifyAfterSign
	}
}
