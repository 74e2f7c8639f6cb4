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

// Package klaytn signs, verifies and decodes Klaytn transactions. The TxSigner type wraps the
// ledger package with a default chain ID, logging and optional extra checks
package klaytn

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/blinklabs-io/goklaytn/ledger"
	"github.com/blinklabs-io/goklaytn/ledger/common"
)

// TxSigner is immutable after creation and safe for concurrent use
type TxSigner struct {
	logger           *slog.Logger
	chainId          *big.Int
	validateOnDecode bool
	verifyAfterSign  bool
}

// New returns a TxSigner configured with the provided options
func New(options ...TxSignerOptionFunc) *TxSigner {
	s := &TxSigner{}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// ChainId returns the default chain ID, or nil if none was configured
func (s *TxSigner) ChainId() *big.Int {
	return common.CopyBig(s.chainId)
}

// SignRecord parses the record, fills in the default chain ID when the record has none, signs
// it with the provided signers and returns the signed transaction along with its raw encoding
func (s *TxSigner) SignRecord(
	ctx context.Context,
	rec ledger.Record,
	signers ...ledger.Signer,
) (*ledger.Transaction, []byte, error) {
	tmpRec := make(ledger.Record, len(rec)+1)
	for name, val := range rec {
		tmpRec[name] = val
	}
	if val, ok := tmpRec[ledger.FieldChainId]; (!ok || val == nil) && s.chainId != nil {
		tmpRec[ledger.FieldChainId] = s.ChainId()
	}
	tx, err := ledger.ParseRecord(tmpRec)
	if err != nil {
		return nil, nil, err
	}
	return s.signTransaction(ctx, tx, signers)
}

// SignTransaction signs the transaction with the provided signers and returns the signed
// transaction along with its raw encoding. The default chain ID is used when the transaction
// has none. The provided transaction is not modified
func (s *TxSigner) SignTransaction(
	ctx context.Context,
	tx *ledger.Transaction,
	signers ...ledger.Signer,
) (*ledger.Transaction, []byte, error) {
	if tx.ChainID == nil && s.chainId != nil {
		tx = tx.Copy()
		tx.ChainID = s.ChainId()
	}
	return s.signTransaction(ctx, tx, signers)
}

func (s *TxSigner) signTransaction(
	ctx context.Context,
	tx *ledger.Transaction,
	signers []ledger.Signer,
) (*ledger.Transaction, []byte, error) {
	s.logger.Debug(
		"signing transaction",
		"type", tx.Type.String(),
		"from", tx.From.String(),
		"nonce", tx.Nonce,
		"signers", len(signers),
	)
	signed, err := ledger.SignTransaction(ctx, tx, signers...)
	if err != nil {
		return nil, nil, err
	}
	if s.verifyAfterSign {
		if err := s.verify(signed, false); err != nil {
			return nil, nil, err
		}
	}
	raw, err := ledger.EncodeSigned(signed)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Debug(
		"signed transaction",
		"type", signed.Type.String(),
		"signatures", len(signed.Signatures),
		"raw_size", len(raw),
	)
	return signed, raw, nil
}

// SignAsFeePayer adds fee payer signatures to a sender-signed raw transaction and returns the
// resulting transaction along with its raw encoding. The chain ID of the sender signatures is
// used, which must match the default chain ID when one is configured
func (s *TxSigner) SignAsFeePayer(
	ctx context.Context,
	senderRaw []byte,
	feePayer common.Address,
	signers ...ledger.Signer,
) (*ledger.Transaction, []byte, error) {
	s.logger.Debug(
		"signing transaction as fee payer",
		"fee_payer", feePayer.String(),
		"raw_size", len(senderRaw),
		"signers", len(signers),
	)
	signed, err := ledger.SignAsFeePayer(ctx, senderRaw, feePayer, s.ChainId(), signers...)
	if err != nil {
		return nil, nil, err
	}
	if s.verifyAfterSign {
		if err := s.verify(signed, true); err != nil {
			return nil, nil, err
		}
	}
	raw, err := ledger.EncodeSigned(signed)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Debug(
		"signed transaction as fee payer",
		"type", signed.Type.String(),
		"fee_payer_signatures", len(signed.FeePayerSignatures),
		"raw_size", len(raw),
	)
	return signed, raw, nil
}

// Decode decodes a raw transaction. Decoding does not validate the result against the grammar
// of its type unless enabled with WithValidateOnDecode
func (s *TxSigner) Decode(raw []byte) (*ledger.Transaction, error) {
	tx, err := ledger.DecodeRawTransaction(raw)
	if err != nil {
		s.logger.Debug("failed to decode transaction", "error", err)
		return nil, err
	}
	s.logger.Debug(
		"decoded transaction",
		"type", tx.Type.String(),
		"from", tx.From.String(),
		"nonce", tx.Nonce,
	)
	if s.validateOnDecode {
		if err := tx.Validate(); err != nil {
			s.logger.Warn(
				"decoded transaction failed validation",
				"type", tx.Type.String(),
				"error", err,
			)
			return nil, err
		}
	}
	return tx, nil
}

// Verify checks the sender signatures and, when the transaction carries a fee payer, the fee
// payer signatures. Signatures must recover to the sender and fee payer addresses
func (s *TxSigner) Verify(tx *ledger.Transaction) error {
	return s.verify(tx, tx.FeePayer != nil)
}

func (s *TxSigner) verify(tx *ledger.Transaction, feePayer bool) error {
	if err := ledger.VerifySenderSignatures(tx); err != nil {
		s.logger.Warn(
			"sender signature verification failed",
			"type", tx.Type.String(),
			"error", err,
		)
		return err
	}
	if !feePayer {
		return nil
	}
	if err := ledger.VerifyFeePayerSignatures(tx); err != nil {
		s.logger.Warn(
			"fee payer signature verification failed",
			"type", tx.Type.String(),
			"error", err,
		)
		return err
	}
	return nil
}
