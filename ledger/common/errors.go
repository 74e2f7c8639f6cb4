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

package common

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can use errors.Is
var (
	ErrMissingField            = errors.New("missing field")
	ErrForbiddenField          = errors.New("forbidden field")
	ErrInvalidFieldValue       = errors.New("invalid field value")
	ErrUnknownType             = errors.New("unknown transaction type")
	ErrMalformedEncoding       = errors.New("malformed encoding")
	ErrTypeSignatureMismatch   = errors.New("transaction type does not match signature layout")
	ErrSigningPrimitiveFailure = errors.New("signing primitive failure")
	ErrInvalidPrivateKey       = errors.New("invalid private key")
	ErrHashMismatchOnVerify    = errors.New("signature does not match signing hash")
)

// MissingFieldError indicates a required field was not provided
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf(`"%s" is missing`, e.Field)
}

func (MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// ForbiddenFieldError indicates a field that the transaction type does not allow
type ForbiddenFieldError struct {
	Field  string
	TxType string
}

func (e ForbiddenFieldError) Error() string {
	return fmt.Sprintf(
		`"%s" cannot be used with %s transaction`,
		e.Field,
		e.TxType,
	)
}

func (ForbiddenFieldError) Is(target error) bool {
	return target == ErrForbiddenField
}

// InvalidFieldValueError indicates a field whose value has the wrong shape
type InvalidFieldValueError struct {
	Field  string
	Reason string
	Err    error
}

func (e InvalidFieldValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(`invalid "%s": %s: %v`, e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf(`invalid "%s": %s`, e.Field, e.Reason)
}

func (e InvalidFieldValueError) Unwrap() error { return e.Err }

func (InvalidFieldValueError) Is(target error) bool {
	return target == ErrInvalidFieldValue
}

// UnknownTypeError indicates a type name or tag that is not registered
type UnknownTypeError struct {
	Type string
}

func (e UnknownTypeError) Error() string {
	return "unknown transaction type: " + e.Type
}

func (UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// MalformedEncodingError indicates raw bytes that do not follow the wire grammar
type MalformedEncodingError struct {
	Context string
	Err     error
}

func (e MalformedEncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed encoding: %s: %v", e.Context, e.Err)
	}
	return "malformed encoding: " + e.Context
}

func (e MalformedEncodingError) Unwrap() error { return e.Err }

func (MalformedEncodingError) Is(target error) bool {
	return target == ErrMalformedEncoding
}

// TypeSignatureMismatchError indicates fee payer data on a type that does not allow it, or
// missing fee payer data on a type that requires it
type TypeSignatureMismatchError struct {
	TxType string
	Reason string
}

func (e TypeSignatureMismatchError) Error() string {
	return fmt.Sprintf("%s transaction: %s", e.TxType, e.Reason)
}

func (TypeSignatureMismatchError) Is(target error) bool {
	return target == ErrTypeSignatureMismatch
}

// SigningPrimitiveFailureError wraps an error returned by a signer. The cause is surfaced
// verbatim since there is no way to tell transient failures from permanent ones
type SigningPrimitiveFailureError struct {
	Err error
}

func (e SigningPrimitiveFailureError) Error() string {
	return fmt.Sprintf("signing primitive failure: %v", e.Err)
}

func (e SigningPrimitiveFailureError) Unwrap() error { return e.Err }

func (SigningPrimitiveFailureError) Is(target error) bool {
	return target == ErrSigningPrimitiveFailure
}

// InvalidPrivateKeyError indicates key material that is not a valid secp256k1 private key
type InvalidPrivateKeyError struct {
	Err error
}

func (e InvalidPrivateKeyError) Error() string {
	return fmt.Sprintf("invalid private key: %v", e.Err)
}

func (e InvalidPrivateKeyError) Unwrap() error { return e.Err }

func (InvalidPrivateKeyError) Is(target error) bool {
	return target == ErrInvalidPrivateKey
}

// SignatureVerificationError indicates a signature that does not verify against the
// signing hash and expected signer
type SignatureVerificationError struct {
	Role   string
	Index  int
	Reason string
}

func (e SignatureVerificationError) Error() string {
	return fmt.Sprintf(
		"%s signature %d failed verification: %s",
		e.Role,
		e.Index,
		e.Reason,
	)
}

func (SignatureVerificationError) Is(target error) bool {
	return target == ErrHashMismatchOnVerify
}
