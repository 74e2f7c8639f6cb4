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

package ledger

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"slices"
	"sort"
	"strings"

	"github.com/blinklabs-io/goklaytn/ledger/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Record is the untyped form of a transaction, keyed by field name. Values may be native Go
// values, json.Number or text. Integers in text form are decimal or 0x prefixed hex. Byte
// strings and addresses in text form are hex
type Record map[string]any

// ValidateRecord checks a record against the grammar of its type without building a
// transaction for the caller. It never touches key material
func ValidateRecord(rec Record) error {
	_, err := ParseRecord(rec)
	return err
}

// ParseRecord converts a record into a validated Transaction. Grammar violations are reported
// first, in canonical field order, followed by value errors
func ParseRecord(rec Record) (*Transaction, error) {
	g, err := recordGrammar(rec)
	if err != nil {
		return nil, err
	}
	fields, err := normalizeRecord(rec)
	if err != nil {
		return nil, err
	}
	if err := checkRecordFields(g, fields); err != nil {
		return nil, err
	}
	tx, err := buildTransaction(g, fields)
	if err != nil {
		return nil, err
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

func recordGrammar(rec Record) (*txGrammar, error) {
	tmpType, ok := rec[FieldType]
	if !ok || tmpType == nil {
		return grammars[TxTypeLegacy], nil
	}
	switch v := tmpType.(type) {
	case TxType:
		return lookupGrammar(v)
	case string:
		if v == "" {
			return grammars[TxTypeLegacy], nil
		}
		txType, err := TxTypeByName(v)
		if err != nil {
			return nil, err
		}
		return grammars[txType], nil
	}
	return nil, common.UnknownTypeError{Type: fmt.Sprintf("%v", tmpType)}
}

// normalizeRecord drops the type and nil values and resolves field aliases
func normalizeRecord(rec Record) (Record, error) {
	ret := make(Record, len(rec))
	for name, val := range rec {
		if name == FieldType || val == nil {
			continue
		}
		if canonical, ok := fieldAliases[name]; ok {
			if _, exists := rec[canonical]; exists && rec[canonical] != nil {
				return nil, common.InvalidFieldValueError{
					Field:  name,
					Reason: "cannot be combined with " + canonical,
				}
			}
			name = canonical
		}
		ret[name] = val
	}
	return ret, nil
}

// checkRecordFields reports the first forbidden field, in canonical order with unknown fields
// last in lexical order, and then the first missing field
func checkRecordFields(g *txGrammar, fields Record) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		idxI, knownI := recordFieldIndex[names[i]]
		idxJ, knownJ := recordFieldIndex[names[j]]
		switch {
		case knownI && knownJ:
			return idxI < idxJ
		case knownI != knownJ:
			return knownI
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		if !g.allowed[name] {
			return common.ForbiddenFieldError{Field: name, TxType: g.name}
		}
	}
	for _, field := range recordFields {
		if !g.isRequired(field.name) {
			continue
		}
		if _, ok := fields[field.name]; ok {
			continue
		}
		return common.MissingFieldError{Field: field.name}
	}
	if g.txType.BasicType() == TxTypeAccountUpdate {
		hasKey := false
		for _, name := range accountKeyFields {
			if _, ok := fields[name]; ok {
				hasKey = true
				break
			}
		}
		if !hasKey {
			return common.MissingFieldError{Field: FieldKey}
		}
	}
	return nil
}

func buildTransaction(g *txGrammar, fields Record) (*Transaction, error) {
	var err error
	tx := &Transaction{Type: g.txType}
	if val, ok := fields[FieldFrom]; ok {
		if tx.From, err = parseAddress(FieldFrom, val); err != nil {
			return nil, err
		}
	}
	if val, ok := fields[FieldNonce]; ok {
		if tx.Nonce, err = parseUint64(FieldNonce, val); err != nil {
			return nil, err
		}
	}
	if val, ok := fields[FieldGas]; ok {
		if tx.Gas, err = parseUint64(FieldGas, val); err != nil {
			return nil, err
		}
	}
	for _, tmpField := range []struct {
		name string
		dest **big.Int
	}{
		{FieldGasPrice, &tx.GasPrice},
		{FieldChainId, &tx.ChainID},
		{FieldValue, &tx.Value},
	} {
		val, ok := fields[tmpField.name]
		if !ok {
			continue
		}
		if *tmpField.dest, err = parseBig(tmpField.name, val); err != nil {
			return nil, err
		}
	}
	if val, ok := fields[FieldTo]; ok {
		to, err := parseAddress(FieldTo, val)
		if err != nil {
			return nil, err
		}
		tx.To = &to
	}
	if val, ok := fields[FieldData]; ok {
		if tx.Data, err = parseBytes(FieldData, val); err != nil {
			return nil, err
		}
	}
	if val, ok := fields[FieldFeeRatio]; ok {
		feeRatio, err := parseUint64(FieldFeeRatio, val)
		if err != nil {
			return nil, err
		}
		if feeRatio > math.MaxUint8 {
			return nil, common.InvalidFieldValueError{
				Field:  FieldFeeRatio,
				Reason: "must be between 1 and 99",
			}
		}
		tx.FeeRatio = uint8(feeRatio)
	}
	if val, ok := fields[FieldHumanReadable]; ok {
		if tx.HumanReadable, err = parseBool(FieldHumanReadable, val); err != nil {
			return nil, err
		}
	}
	if val, ok := fields[FieldCodeFormat]; ok {
		codeFormat, err := parseUint64(FieldCodeFormat, val)
		if err != nil {
			return nil, err
		}
		if codeFormat > math.MaxUint8 {
			return nil, common.InvalidFieldValueError{
				Field:  FieldCodeFormat,
				Reason: "unsupported code format",
			}
		}
		tx.CodeFormat = CodeFormat(codeFormat)
	}
	if tx.Key, err = parseRecordAccountKey(fields); err != nil {
		return nil, err
	}
	if tx.Signatures, err = parseRecordSignatures(
		fields,
		FieldV,
		FieldR,
		FieldS,
		FieldSignatures,
	); err != nil {
		return nil, err
	}
	if val, ok := fields[FieldFeePayer]; ok {
		feePayer, err := parseOptionalAddress(FieldFeePayer, val)
		if err != nil {
			return nil, err
		}
		tx.FeePayer = feePayer
	}
	if tx.FeePayerSignatures, err = parseRecordSignatures(
		fields,
		FieldPayerV,
		FieldPayerR,
		FieldPayerS,
		FieldFeePayerSignatures,
	); err != nil {
		return nil, err
	}
	if tx.FeePayerSignatures.IsPlaceholder() {
		tx.FeePayerSignatures = nil
	}
	return tx, nil
}

// parseRecordAccountKey builds the account key from the key fields of an account update. The
// three role fields together form a role-based key, any other key field stands alone
func parseRecordAccountKey(fields Record) (common.AccountKey, error) {
	var ret common.AccountKey
	var roleKey common.AccountKeyRoleBased
	firstField := ""
	hasRole := false
	for _, name := range accountKeyFields {
		val, ok := fields[name]
		if !ok {
			continue
		}
		role := slices.Index(roleFieldNames[:], name)
		if firstField != "" && (role < 0 || !hasRole) {
			return nil, common.InvalidFieldValueError{
				Field:  name,
				Reason: "cannot be combined with " + firstField,
			}
		}
		if firstField == "" {
			firstField = name
		}
		if role >= 0 {
			key, err := parseAccountKeyValue(name, val)
			if err != nil {
				return nil, err
			}
			if key.Type() != common.AccountKeyTypeNil {
				roleKey.Keys[role] = key
			}
			hasRole = true
			continue
		}
		key, err := parseSingleAccountKey(name, name, val)
		if err != nil {
			return nil, err
		}
		ret = key
	}
	if hasRole {
		return roleKey, nil
	}
	return ret, nil
}

var singleAccountKeyFields = []string{
	FieldPublicKey,
	FieldMultisig,
	FieldLegacyKey,
	FieldFailKey,
}

// parseSingleAccountKey parses the value of one of the non-role key fields. The name is used
// for error reporting
func parseSingleAccountKey(kind string, name string, val any) (common.AccountKey, error) {
	switch kind {
	case FieldPublicKey:
		pubKey, err := parsePublicKey(name, val)
		if err != nil {
			return nil, err
		}
		return common.AccountKeyPublic{PublicKey: pubKey}, nil
	case FieldMultisig:
		return parseMultisig(name, val)
	case FieldLegacyKey, FieldFailKey:
		set, err := parseBool(name, val)
		if err != nil {
			return nil, err
		}
		if !set {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "must be true when present"}
		}
		if kind == FieldLegacyKey {
			return common.AccountKeyLegacy{}, nil
		}
		return common.AccountKeyFail{}, nil
	}
	return nil, common.InvalidFieldValueError{Field: name, Reason: "not an account key field"}
}

// parseAccountKeyValue parses the value of a role field: an AccountKey, its wire encoding as
// hex or bytes, or a map holding exactly one key field. Role keys cannot be role-based
func parseAccountKeyValue(name string, val any) (common.AccountKey, error) {
	var key common.AccountKey
	switch v := val.(type) {
	case common.AccountKey:
		key = v
	case string, []byte:
		keyBytes, err := parseBytes(name, val)
		if err != nil {
			return nil, err
		}
		if key, err = common.NewAccountKeyFromBytes(keyBytes); err != nil {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "invalid account key", Err: err}
		}
	case map[string]any:
		if len(v) != 1 {
			return nil, common.InvalidFieldValueError{
				Field:  name,
				Reason: "must hold exactly one of publicKey, multisig, legacyKey or failKey",
			}
		}
		for keyName, keyVal := range v {
			if !slices.Contains(singleAccountKeyFields, keyName) {
				return nil, common.InvalidFieldValueError{
					Field:  name,
					Reason: "unsupported key field " + keyName,
				}
			}
			var err error
			if key, err = parseSingleAccountKey(keyName, name+"."+keyName, keyVal); err != nil {
				return nil, err
			}
		}
	case Record:
		return parseAccountKeyValue(name, map[string]any(v))
	default:
		return nil, invalidTypeError(name, val)
	}
	if key == nil {
		return nil, common.InvalidFieldValueError{Field: name, Reason: "no key provided"}
	}
	if key.Type() == common.AccountKeyTypeRoleBased {
		return nil, common.InvalidFieldValueError{Field: name, Reason: "role keys cannot be role-based"}
	}
	return key, nil
}

func parseMultisig(name string, val any) (common.AccountKey, error) {
	switch v := val.(type) {
	case common.AccountKeyWeightedMultisig:
		return v, nil
	case *common.AccountKeyWeightedMultisig:
		if v == nil {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "no key provided"}
		}
		return *v, nil
	case Record:
		return parseMultisig(name, map[string]any(v))
	case map[string]any:
		threshold, err := parseUint64(name+".threshold", v["threshold"])
		if err != nil {
			return nil, err
		}
		keys, ok := v["keys"].([]any)
		if !ok {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "keys must be a list"}
		}
		ret := common.AccountKeyWeightedMultisig{Threshold: uint(threshold)}
		for idx, tmpKey := range keys {
			keyName := fmt.Sprintf("%s.keys[%d]", name, idx)
			keyMap, ok := tmpKey.(map[string]any)
			if tmpRec, isRecord := tmpKey.(Record); isRecord {
				keyMap, ok = tmpRec, true
			}
			if !ok {
				return nil, common.InvalidFieldValueError{Field: keyName, Reason: "must be an object"}
			}
			weight, err := parseUint64(keyName+".weight", keyMap["weight"])
			if err != nil {
				return nil, err
			}
			pubKey, err := parsePublicKey(keyName+".publicKey", keyMap["publicKey"])
			if err != nil {
				return nil, err
			}
			ret.Keys = append(ret.Keys, common.WeightedPublicKey{Weight: uint(weight), PublicKey: pubKey})
		}
		return ret, nil
	}
	return nil, invalidTypeError(name, val)
}

// parseRecordSignatures reads either a single v/r/s triple or a list of triples
func parseRecordSignatures(
	fields Record,
	vName string,
	rName string,
	sName string,
	listName string,
) (common.SignatureList, error) {
	_, hasV := fields[vName]
	_, hasR := fields[rName]
	_, hasS := fields[sName]
	listVal, hasList := fields[listName]
	if hasList {
		if hasV || hasR || hasS {
			return nil, common.InvalidFieldValueError{
				Field:  listName,
				Reason: fmt.Sprintf("cannot be combined with %s, %s and %s", vName, rName, sName),
			}
		}
		return parseSignatureList(listName, listVal)
	}
	if !hasV && !hasR && !hasS {
		return nil, nil
	}
	for _, name := range []string{vName, rName, sName} {
		if _, ok := fields[name]; !ok {
			return nil, common.MissingFieldError{Field: name}
		}
	}
	sig, err := parseSignatureValues(vName, fields[vName], fields[rName], fields[sName])
	if err != nil {
		return nil, err
	}
	return common.SignatureList{sig}, nil
}

func parseSignatureList(name string, val any) (common.SignatureList, error) {
	switch v := val.(type) {
	case common.SignatureList:
		return v.Copy(), nil
	case []common.Signature:
		return common.SignatureList(v).Copy(), nil
	case []any:
		ret := make(common.SignatureList, 0, len(v))
		for idx, tmpSig := range v {
			sigName := fmt.Sprintf("%s[%d]", name, idx)
			var values []any
			switch sigVal := tmpSig.(type) {
			case []any:
				values = sigVal
			case []string:
				for _, tmpVal := range sigVal {
					values = append(values, tmpVal)
				}
			case common.Signature:
				ret = append(ret, sigVal.Copy())
				continue
			default:
				return nil, invalidTypeError(sigName, tmpSig)
			}
			if len(values) != 3 {
				return nil, common.InvalidFieldValueError{Field: sigName, Reason: "must hold v, r and s"}
			}
			sig, err := parseSignatureValues(sigName, values[0], values[1], values[2])
			if err != nil {
				return nil, err
			}
			ret = append(ret, sig)
		}
		return ret, nil
	case [][]string:
		tmpList := make([]any, 0, len(v))
		for _, tmpSig := range v {
			tmpList = append(tmpList, tmpSig)
		}
		return parseSignatureList(name, tmpList)
	}
	return nil, invalidTypeError(name, val)
}

func parseSignatureValues(name string, v, r, s any) (common.Signature, error) {
	var ret common.Signature
	var err error
	if ret.V, err = parseBig(name, v); err != nil {
		return common.Signature{}, err
	}
	if ret.R, err = parseBig(name, r); err != nil {
		return common.Signature{}, err
	}
	if ret.S, err = parseBig(name, s); err != nil {
		return common.Signature{}, err
	}
	return ret, nil
}

func parseUint64(name string, val any) (uint64, error) {
	tmpVal, err := parseBig(name, val)
	if err != nil {
		return 0, err
	}
	if !tmpVal.IsUint64() {
		return 0, common.InvalidFieldValueError{Field: name, Reason: "exceeds 64 bits"}
	}
	return tmpVal.Uint64(), nil
}

// parseBig accepts Go integers, big integers, json.Number and decimal or 0x prefixed hex text
func parseBig(name string, val any) (*big.Int, error) {
	var ret *big.Int
	switch v := val.(type) {
	case int:
		ret = big.NewInt(int64(v))
	case int8:
		ret = big.NewInt(int64(v))
	case int16:
		ret = big.NewInt(int64(v))
	case int32:
		ret = big.NewInt(int64(v))
	case int64:
		ret = big.NewInt(v)
	case uint:
		ret = new(big.Int).SetUint64(uint64(v))
	case uint8:
		ret = new(big.Int).SetUint64(uint64(v))
	case uint16:
		ret = new(big.Int).SetUint64(uint64(v))
	case uint32:
		ret = new(big.Int).SetUint64(uint64(v))
	case uint64:
		ret = new(big.Int).SetUint64(v)
	case float64:
		if v != math.Trunc(v) || v < 0 || v > math.MaxInt64 {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "not an unsigned integer"}
		}
		ret = big.NewInt(int64(v))
	case *big.Int:
		if v == nil {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "nil integer"}
		}
		ret = new(big.Int).Set(v)
	case hexutil.Big:
		ret = new(big.Int).Set(v.ToInt())
	case json.Number:
		return parseBig(name, string(v))
	case string:
		tmpVal, err := parseBigString(v)
		if err != nil {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "not an unsigned integer", Err: err}
		}
		ret = tmpVal
	default:
		return nil, invalidTypeError(name, val)
	}
	if err := common.CheckUint256(ret); err != nil {
		return nil, common.InvalidFieldValueError{Field: name, Reason: "out of range", Err: err}
	}
	return ret, nil
}

func parseBigString(val string) (*big.Int, error) {
	val = strings.TrimSpace(val)
	base := 10
	if strings.HasPrefix(val, "0x") || strings.HasPrefix(val, "0X") {
		val = val[2:]
		base = 16
		// An empty hex string is zero, as in the wire encoding
		if val == "" {
			return new(big.Int), nil
		}
	}
	ret, ok := new(big.Int).SetString(val, base)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q", val)
	}
	return ret, nil
}

func parseAddress(name string, val any) (common.Address, error) {
	var ret common.Address
	var err error
	switch v := val.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		if v == nil {
			return ret, common.InvalidFieldValueError{Field: name, Reason: "nil address"}
		}
		return *v, nil
	case ethcommon.Address:
		return common.NewAddressFromEth(v), nil
	case string:
		ret, err = common.NewAddress(strings.TrimSpace(v))
	case []byte:
		ret, err = common.NewAddressFromBytes(v)
	default:
		return ret, invalidTypeError(name, val)
	}
	if err != nil {
		return ret, common.InvalidFieldValueError{Field: name, Reason: "invalid address", Err: err}
	}
	return ret, nil
}

// parseOptionalAddress treats an empty value as no address
func parseOptionalAddress(name string, val any) (*common.Address, error) {
	switch v := val.(type) {
	case string:
		if tmpVal := strings.TrimSpace(v); tmpVal == "" || tmpVal == "0x" {
			return nil, nil
		}
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
	}
	addr, err := parseAddress(name, val)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func parseBytes(name string, val any) ([]byte, error) {
	switch v := val.(type) {
	case []byte:
		return slices.Clone(v), nil
	case hexutil.Bytes:
		return slices.Clone([]byte(v)), nil
	case string:
		tmpVal := strings.TrimSpace(v)
		if !strings.HasPrefix(tmpVal, "0x") && !strings.HasPrefix(tmpVal, "0X") {
			tmpVal = "0x" + tmpVal
		}
		ret, err := hexutil.Decode(tmpVal)
		if err != nil {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "invalid hex", Err: err}
		}
		if ret == nil {
			ret = []byte{}
		}
		return ret, nil
	}
	return nil, invalidTypeError(name, val)
}

func parseBool(name string, val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, common.InvalidFieldValueError{Field: name, Reason: "must be a boolean"}
}

func parsePublicKey(name string, val any) (*ecdsa.PublicKey, error) {
	if pubKey, ok := val.(*ecdsa.PublicKey); ok {
		if pubKey == nil {
			return nil, common.InvalidFieldValueError{Field: name, Reason: "nil public key"}
		}
		return pubKey, nil
	}
	keyBytes, err := parseBytes(name, val)
	if err != nil {
		return nil, err
	}
	pubKey, err := common.ParsePublicKey(keyBytes)
	if err != nil {
		return nil, common.InvalidFieldValueError{Field: name, Reason: "invalid public key", Err: err}
	}
	return pubKey, nil
}

func invalidTypeError(name string, val any) error {
	return common.InvalidFieldValueError{
		Field:  name,
		Reason: fmt.Sprintf("unsupported value type %T", val),
	}
}

// Record renders the transaction as a record with hex text values. A single signature is
// written as v, r and s, several as a signatures list. ParseRecord accepts the result
func (tx *Transaction) Record() Record {
	ret := Record{
		FieldType:  tx.Type.String(),
		FieldFrom:  tx.From.String(),
		FieldNonce: hexutil.EncodeUint64(tx.Nonce),
		FieldGas:   hexutil.EncodeUint64(tx.Gas),
	}
	g, ok := grammars[tx.Type]
	isSet := func(name string) bool {
		return recordFields[recordFieldIndex[name]].isSet(tx)
	}
	if tx.GasPrice != nil {
		ret[FieldGasPrice] = hexutil.EncodeBig(tx.GasPrice)
	}
	if tx.ChainID != nil {
		ret[FieldChainId] = hexutil.EncodeBig(tx.ChainID)
	}
	if tx.To != nil {
		ret[FieldTo] = tx.To.String()
	}
	if tx.Value != nil || (ok && g.isRequired(FieldValue)) {
		ret[FieldValue] = hexutil.EncodeBig(bigOrZero(tx.Value))
	}
	if tx.Data != nil {
		ret[FieldData] = hexutil.Encode(tx.Data)
	}
	if isSet(FieldFeeRatio) || (ok && g.isRequired(FieldFeeRatio)) {
		ret[FieldFeeRatio] = hexutil.EncodeUint64(uint64(tx.FeeRatio))
	}
	if isSet(FieldHumanReadable) {
		ret[FieldHumanReadable] = tx.HumanReadable
	}
	if isSet(FieldCodeFormat) {
		ret[FieldCodeFormat] = hexutil.EncodeUint64(uint64(tx.CodeFormat))
	}
	if tx.Key != nil {
		switch key := tx.Key.(type) {
		case common.AccountKeyRoleBased:
			for role, roleKey := range key.Keys {
				if roleKey == nil || roleKey.Type() == common.AccountKeyTypeNil {
					continue
				}
				ret[roleFieldNames[role]] = accountKeyValue(roleKey)
			}
		case common.AccountKeyNil:
		default:
			ret[accountKeyFieldName(key)] = accountKeyValue(key)[accountKeyFieldName(key)]
		}
	}
	addSignatures(ret, tx.Signatures, FieldV, FieldR, FieldS, FieldSignatures)
	if tx.FeePayer != nil {
		ret[FieldFeePayer] = tx.FeePayer.String()
	}
	if !tx.FeePayerSignatures.IsPlaceholder() {
		addSignatures(
			ret,
			tx.FeePayerSignatures,
			FieldPayerV,
			FieldPayerR,
			FieldPayerS,
			FieldFeePayerSignatures,
		)
	}
	return ret
}

// accountKeyValue renders a non role-based key as a map holding its single key field
func accountKeyValue(key common.AccountKey) map[string]any {
	switch tmpKey := key.(type) {
	case common.AccountKeyPublic:
		return map[string]any{
			FieldPublicKey: hexutil.Encode(common.CompressPublicKey(tmpKey.PublicKey)),
		}
	case common.AccountKeyWeightedMultisig:
		keys := make([]any, 0, len(tmpKey.Keys))
		for _, weightedKey := range tmpKey.Keys {
			keys = append(
				keys,
				map[string]any{
					"weight":       hexutil.EncodeUint64(uint64(weightedKey.Weight)),
					FieldPublicKey: hexutil.Encode(common.CompressPublicKey(weightedKey.PublicKey)),
				},
			)
		}
		return map[string]any{
			FieldMultisig: map[string]any{
				"threshold": hexutil.EncodeUint64(uint64(tmpKey.Threshold)),
				"keys":      keys,
			},
		}
	case common.AccountKeyLegacy:
		return map[string]any{FieldLegacyKey: true}
	case common.AccountKeyFail:
		return map[string]any{FieldFailKey: true}
	}
	return map[string]any{}
}

func addSignatures(
	rec Record,
	sigs common.SignatureList,
	vName string,
	rName string,
	sName string,
	listName string,
) {
	switch len(sigs) {
	case 0:
		return
	case 1:
		values := sigs[0].Hex()
		rec[vName] = values[0]
		rec[rName] = values[1]
		rec[sName] = values[2]
	default:
		tmpSigs := make([]any, 0, len(sigs))
		for _, sig := range sigs {
			values := sig.Hex()
			tmpSigs = append(tmpSigs, []any{values[0], values[1], values[2]})
		}
		rec[listName] = tmpSigs
	}
}

func bigOrZero(val *big.Int) *big.Int {
	if val == nil {
		return new(big.Int)
	}
	return val
}
