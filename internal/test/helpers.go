package test

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline. A leading 0x is accepted
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	hexData = strings.TrimPrefix(hexData, "0x")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodePrivateKey is a helper function for tests that parses a hex encoded secp256k1
// private key, panicking on failure
func DecodePrivateKey(hexKey string) *ecdsa.PrivateKey {
	key, err := crypto.ToECDSA(DecodeHexString(hexKey))
	if err != nil {
		panic(fmt.Sprintf("error decoding private key: %s", err))
	}
	return key
}
