// Package address holds predicates over Cosmos-style bech32 account
// addresses. Predicates never fail: any decoding problem yields false.
package address

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// validatorOperatorMarker is the hrp fragment carried by validator operator
// addresses (e.g. "cosmosvaloper1..."), which are not account addresses.
const validatorOperatorMarker = "valoper"

// IsBech32 reports whether s is a canonical bech32 account address: it must
// decode with a valid checksum, carry at least one data word, not be a
// validator operator address, and re-encode to exactly the same string.
func IsBech32(s string) bool {
	hrp, words, err := bech32.Decode(s)
	if err != nil {
		return false
	}

	if strings.Contains(hrp, validatorOperatorMarker) {
		return false
	}

	if len(words) < 1 {
		return false
	}

	encoded, err := bech32.Encode(hrp, words)
	if err != nil {
		return false
	}

	return encoded == s
}

// Prefix returns the human-readable part of a bech32 address, or "" when s
// does not decode.
func Prefix(s string) string {
	hrp, _, err := bech32.Decode(s)
	if err != nil {
		return ""
	}
	return hrp
}
