package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// HexBytes is a raw byte sequence (typically a transaction or block hash)
// that renders as uppercase hexadecimal, the way Tendermint displays hashes.
type HexBytes []byte

// ParseHexBytes decodes a hexadecimal string into HexBytes. The input is
// case-insensitive and may carry an optional "0x"/"0X" prefix.
func ParseHexBytes(s string) (HexBytes, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("empty hex string")
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return HexBytes(b), nil
}

// String returns the uppercase hexadecimal representation without prefix.
func (h HexBytes) String() string {
	return strings.ToUpper(hex.EncodeToString(h))
}

// IsEmpty reports whether h holds no bytes.
func (h HexBytes) IsEmpty() bool {
	return len(h) == 0
}

// Equal reports whether h and o hold the same bytes.
func (h HexBytes) Equal(o HexBytes) bool {
	return bytes.Equal(h, o)
}

// MarshalJSON encodes h as an uppercase hexadecimal JSON string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON parses a hexadecimal JSON string. An empty string yields
// empty HexBytes.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if s == "" {
		*h = nil
		return nil
	}

	b, err := ParseHexBytes(s)
	if err != nil {
		return err
	}

	*h = b
	return nil
}
