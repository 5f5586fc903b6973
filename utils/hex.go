package utils

import (
	"encoding/hex"
	"strings"
)

// DecodeHex decodes a hex string, accepting an optional 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

// EncodeHex encodes bytes as a 0x-prefixed hex string.
func EncodeHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}
