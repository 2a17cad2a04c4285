package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex возвращает hex от sha256(plain)
func Sha256Hex(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
