package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPin returns the hex-encoded SHA-256 digest of a deletion PIN. Stored
// digests are compared byte for byte; there is no per-record salt.
func HashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}
