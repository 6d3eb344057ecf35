// Package keyprint derives a short, non-reversible fingerprint of a
// cipher key so it can be logged and compared without being shown.
package keyprint

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Size is the number of digest bytes kept in a fingerprint.
const Size = 8

// Fingerprint returns the first Size bytes of the BLAKE2b-256 digest of
// key, hex encoded.
func Fingerprint(key string) string {
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:Size])
}
