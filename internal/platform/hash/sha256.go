package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SHA256Hasher produces a deterministic, unsalted lowercase-hex SHA-256
// digest. Equal passwords always yield equal digests.
//
// The missing salt is a known weakness kept for compatibility with digests
// already stored in existing databases. Prefer BcryptHasher for new
// deployments.
type SHA256Hasher struct{}

var _ PasswordHasher = SHA256Hasher{}

// Hash returns the hex-encoded SHA-256 digest of plaintext.
func (SHA256Hasher) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares it in constant time.
func (h SHA256Hasher) Verify(digest, plaintext string) bool {
	computed, _ := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
