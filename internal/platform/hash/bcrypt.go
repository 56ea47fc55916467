package hash

import "golang.org/x/crypto/bcrypt"

// BcryptHasher is the salted, slow alternative to SHA256Hasher.
// Digests are not deterministic across calls; equality of passwords can
// only be established through Verify.
type BcryptHasher struct {
	// Cost is the bcrypt cost parameter. Zero means bcrypt.DefaultCost.
	Cost int
}

var _ PasswordHasher = BcryptHasher{}

// Hash returns a bcrypt digest of plaintext.
func (b BcryptHasher) Hash(plaintext string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether digest matches plaintext.
func (BcryptHasher) Verify(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
