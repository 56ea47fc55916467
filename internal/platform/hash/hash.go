// Package hash provides the password digest implementations used by the
// auth feature.
package hash

// PasswordHasher abstracts the one-way transform applied to plaintext
// passwords before they are stored.
// Following Go convention: the interface lives with the providers here
// because multiple schemes share it and callers select one at wiring time.
type PasswordHasher interface {
	// Hash returns the storable digest for the given plaintext.
	// It fails only when the underlying primitive is unavailable; callers
	// must treat that as fatal to the operation and never store plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether digest was produced from plaintext.
	// Implementations compare in constant time.
	Verify(digest, plaintext string) bool
}
