package di

import (
	"os"

	"weather_app/internal/platform/hash"
)

// NewPasswordHasher selects the password hashing scheme from HASH_SCHEME.
// "bcrypt" selects the salted slow hash; anything else keeps the legacy
// unsalted SHA-256 digest for compatibility with existing rows.
func NewPasswordHasher() hash.PasswordHasher {
	if os.Getenv("HASH_SCHEME") == "bcrypt" {
		return hash.BcryptHasher{}
	}
	return hash.SHA256Hasher{}
}
