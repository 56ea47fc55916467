// Package entity defines the domain entities for the auth feature.
package entity

// User represents a registered account in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name chosen at registration.
	// It must be unique across all users and never changes afterwards.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the stored password digest.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`
}
