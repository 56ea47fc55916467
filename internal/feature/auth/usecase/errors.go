// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to register a username that is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when a login fails.
	// It deliberately does not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
