package users

import "errors"

var (
	// ErrInvalidCredentials means the backend rejected the login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound means no account matches the identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrValidation means the registration payload violates an account
	// rule before the backend is even asked.
	ErrValidation = errors.New("invalid registration data")
)
