package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	// Callers must not learn which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session exists but its TTL elapsed.
	ErrSessionExpired = errors.New("session expired")
)
