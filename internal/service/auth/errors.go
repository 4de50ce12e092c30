package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is unknown, stale or revoked.
	// A token invalidated by a later login for the same account is
	// indistinguishable from one that never existed.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
