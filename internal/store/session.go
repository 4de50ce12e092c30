package store

import "context"

// SessionStore defines the interface for session token persistence.
//
// An account holds at most one live token at a time: storing a new token
// for an account atomically invalidates whatever token it held before.
type SessionStore interface {
	// Put associates the token with the account, replacing and invalidating
	// any token the account previously held.
	Put(ctx context.Context, accountID int64, token string) error

	// Resolve returns the account ID holding the given token.
	// Returns ErrSessionNotFound if no account holds it.
	Resolve(ctx context.Context, token string) (int64, error)

	// Delete clears the token's association.
	// Returns ErrSessionNotFound if no account holds it.
	Delete(ctx context.Context, token string) error
}
