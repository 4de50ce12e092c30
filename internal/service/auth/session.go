package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/taskvault/taskvault-api/internal/store"
)

// tokenBytes is the entropy of a session token. 32 random bytes encode to
// a 64-character hex string.
const tokenBytes = 32

// SessionService defines operations for managing opaque session tokens.
//
// Tokens are bearer credentials: whoever presents a token acts as the
// account it resolves to. An account has at most one live token; issuing
// a new one invalidates the previous token immediately.
type SessionService interface {
	// IssueToken generates a fresh cryptographically random token for the
	// account and registers it, replacing any token the account already
	// held. Returns the token string.
	IssueToken(ctx context.Context, accountID int64) (string, error)

	// ResolveToken returns the account ID the token belongs to.
	// Returns ErrInvalidToken if no account holds the token.
	ResolveToken(ctx context.Context, token string) (int64, error)

	// RevokeToken invalidates the token so it no longer resolves.
	// Returns ErrInvalidToken if no account holds the token.
	RevokeToken(ctx context.Context, token string) error
}

// TokenService implements SessionService on top of a store.SessionStore.
type TokenService struct {
	sessions store.SessionStore
}

// NewTokenService creates a new TokenService backed by the given
// session store.
func NewTokenService(sessions store.SessionStore) *TokenService {
	return &TokenService{sessions: sessions}
}

// Ensure TokenService implements SessionService interface
var _ SessionService = (*TokenService)(nil)

// IssueToken implements SessionService.IssueToken.
func (s *TokenService) IssueToken(ctx context.Context, accountID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.sessions.Put(ctx, accountID, token); err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	return token, nil
}

// ResolveToken implements SessionService.ResolveToken.
func (s *TokenService) ResolveToken(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrMissingToken
	}

	accountID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, fmt.Errorf("failed to resolve session token: %w", err)
	}

	return accountID, nil
}

// RevokeToken implements SessionService.RevokeToken.
func (s *TokenService) RevokeToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrMissingToken
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("failed to revoke session token: %w", err)
	}

	return nil
}

// generateToken returns a hex-encoded string of tokenBytes random bytes
// read from crypto/rand.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
