package mocks

import (
	"context"
	"fmt"

	"github.com/taskvault/taskvault-api/internal/service/auth"
)

// MockSessionService implements auth.SessionService for testing
type MockSessionService struct {
	// Function fields for customizable behavior
	IssueTokenFn   func(ctx context.Context, accountID int64) (string, error)
	ResolveTokenFn func(ctx context.Context, token string) (int64, error)
	RevokeTokenFn  func(ctx context.Context, token string) error

	// Data for default implementation
	Tokens     map[string]int64
	IssueError error
}

// NewMockSessionService creates a new mock session service with
// initialized defaults
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{
		Tokens: make(map[string]int64),
	}
}

// Ensure MockSessionService implements auth.SessionService interface
var _ auth.SessionService = (*MockSessionService)(nil)

// IssueToken implements the SessionService interface
func (m *MockSessionService) IssueToken(ctx context.Context, accountID int64) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, accountID)
	}

	if m.IssueError != nil {
		return "", m.IssueError
	}

	// Deterministic per-account token; replaces any previous token.
	for token, id := range m.Tokens {
		if id == accountID {
			delete(m.Tokens, token)
		}
	}
	token := fmt.Sprintf("test-token-%d-%d", accountID, len(m.Tokens))
	m.Tokens[token] = accountID
	return token, nil
}

// ResolveToken implements the SessionService interface
func (m *MockSessionService) ResolveToken(ctx context.Context, token string) (int64, error) {
	if m.ResolveTokenFn != nil {
		return m.ResolveTokenFn(ctx, token)
	}

	accountID, ok := m.Tokens[token]
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return accountID, nil
}

// RevokeToken implements the SessionService interface
func (m *MockSessionService) RevokeToken(ctx context.Context, token string) error {
	if m.RevokeTokenFn != nil {
		return m.RevokeTokenFn(ctx, token)
	}

	if _, ok := m.Tokens[token]; !ok {
		return auth.ErrInvalidToken
	}
	delete(m.Tokens, token)
	return nil
}
