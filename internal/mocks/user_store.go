// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock has optional function fields to override
// behavior per test and a map-backed default implementation.
package mocks

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, account *domain.Account) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	CountFn      func(ctx context.Context) (int, error)

	// Data for default implementation
	Accounts    map[string]*domain.Account
	NextID      int64
	CreateError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Accounts: make(map[string]*domain.Account),
		NextID:   1,
	}
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Accounts[account.Email]; exists {
		return store.ErrEmailExists
	}

	account.ID = m.NextID
	m.NextID++
	m.Accounts[account.Email] = account
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, account := range m.Accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	account, exists := m.Accounts[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return account, nil
}

// Count implements the UserStore interface
func (m *MockUserStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.Accounts), nil
}
