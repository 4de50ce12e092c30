// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of the in-memory implementation that currently backs them.
package store

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/domain"
)

// UserStore defines the interface for account data persistence.
type UserStore interface {
	// Create saves a new account to the store, assigning it the next
	// sequential numeric ID. The caller MUST have hashed the password;
	// the plaintext Password field is never stored.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrUserNotFound if the account does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// GetByEmail retrieves an account by its email address.
	// Returns ErrUserNotFound if the account does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// Count returns the number of registered accounts.
	Count(ctx context.Context) (int, error)
}
