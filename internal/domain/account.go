package domain

import (
	"fmt"
	"time"
)

// Common validation errors, all wrapping ErrValidation.
var (
	ErrEmptyEmail    = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmptyName     = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)
)

// Account represents a registered user of the application.
// It contains identity information and authentication details.
type Account struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext password, only present during registration
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewAccount creates a new Account with the given email, display name and
// plaintext password. The numeric ID is assigned by the store at creation;
// the password must be hashed by the caller before the account is stored.
// Returns an error if validation fails.
func NewAccount(email, name, password string) (*Account, error) {
	account := &Account{
		Email:     email,
		Name:      name,
		Password:  password, // Plaintext - must be hashed before storage
		CreatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Only presence is checked. Email format, password length and the like are
// deliberately not enforced; the registration contract requires the three
// fields and nothing more.
func (a *Account) Validate() error {
	if a.Email == "" {
		return ErrEmptyEmail
	}

	if a.Name == "" {
		return ErrEmptyName
	}

	// During registration the plaintext password must be present; for
	// accounts loaded from the store only the hash remains.
	if a.Password == "" && a.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
