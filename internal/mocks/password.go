package mocks

import (
	"errors"

	"github.com/taskvault/taskvault-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// The default implementation produces a recognizable, reversible marker
// instead of a real digest so tests stay fast.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	HashError error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher interface
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashError != nil {
		return "", m.HashError
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	CompareFn     func(hashedPassword, password string) error
	ShouldSucceed bool
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier interface
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed || hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}
