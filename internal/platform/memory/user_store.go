// Package memory provides in-memory implementations of the store
// interfaces. All state lives in the process and is lost on restart;
// that is the storage contract, not a placeholder for a database.
//
// Each store guards its state with a single RWMutex so every logical
// operation is atomic: mutations take the write lock, reads take the
// read lock and can therefore run concurrently without observing a
// partially applied update.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// UserStore implements the store.UserStore interface backed by
// process memory.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.Account
	byID    map[int64]*domain.Account
	nextID  int64
	logger  *slog.Logger
}

// NewUserStore creates an empty in-memory account store.
// If logger is nil, the default logger is used.
func NewUserStore(logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		byEmail: make(map[string]*domain.Account),
		byID:    make(map[int64]*domain.Account),
		nextID:  1,
		logger:  logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
// It assigns the next sequential account ID and stores the account.
// Returns store.ErrEmailExists if the email is already registered.
func (s *UserStore) Create(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[account.Email]; exists {
		return store.ErrEmailExists
	}

	account.ID = s.nextID
	s.nextID++

	// The plaintext password must never survive past registration.
	account.Password = ""

	stored := *account
	s.byEmail[stored.Email] = &stored
	s.byID[stored.ID] = &stored

	s.logger.Debug("account created", slog.Int64("account_id", stored.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	copied := *account
	return &copied, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	copied := *account
	return &copied, nil
}

// Count implements store.UserStore.Count.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID), nil
}
