package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taskvault/taskvault-api/internal/store"
)

// SessionStore implements the store.SessionStore interface backed by
// process memory. It keeps both directions of the token↔account
// association so that issuing a replacement token can invalidate the
// previous one in a single locked step.
type SessionStore struct {
	mu        sync.RWMutex
	byToken   map[string]int64
	byAccount map[int64]string
	logger    *slog.Logger
}

// NewSessionStore creates an empty in-memory session store.
// If logger is nil, the default logger is used.
func NewSessionStore(logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStore{
		byToken:   make(map[string]int64),
		byAccount: make(map[int64]string),
		logger:    logger.With(slog.String("component", "session_store")),
	}
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// Put implements store.SessionStore.Put.
// Any token the account previously held stops resolving immediately.
func (s *SessionStore) Put(ctx context.Context, accountID int64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if previous, ok := s.byAccount[accountID]; ok {
		delete(s.byToken, previous)
	}

	s.byToken[token] = accountID
	s.byAccount[accountID] = token

	s.logger.Debug("session stored", slog.Int64("account_id", accountID))
	return nil
}

// Resolve implements store.SessionStore.Resolve.
func (s *SessionStore) Resolve(ctx context.Context, token string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accountID, ok := s.byToken[token]
	if !ok {
		return 0, store.ErrSessionNotFound
	}

	return accountID, nil
}

// Delete implements store.SessionStore.Delete.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accountID, ok := s.byToken[token]
	if !ok {
		return store.ErrSessionNotFound
	}

	delete(s.byToken, token)
	delete(s.byAccount, accountID)

	s.logger.Debug("session revoked", slog.Int64("account_id", accountID))
	return nil
}
