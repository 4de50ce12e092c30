package main

import (
	"log/slog"

	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/platform/memory"
	"github.com/taskvault/taskvault-api/internal/service/auth"
	"github.com/taskvault/taskvault-api/internal/store"
)

// application holds the wired dependencies of the running server. All
// state lives in the in-memory stores owned here; there are no ambient
// globals, so a test can build as many independent applications as it
// needs.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore store.UserStore
	taskStore store.TaskStore
	sessions  auth.SessionService

	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication constructs the application's dependency graph: in-memory
// stores, the session token service over the session store, and the bcrypt
// password helpers configured from the auth settings.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return &application{
		config:           cfg,
		logger:           logger,
		userStore:        memory.NewUserStore(logger),
		taskStore:        memory.NewTaskStore(logger),
		sessions:         auth.NewTokenService(memory.NewSessionStore(logger)),
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
	}
}
