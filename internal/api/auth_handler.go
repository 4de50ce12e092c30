// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal application services, translating HTTP concerns to
// business operations.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskvault/taskvault-api/internal/api/middleware"
	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/redact"
	"github.com/taskvault/taskvault-api/internal/service/auth"
	"github.com/taskvault/taskvault-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	sessions         auth.SessionService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// If logger is nil, the default logger is used.
func NewAuthHandler(
	userStore store.UserStore,
	sessions auth.SessionService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userStore:        userStore,
		sessions:         sessions,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles the POST /register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Create account
	account, err := domain.NewAccount(req.Email, req.Name, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// Hash password before storage
	account.HashedPassword, err = h.passwordHasher.Hash(account.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Store account
	if err := h.userStore.Create(r.Context(), account); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "User already exists")
			return
		}
		h.logger.Error("failed to create account", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  account.ID,
	})
}

// Login handles the POST /login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Get account by email. An unknown email and a wrong password produce
	// the same response; nothing reveals which half failed.
	account, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("failed to get account by email", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	// Verify password using the injected verifier
	if err := h.passwordVerifier.Compare(account.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Issue a fresh session token, invalidating any previous one
	token, err := h.sessions.IssueToken(r.Context(), account.ID)
	if err != nil {
		h.logger.Error("failed to issue token", "error", redact.Error(err), "account_id", account.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: AccountResponse{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.Name,
		},
	})
}

// Logout handles the POST /logout endpoint.
// It revokes the presented bearer token; the endpoint is deliberately not
// behind the auth middleware so that revocation reports 401 for a token
// that never existed, same as for one already revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.BearerToken(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.sessions.RevokeToken(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		default:
			h.logger.Error("failed to revoke token", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to log out")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Logout successful",
	})
}
