// Package middleware provides the HTTP middleware applied by the router:
// bearer-token authentication and trace-ID propagation.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/redact"
	"github.com/taskvault/taskvault-api/internal/service/auth"
)

// AuthMiddleware provides session-token authentication for routes.
type AuthMiddleware struct {
	sessions auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the account ID to the request context for authorized requests.
// Requests whose token does not resolve are rejected before any store
// access happens.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := BearerToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		accountID, err := m.sessions.ResolveToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to resolve token", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		// Add account ID to context
		ctx := context.WithValue(r.Context(), shared.AccountIDContextKey, accountID)

		// Continue with the authenticated request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the bearer token from the Authorization header.
// Returns an error describing what was wrong when the header is missing
// or malformed.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("Invalid authorization format")
	}

	return parts[1], nil
}

// GetAccountID extracts the account ID from the request context.
// Returns the account ID and a boolean indicating if it was found.
func GetAccountID(r *http.Request) (int64, bool) {
	return shared.AccountIDFromContext(r.Context())
}
