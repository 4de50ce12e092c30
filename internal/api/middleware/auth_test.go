package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/mocks"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	sessions := mocks.NewMockSessionService()
	token, err := sessions.IssueToken(context.Background(), 42)
	require.NoError(t, err)

	authMiddleware := NewAuthMiddleware(sessions)

	var gotAccountID int64
	var handlerCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		gotAccountID, _ = GetAccountID(r)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantHandler bool
	}{
		{
			name:        "valid bearer token",
			authHeader:  "Bearer " + token,
			wantStatus:  http.StatusOK,
			wantHandler: true,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			authHeader: "Bearer deadbeef",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false
			gotAccountID = 0

			req := httptest.NewRequest("GET", "/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			authMiddleware.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantHandler, handlerCalled)
			if tt.wantHandler {
				assert.Equal(t, int64(42), gotAccountID)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer abc123")

	token, err := BearerToken(req)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	req.Header.Del("Authorization")
	_, err = BearerToken(req)
	assert.Error(t, err)
}
