package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/mocks"
)

func newAuthHandler() (*AuthHandler, *mocks.MockUserStore, *mocks.MockSessionService) {
	userStore := mocks.NewMockUserStore()
	sessions := mocks.NewMockSessionService()
	handler := NewAuthHandler(
		userStore,
		sessions,
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{},
		nil,
	)
	return handler, userStore, sessions
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"email":    "ann@example.com",
				"name":     "Ann",
				"password": "pw1",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"name":     "Ann",
				"password": "pw1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"email":    "ann@example.com",
				"password": "pw1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "ann@example.com",
				"name":  "Ann",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _ := newAuthHandler()

			recorder := postJSON(t, handler.Register, "/register", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp RegisterResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, int64(1), resp.UserID)
				assert.NotEmpty(t, resp.Message)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	handler, userStore, _ := newAuthHandler()
	payload := map[string]interface{}{
		"email":    "ann@example.com",
		"name":     "Ann",
		"password": "pw1",
	}

	recorder := postJSON(t, handler.Register, "/register", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Same email again fails with 400 and leaves the first account intact.
	recorder = postJSON(t, handler.Register, "/register", payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	account, err := userStore.GetByEmail(nil, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", account.Name)
	assert.Equal(t, int64(1), account.ID)
}

func TestRegisterInvalidJSON(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthHandler()

	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString("{not json"))
	recorder := httptest.NewRecorder()
	handler.Register(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthHandler()

	registered := postJSON(t, handler.Register, "/register", map[string]interface{}{
		"email":    "ann@example.com",
		"name":     "Ann",
		"password": "pw1",
	})
	require.Equal(t, http.StatusCreated, registered.Code)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid credentials",
			payload: map[string]interface{}{
				"email":    "ann@example.com",
				"password": "pw1",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    "ann@example.com",
				"password": "nope",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			payload: map[string]interface{}{
				"email":    "ghost@example.com",
				"password": "pw1",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "ann@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Login, "/login", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp LoginResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, int64(1), resp.User.ID)
				assert.Equal(t, "ann@example.com", resp.User.Email)
				assert.Equal(t, "Ann", resp.User.Name)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	handler, _, sessions := newAuthHandler()

	token, err := sessions.IssueToken(nil, 1)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "already revoked token",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			authHeader: "Bearer deadbeef",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
	}

	// Not parallel between cases: the first case revokes the token the
	// second case depends on.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/logout", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.Logout(recorder, req)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
