package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/taskvault-api/internal/api"
	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/domain"
)

// newTestApplication wires a full application against fresh in-memory
// stores. MinCost keeps the bcrypt work factor out of the test runtime.
func newTestApplication(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth:   config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newApplication(cfg, logger).setupRouter()
}

// doJSON performs a request against the router and decodes the JSON
// response body into out (when out is non-nil).
func doJSON(t *testing.T, router http.Handler, method, path, token string, body, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code < 500 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out),
			"response body: %s", rec.Body.String())
	}
	return rec.Code
}

func registerAndLogin(t *testing.T, router http.Handler, email, name, password string) string {
	t.Helper()

	code := doJSON(t, router, http.MethodPost, "/register", "",
		api.RegisterRequest{Email: email, Name: name, Password: password}, nil)
	require.Equal(t, http.StatusCreated, code)

	var login api.LoginResponse
	code = doJSON(t, router, http.MethodPost, "/login", "",
		api.LoginRequest{Email: email, Password: password}, &login)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestApplication_TaskLifecycle(t *testing.T) {
	router := newTestApplication(t)

	// Register and log in.
	var reg api.RegisterResponse
	code := doJSON(t, router, http.MethodPost, "/register", "",
		api.RegisterRequest{Email: "ann@example.com", Name: "Ann", Password: "pass123"}, &reg)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, int64(1), reg.UserID)

	// Registering the same email again fails without touching the account.
	code = doJSON(t, router, http.MethodPost, "/register", "",
		api.RegisterRequest{Email: "ann@example.com", Name: "Imposter", Password: "other"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	var login api.LoginResponse
	code = doJSON(t, router, http.MethodPost, "/login", "",
		api.LoginRequest{Email: "ann@example.com", Password: "pass123"}, &login)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, int64(1), login.User.ID)
	assert.Equal(t, "ann@example.com", login.User.Email)

	// Create a task; defaults apply to the omitted fields.
	var created domain.Task
	code = doJSON(t, router, http.MethodPost, "/tasks", login.Token,
		api.TaskRequest{Title: "Buy milk"}, &created)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, domain.DefaultPriority, created.Priority)
	assert.Equal(t, domain.DefaultStatus, created.Status)

	// Update replaces the writable fields.
	var updated domain.Task
	code = doJSON(t, router, http.MethodPut, "/tasks/1", login.Token,
		api.TaskRequest{Title: "Buy milk", Status: "done"}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "done", updated.Status)
	assert.False(t, updated.UpdatedAt.Before(created.CreatedAt))

	// Delete returns the removed task; subsequent reads miss.
	var deleted api.DeleteTaskResponse
	code = doJSON(t, router, http.MethodDelete, "/tasks/1", login.Token, nil, &deleted)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, deleted.Task)
	assert.Equal(t, "done", deleted.Task.Status)

	code = doJSON(t, router, http.MethodGet, "/tasks/1", login.Token, nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	var tasks []domain.Task
	code = doJSON(t, router, http.MethodGet, "/tasks", login.Token, nil, &tasks)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, tasks)
}

func TestApplication_SessionSemantics(t *testing.T) {
	router := newTestApplication(t)

	first := registerAndLogin(t, router, "bob@example.com", "Bob", "hunter2")

	code := doJSON(t, router, http.MethodGet, "/tasks", first, nil, nil)
	assert.Equal(t, http.StatusOK, code)

	// A second login replaces the session; the old token stops working.
	var relogin api.LoginResponse
	code = doJSON(t, router, http.MethodPost, "/login", "",
		api.LoginRequest{Email: "bob@example.com", Password: "hunter2"}, &relogin)
	require.Equal(t, http.StatusOK, code)
	require.NotEqual(t, first, relogin.Token)

	code = doJSON(t, router, http.MethodGet, "/tasks", first, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code = doJSON(t, router, http.MethodGet, "/tasks", relogin.Token, nil, nil)
	assert.Equal(t, http.StatusOK, code)

	// Logout revokes; replaying the token fails on both endpoints.
	code = doJSON(t, router, http.MethodPost, "/logout", relogin.Token, nil, nil)
	assert.Equal(t, http.StatusOK, code)

	code = doJSON(t, router, http.MethodPost, "/logout", relogin.Token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code = doJSON(t, router, http.MethodGet, "/tasks", relogin.Token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Wrong password and unknown account collapse to the same 401.
	code = doJSON(t, router, http.MethodPost, "/login", "",
		api.LoginRequest{Email: "bob@example.com", Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code = doJSON(t, router, http.MethodPost, "/login", "",
		api.LoginRequest{Email: "nobody@example.com", Password: "hunter2"}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestApplication_OwnershipIsolation(t *testing.T) {
	router := newTestApplication(t)

	annToken := registerAndLogin(t, router, "ann@example.com", "Ann", "pass1")
	bobToken := registerAndLogin(t, router, "bob@example.com", "Bob", "pass2")

	var annTask domain.Task
	code := doJSON(t, router, http.MethodPost, "/tasks", annToken,
		api.TaskRequest{Title: "Ann's secret"}, &annTask)
	require.Equal(t, http.StatusCreated, code)

	// Bob sees neither the task in his list nor by direct ID; the miss is
	// indistinguishable from a task that never existed.
	var bobTasks []domain.Task
	code = doJSON(t, router, http.MethodGet, "/tasks", bobToken, nil, &bobTasks)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, bobTasks)

	for _, path := range []string{"/tasks/1", "/tasks/999"} {
		code = doJSON(t, router, http.MethodGet, path, bobToken, nil, nil)
		assert.Equal(t, http.StatusNotFound, code, "GET %s", path)
	}
	code = doJSON(t, router, http.MethodPut, "/tasks/1", bobToken,
		api.TaskRequest{Title: "hijack"}, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code = doJSON(t, router, http.MethodDelete, "/tasks/1", bobToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Ann's task is untouched.
	var got domain.Task
	code = doJSON(t, router, http.MethodGet, "/tasks/1", annToken, nil, &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ann's secret", got.Title)
}

func TestApplication_Health(t *testing.T) {
	router := newTestApplication(t)

	var health api.HealthResponse
	code := doJSON(t, router, http.MethodGet, "/health", "", nil, &health)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", health.Status)
	assert.Zero(t, health.TotalUsers)
	assert.Zero(t, health.TotalTasks)

	token := registerAndLogin(t, router, "ann@example.com", "Ann", "pass1")
	code = doJSON(t, router, http.MethodPost, "/tasks", token,
		api.TaskRequest{Title: "one"}, nil)
	require.Equal(t, http.StatusCreated, code)
	code = doJSON(t, router, http.MethodPost, "/tasks", token,
		api.TaskRequest{Title: "two"}, nil)
	require.Equal(t, http.StatusCreated, code)

	code = doJSON(t, router, http.MethodGet, "/health", "", nil, &health)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, health.TotalUsers)
	assert.Equal(t, 2, health.TotalTasks)
	assert.NotEmpty(t, health.Timestamp)
}
