package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/redact"
	"github.com/taskvault/taskvault-api/internal/store"
)

// HealthHandler reports liveness and the current store counters.
type HealthHandler struct {
	userStore store.UserStore
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
// If logger is nil, the default logger is used.
func NewHealthHandler(userStore store.UserStore, taskStore store.TaskStore, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &HealthHandler{
		userStore: userStore,
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "health_handler")),
	}
}

// Check handles GET /health requests.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.Count(r.Context())
	if err != nil {
		h.logger.Error("failed to count accounts", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Health check failed")
		return
	}

	tasks, err := h.taskStore.Count(r.Context())
	if err != nil {
		h.logger.Error("failed to count tasks", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Health check failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TotalUsers: users,
		TotalTasks: tasks,
	})
}
