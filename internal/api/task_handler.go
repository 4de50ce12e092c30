package api

import (
	"log/slog"
	"net/http"

	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/platform/logger"
	"github.com/taskvault/taskvault-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. Every operation scopes
// its store access to the authenticated account placed in the request
// context by the auth middleware.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, the default logger is used.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /tasks requests.
// It returns the authenticated account's tasks ordered by descending ID.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, ok := getAccountIDFromContext(r)
	if !ok {
		log.Warn("account ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	tasks, err := h.taskStore.List(r.Context(), accountID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list tasks", err)
		return
	}

	log.Debug("tasks listed",
		slog.Int64("account_id", accountID),
		slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Create handles POST /tasks requests.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, ok := getAccountIDFromContext(r)
	if !ok {
		log.Warn("account ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskStore.Create(r.Context(), accountID, domain.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created",
		slog.Int64("account_id", accountID),
		slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Get handles GET /tasks/{id} requests.
// A task owned by another account is reported exactly like a missing one.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, taskID, ok := handleAccountIDAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), accountID, taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PUT /tasks/{id} requests.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, taskID, ok := handleAccountIDAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskStore.Update(r.Context(), accountID, taskID, domain.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task updated",
		slog.Int64("account_id", accountID),
		slog.Int64("task_id", taskID))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /tasks/{id} requests.
// The removed task is returned alongside the confirmation.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	accountID, taskID, ok := handleAccountIDAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	task, err := h.taskStore.Delete(r.Context(), accountID, taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted",
		slog.Int64("account_id", accountID),
		slog.Int64("task_id", taskID))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: "Task deleted",
		Task:    task,
	})
}
