package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskvault/taskvault-api/internal/api/shared"
	"github.com/taskvault/taskvault-api/internal/platform/logger"
)

// getAccountIDFromContext extracts the authenticated account's ID from the
// request context. The ID is placed in the context by the auth middleware.
func getAccountIDFromContext(r *http.Request) (int64, bool) {
	return shared.AccountIDFromContext(r.Context())
}

// getPathID extracts a numeric ID from the URL path parameters.
// Returns false after writing a 400 response if the parameter is missing
// or not an integer. Zero and negative values parse fine; no task ever
// carries them, so the store lookup misses and reports the usual 404.
func getPathID(w http.ResponseWriter, r *http.Request, paramName string, log *slog.Logger) (int64, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		log.Warn("path parameter missing", slog.String("param_name", paramName))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID is required")
		return 0, false
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		log.Warn("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", pathParam))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return 0, false
	}

	return id, true
}

// handleAccountIDAndPathID is a composite helper that extracts both the
// account ID from context and a numeric ID from the path parameters. It
// writes an error response if either extraction fails.
func handleAccountIDAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	log *slog.Logger,
) (int64, int64, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	accountID, ok := getAccountIDFromContext(r)
	if !ok {
		log.Warn("account ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return 0, 0, false
	}

	pathID, ok := getPathID(w, r, paramName, log)
	if !ok {
		return 0, 0, false
	}

	return accountID, pathID, true
}
