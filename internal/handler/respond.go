package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hr-registry-api/internal/domain"
	"github.com/hr-registry-api/internal/dto"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, category, message string) {
	respondJSON(w, logger, status, dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     category,
		Message:   message,
		Path:      r.URL.Path,
	})
}

func respondFieldErrors(w http.ResponseWriter, r *http.Request, logger *slog.Logger, fields map[string]string) {
	respondJSON(w, logger, http.StatusBadRequest, dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     "Validation error",
		Message:   "one or more fields are invalid",
		Path:      r.URL.Path,
		Fields:    fields,
	})
}

// handleServiceError maps the domain error taxonomy onto transport status
// codes. Business conflicts are 400, not 409. Unexpected errors are logged
// with full cause and reported generically.
func handleServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		notFound *domain.NotFoundError
		conflict *domain.ConflictError
		invalid  *domain.InvalidArgumentError
	)

	switch {
	case errors.As(err, &notFound):
		respondError(w, r, logger, http.StatusNotFound, "Resource not found", notFound.Error())
	case errors.As(err, &conflict):
		respondError(w, r, logger, http.StatusBadRequest, "Business error", conflict.Message)
	case errors.As(err, &invalid):
		respondError(w, r, logger, http.StatusBadRequest, "Invalid argument", invalid.Message)
	default:
		logger.Error("internal error", slog.Any("error", err), slog.String("path", r.URL.Path))
		respondError(w, r, logger, http.StatusInternalServerError, "Internal server error",
			"an unexpected error occurred, try again later")
	}
}
