package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/newsgauge/veracity/internal/domain"
)

const (
	defaultListLimit = 5
	maxListLimit     = 100
)

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Message string `json:"message"`
}

// writeDomainError maps the failure taxonomy onto HTTP statuses. Validation
// and duplicates are caller mistakes; not-found means another admin got there
// first; anything else is a server fault and is logged at error level.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	switch {
	case errors.Is(err, domain.ErrValidation):
		logger.WarnContext(ctx, "request rejected by validation", "error", err)
		_ = writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrPermission):
		logger.WarnContext(ctx, "request rejected by authorization", "error", err)
		_ = writeJSON(w, http.StatusForbidden, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, domain.ErrDuplicateReport):
		logger.WarnContext(ctx, "duplicate rejected", "error", err)
		_ = writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		logger.InfoContext(ctx, "target already handled", "error", err)
		_ = writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	default:
		logger.ErrorContext(ctx, "request failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func limitFromQuery(q url.Values) (int, error) {
	if !q.Has("limit") {
		return defaultListLimit, nil
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 || limit > maxListLimit {
		return 0, fmt.Errorf("limit [%d] outside range 1..%d", limit, maxListLimit)
	}
	return limit, nil
}
