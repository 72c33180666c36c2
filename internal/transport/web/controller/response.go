package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/webtoon-feed/internal/domain"
	"github.com/jbeshir/webtoon-feed/internal/validation"
)

// Bool string constants for route parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

// ErrorResponse is the body written alongside non-2xx statuses that carry a message.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, ErrorResponse{Error: message})
}

// statusForCommandError maps a validation failure to 400 and anything else to 500.
func statusForCommandError(err error) int {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func parseBoolParam(s string) (bool, bool) {
	switch s {
	case boolTrue:
		return true, true
	case boolFalse:
		return false, true
	default:
		return false, false
	}
}
