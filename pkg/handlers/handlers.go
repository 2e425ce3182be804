// Package handlers provides JSON response helpers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/validation"
)

// ErrorResponse is the body of a domain error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationResponse is the body of a schema validation error response.
type ValidationResponse struct {
	Detail []validation.Issue `json:"detail"`
}

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes a {"detail": ...} body with the given status code.
// Validation errors are written with their issue list regardless of status.
// Server errors are logged; client errors are logged at debug level.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if verr, ok := validation.As(err); ok {
		logger.Debug("validation failed", "status", status, "issues", len(verr.Issues))
		RespondJSON(w, status, ValidationResponse{Detail: verr.Issues})
		return
	}

	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
		RespondJSON(w, status, ErrorResponse{Detail: http.StatusText(status)})
		return
	}

	logger.Debug("request rejected", "error", err, "status", status)
	RespondJSON(w, status, ErrorResponse{Detail: err.Error()})
}
