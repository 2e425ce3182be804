package prompts

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Domain errors for prompt operations.
var (
	ErrNotFound          = errors.New("prompt not found")
	ErrDuplicate         = errors.New("prompt id already exists")
	ErrInvalidCollection = errors.New("collection not found")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidCollection) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, validation.ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if _, ok := validation.As(err); ok {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
