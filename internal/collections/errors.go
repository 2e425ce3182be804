package collections

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Domain errors for collection operations.
var (
	ErrNotFound  = errors.New("collection not found")
	ErrDuplicate = errors.New("collection id already exists")
)

// MapHTTPStatus maps collection domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
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
