package api

import (
	"errors"
	"net/http"

	"github.com/nexalabs/nexa-task-api/internal/domain"
	"github.com/nexalabs/nexa-task-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Client input errors
	case errors.Is(err, domain.ErrEmptyTaskType),
		errors.Is(err, domain.ErrNilTaskPayload),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type, keeping internal details out of responses.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, domain.ErrEmptyTaskType):
		return "Task type is required"

	case errors.Is(err, domain.ErrNilTaskPayload):
		return "Task payload is required"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	default:
		return "An unexpected error occurred"
	}
}
