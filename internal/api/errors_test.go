package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexalabs/nexa-task-api/internal/domain"
	"github.com/nexalabs/nexa-task-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "task_not_found", err: store.ErrTaskNotFound, want: http.StatusNotFound},
		{
			name: "wrapped_not_found",
			err:  fmt.Errorf("get: %w", store.ErrTaskNotFound),
			want: http.StatusNotFound,
		},
		{name: "empty_type", err: domain.ErrEmptyTaskType, want: http.StatusUnprocessableEntity},
		{name: "nil_payload", err: domain.ErrNilTaskPayload, want: http.StatusUnprocessableEntity},
		{name: "invalid_entity", err: store.ErrInvalidEntity, want: http.StatusUnprocessableEntity},
		{name: "unknown_error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil_error", err: nil, want: "An unexpected error occurred"},
		{name: "task_not_found", err: store.ErrTaskNotFound, want: "Task not found"},
		{name: "empty_type", err: domain.ErrEmptyTaskType, want: "Task type is required"},
		{name: "nil_payload", err: domain.ErrNilTaskPayload, want: "Task payload is required"},
		{name: "invalid_entity", err: store.ErrInvalidEntity, want: "Invalid task data"},
		{
			name: "internal_details_never_leak",
			err:  errors.New("pq: connection refused at 10.0.0.5"),
			want: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
