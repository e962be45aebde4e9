package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/nexalabs/nexa-task-api/internal/domain"
)

// TaskStore defines the interface for task record persistence.
// The record lifecycle is create-then-read-only: no update or delete
// operation is exposed.
type TaskStore interface {
	// Create saves a new task to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist; an absent
	// record is an expected outcome, not a server failure.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller,
	// typically through RunInTransaction.
	WithTx(tx *sql.Tx) TaskStore
}
