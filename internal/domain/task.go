package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task record.
type TaskStatus string

// Possible task status values. Only pending is ever assigned today:
// nothing in this system executes tasks, so no code path transitions
// a record out of its initial state.
const (
	TaskStatusPending TaskStatus = "pending"
)

// TaskTypeOptimizeRoute is the one task type with special display
// behavior: retrieval augments the stored record with a synthesized
// route optimization result.
const TaskTypeOptimizeRoute = "optimize_route"

// Common validation errors for Task
var (
	ErrEmptyTaskID     = errors.New("task ID cannot be empty")
	ErrEmptyTaskType   = errors.New("task type cannot be empty")
	ErrNilTaskPayload  = errors.New("task payload cannot be nil")
	ErrEmptyTaskStatus = errors.New("task status cannot be empty")
)

// Task represents a persisted unit of work metadata submitted by a
// client. The type string is an open contract: any value is accepted
// and stored verbatim. The payload is owned entirely by the caller's
// domain and treated as opaque JSON by this system.
type Task struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	Status    TaskStatus     `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewTask creates a new Task with the given type and payload.
// It generates a new UUID for the task ID, sets the status to pending,
// and stamps both timestamps with the current time.
// Returns an error if validation fails.
func NewTask(taskType string, payload map[string]any) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		Type:      taskType,
		Payload:   payload,
		Status:    TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.Type == "" {
		return ErrEmptyTaskType
	}

	if t.Payload == nil {
		return ErrNilTaskPayload
	}

	if t.Status == "" {
		return ErrEmptyTaskStatus
	}

	return nil
}

// IsOptimizeRoute reports whether the task carries the route
// optimization type marker.
func (t *Task) IsOptimizeRoute() bool {
	return t.Type == TaskTypeOptimizeRoute
}
