package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nexalabs/nexa-task-api/internal/domain"
	"github.com/nexalabs/nexa-task-api/internal/platform/logger"
	"github.com/nexalabs/nexa-task-api/internal/platform/metrics"
	"github.com/nexalabs/nexa-task-api/internal/store"
)

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// TaskService provides task-related operations.
type TaskService interface {
	// CreateTask persists a new task with the given type and payload
	// inside a request-scoped transaction and returns the fully
	// populated record, including the generated ID and timestamps.
	CreateTask(ctx context.Context, taskType string, payload map[string]any) (*domain.Task, error)

	// GetTask retrieves a task by its ID.
	// Returns store.ErrTaskNotFound if no record matches; absence is an
	// expected outcome, not a failure.
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// BuildTaskView produces the display form of a task. For
	// optimize_route tasks the view carries a synthesized result block;
	// all other tasks are returned in their plain serialized form.
	// This has no persistence side effect.
	BuildTaskView(task *domain.Task) TaskView
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	db        *sql.DB
	taskStore store.TaskStore
	results   *RouteResultBuilder
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	db *sql.DB,
	taskStore store.TaskStore,
	results *RouteResultBuilder,
	logger *slog.Logger,
) (TaskService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if results == nil {
		results = NewRouteResultBuilder(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		db:        db,
		taskStore: taskStore,
		results:   results,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	taskType string,
	payload map[string]any,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(taskType, payload)
	if err != nil {
		log.Warn("task construction failed",
			slog.String("error", err.Error()),
			slog.String("task_type", taskType))
		return nil, NewTaskServiceError("create_task", "invalid task data", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("task_type", taskType))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	metrics.TasksCreatedTotal.WithLabelValues(task.Type).Inc()

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("task_type", task.Type))
	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var task *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		task, err = s.taskStore.WithTx(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, err
		}
		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// BuildTaskView implements TaskService.BuildTaskView.
func (s *taskServiceImpl) BuildTaskView(task *domain.Task) TaskView {
	view := TaskView{
		ID:        task.ID.String(),
		Type:      task.Type,
		Payload:   task.Payload,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}

	if task.IsOptimizeRoute() {
		view.Result = s.results.Build(task)
	}

	return view
}
