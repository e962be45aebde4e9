package service

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexalabs/nexa-task-api/internal/domain"
	"github.com/nexalabs/nexa-task-api/internal/store"
)

// mockTaskStore is a function-field mock of store.TaskStore.
type mockTaskStore struct {
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

func newServiceWithMock(t *testing.T, ts store.TaskStore) (TaskService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc, err := NewTaskService(db, ts, seededBuilder(7), nil)
	require.NoError(t, err)
	return svc, mock
}

func TestNewTaskService(t *testing.T) {
	t.Parallel()

	db := &sql.DB{}
	ts := &mockTaskStore{}

	t.Run("nil_db_is_rejected", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(nil, ts, nil, nil)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("nil_store_is_rejected", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(db, nil, nil, nil)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("nil_builder_and_logger_get_defaults", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(db, ts, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("success_commits_transaction", func(t *testing.T) {
		var saved *domain.Task
		ts := &mockTaskStore{
			CreateFn: func(ctx context.Context, task *domain.Task) error {
				saved = task
				return nil
			},
		}
		svc, mock := newServiceWithMock(t, ts)

		mock.ExpectBegin()
		mock.ExpectCommit()

		payload := map[string]any{"report_type": "monthly"}
		task, err := svc.CreateTask(context.Background(), "generate_report", payload)
		require.NoError(t, err)
		require.NotNil(t, task)

		assert.Equal(t, "generate_report", task.Type)
		assert.Equal(t, payload, task.Payload)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Same(t, task, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("identical_inputs_produce_distinct_ids", func(t *testing.T) {
		ts := &mockTaskStore{}
		svc, mock := newServiceWithMock(t, ts)

		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectCommit()

		payload := map[string]any{"report_type": "monthly"}
		first, err := svc.CreateTask(context.Background(), "generate_report", payload)
		require.NoError(t, err)
		second, err := svc.CreateTask(context.Background(), "generate_report", payload)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("invalid_input_never_opens_transaction", func(t *testing.T) {
		ts := &mockTaskStore{}
		svc, mock := newServiceWithMock(t, ts)

		task, err := svc.CreateTask(context.Background(), "", map[string]any{})
		assert.ErrorIs(t, err, domain.ErrEmptyTaskType)
		assert.Nil(t, task)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store_failure_rolls_back", func(t *testing.T) {
		storeErr := errors.New("insert failed")
		ts := &mockTaskStore{
			CreateFn: func(ctx context.Context, task *domain.Task) error {
				return storeErr
			},
		}
		svc, mock := newServiceWithMock(t, ts)

		mock.ExpectBegin()
		mock.ExpectRollback()

		task, err := svc.CreateTask(context.Background(), "generate_report", map[string]any{})
		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, task)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskService_GetTask(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		want, err := domain.NewTask("optimize_route", map[string]any{"locations": []any{"A"}})
		require.NoError(t, err)

		ts := &mockTaskStore{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
				assert.Equal(t, want.ID, id)
				return want, nil
			},
		}
		svc, mock := newServiceWithMock(t, ts)

		mock.ExpectBegin()
		mock.ExpectCommit()

		got, err := svc.GetTask(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent_task_surfaces_not_found", func(t *testing.T) {
		ts := &mockTaskStore{}
		svc, mock := newServiceWithMock(t, ts)

		mock.ExpectBegin()
		mock.ExpectRollback()

		got, err := svc.GetTask(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Nil(t, got)
	})

	t.Run("unexpected_store_failure_is_wrapped", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		ts := &mockTaskStore{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
				return nil, storeErr
			},
		}
		svc, mock := newServiceWithMock(t, ts)

		mock.ExpectBegin()
		mock.ExpectRollback()

		got, err := svc.GetTask(context.Background(), uuid.New())
		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, got)

		var svcErr *TaskServiceError
		assert.ErrorAs(t, err, &svcErr)
	})
}

func TestTaskService_BuildTaskView(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc, err := NewTaskService(db, &mockTaskStore{},
		NewRouteResultBuilder(rand.New(rand.NewSource(11))), nil)
	require.NoError(t, err)

	t.Run("optimize_route_gets_result_block", func(t *testing.T) {
		task, err := domain.NewTask(domain.TaskTypeOptimizeRoute,
			map[string]any{"locations": []any{"A", "B", "C", "D"}})
		require.NoError(t, err)

		view := svc.BuildTaskView(task)

		assert.Equal(t, task.ID.String(), view.ID)
		assert.Equal(t, task.Payload, view.Payload)
		assert.Equal(t, "pending", view.Status)
		require.NotNil(t, view.Result)
		assert.Equal(t, []int{1, 2, 3, 4}, view.Result.SuggestedOrder)
	})

	t.Run("other_types_get_plain_view", func(t *testing.T) {
		task, err := domain.NewTask("generate_report",
			map[string]any{"report_type": "monthly"})
		require.NoError(t, err)

		view := svc.BuildTaskView(task)

		assert.Equal(t, task.ID.String(), view.ID)
		assert.Nil(t, view.Result)
	})
}
