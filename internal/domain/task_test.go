package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexalabs/nexa-task-api/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		taskType string
		payload  map[string]any
		wantErr  error
	}{
		{
			name:     "valid_task",
			taskType: "optimize_route",
			payload:  map[string]any{"locations": []any{"A", "B", "C"}},
		},
		{
			name:     "arbitrary_type_is_accepted",
			taskType: "generate_report",
			payload:  map[string]any{"report_type": "monthly"},
		},
		{
			name:     "empty_payload_object_is_valid",
			taskType: "noop",
			payload:  map[string]any{},
		},
		{
			name:     "empty_type",
			taskType: "",
			payload:  map[string]any{},
			wantErr:  domain.ErrEmptyTaskType,
		},
		{
			name:     "nil_payload",
			taskType: "optimize_route",
			payload:  nil,
			wantErr:  domain.ErrNilTaskPayload,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tt.taskType, tt.payload)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.NotEqual(t, uuid.Nil, task.ID)
			assert.Equal(t, tt.taskType, task.Type)
			assert.Equal(t, tt.payload, task.Payload)
			assert.Equal(t, domain.TaskStatusPending, task.Status)
			assert.False(t, task.CreatedAt.IsZero())
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
		})
	}
}

func TestNewTask_GeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	payload := map[string]any{"report_type": "monthly"}

	first, err := domain.NewTask("generate_report", payload)
	require.NoError(t, err)

	second, err := domain.NewTask("generate_report", payload)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *domain.Task {
		task, err := domain.NewTask("optimize_route", map[string]any{})
		require.NoError(t, err)
		return task
	}

	t.Run("valid_task_passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid().Validate())
	})

	t.Run("nil_id_fails", func(t *testing.T) {
		t.Parallel()
		task := valid()
		task.ID = uuid.Nil
		assert.ErrorIs(t, task.Validate(), domain.ErrEmptyTaskID)
	})

	t.Run("empty_status_fails", func(t *testing.T) {
		t.Parallel()
		task := valid()
		task.Status = ""
		assert.ErrorIs(t, task.Validate(), domain.ErrEmptyTaskStatus)
	})
}

func TestTask_IsOptimizeRoute(t *testing.T) {
	t.Parallel()

	optimize, err := domain.NewTask(domain.TaskTypeOptimizeRoute, map[string]any{})
	require.NoError(t, err)
	assert.True(t, optimize.IsOptimizeRoute())

	report, err := domain.NewTask("generate_report", map[string]any{})
	require.NoError(t, err)
	assert.False(t, report.IsOptimizeRoute())
}
