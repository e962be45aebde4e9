package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nexalabs/nexa-task-api/internal/api/shared"
	"github.com/nexalabs/nexa-task-api/internal/platform/logger"
	"github.com/nexalabs/nexa-task-api/internal/service"
	"github.com/nexalabs/nexa-task-api/internal/store"
)

// CreateTaskRequest represents the request body for creating a new task.
// The type is an open string contract: any non-empty value is accepted.
type CreateTaskRequest struct {
	Type    string         `json:"type"    validate:"required"`
	Payload map[string]any `json:"payload" validate:"required"`
}

// CreateTaskResponse is the envelope returned on successful creation.
type CreateTaskResponse struct {
	Message string           `json:"message"`
	Task    service.TaskView `json:"task"`
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/v1/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create task request",
			slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid request body: expected JSON with 'type' and 'payload'")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		log.Debug("create task request failed validation",
			slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Validation error: "+validationDetail(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Type, req.Payload)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	response := CreateTaskResponse{
		Message: "Task created successfully",
		Task:    h.taskService.BuildTaskView(task),
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// GetTask handles GET /api/v1/tasks/{id} requests.
// The stored view is returned as-is; optimize_route tasks are returned
// with the synthesized result block attached.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawID := chi.URLParam(r, "id")

	// Ids are UUIDs; a malformed id can't match any stored task, so it
	// gets the same not-found response as an unknown id.
	id, err := uuid.Parse(rawID)
	if err != nil {
		log.Debug("task id is not a valid UUID", slog.String("task_id", rawID))
		shared.RespondWithError(w, r, http.StatusNotFound, taskNotFoundDetail(rawID))
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, taskNotFoundDetail(rawID))
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to retrieve task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, h.taskService.BuildTaskView(task))
}

// taskNotFoundDetail builds the not-found message naming the requested id.
func taskNotFoundDetail(id string) string {
	return fmt.Sprintf("Task with id '%s' not found", id)
}

// validationDetail flattens validator errors into a short field-level
// description safe to return to clients.
func validationDetail(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request"
	}

	detail := ""
	for i, fieldErr := range validationErrs {
		if i > 0 {
			detail += "; "
		}
		detail += fmt.Sprintf("field '%s' failed on '%s'",
			fieldErr.Field(), fieldErr.Tag())
	}
	return detail
}
