package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
)

// Outcome markers carried in the "status" field of success envelopes.
const (
	outcomeSuccess = "success"
	outcomeCreated = "created"
	outcomeUpdated = "updated"
	outcomeDeleted = "deleted"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	resp := TaskListResponse{
		Tasks:  make([]TaskResponse, 0, len(tasks)),
		Count:  len(tasks),
		Status: outcomeSuccess,
	}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, taskToResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetTask handles GET /api/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err, shared.WithTaskID(id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskEnvelope{
		Task:   taskToResponse(task),
		Status: outcomeSuccess,
	})
}

// CreateTask handles POST /api/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid create task payload", slog.String("error", err.Error()))
		h.respondWithDecodeError(w, r, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Completed:   req.Completed,
	})
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, TaskEnvelope{
		Task:   taskToResponse(task),
		Status: outcomeCreated,
	})
}

// UpdateTask handles PUT /api/tasks/{id} requests.
// Only the fields present in the body are changed.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		// An unknown task is reported ahead of a bad body.
		if _, getErr := h.taskService.GetTask(r.Context(), id); getErr != nil {
			h.respondWithServiceError(w, r, getErr, shared.WithTaskID(id))
			return
		}
		h.respondWithDecodeError(w, r, err, shared.WithTaskID(id))
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.toDomain())
	if err != nil {
		h.respondWithServiceError(w, r, err, shared.WithTaskID(id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskEnvelope{
		Task:   taskToResponse(task),
		Status: outcomeUpdated,
	})
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err, shared.WithTaskID(id))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: "Task deleted successfully",
		TaskID:  id,
		Status:  outcomeDeleted,
	})
}

// pathID parses the {id} parameter, writing an error response when it names
// no task (404) or is not a number (400).
func (h *TaskHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) respondWithServiceError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	opts ...shared.ResponseOption,
) {
	statusCode := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err, opts...)
}

// respondWithDecodeError answers a request whose body could not be decoded.
// Oversized bodies are logged at WARN.
func (h *TaskHandler) respondWithDecodeError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	opts ...shared.ResponseOption,
) {
	statusCode := MapErrorToStatusCode(err)
	if statusCode == http.StatusRequestEntityTooLarge {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err, opts...)
}
