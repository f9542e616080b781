package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// CreateTaskParams holds the input of TaskService.CreateTask.
type CreateTaskParams struct {
	Title       string
	Description string
	// Status may be empty, in which case the configured initial status is used.
	Status domain.TaskStatus
	// Completed, when true, creates the task directly in the completed status.
	Completed bool
}

// TaskService provides task-related operations.
type TaskService interface {
	// CreateTask validates and stores a new task.
	// Returns a *domain.ValidationError if the title is missing or empty.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// ListTasks returns every task in insertion order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask applies a partial update to an existing task.
	// Returns ErrTaskNotFound if the task does not exist; existence is
	// checked before the update is validated.
	UpdateTask(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error)

	// DeleteTask removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id int64) error
}

// Option customizes a task service.
type Option func(*taskServiceImpl)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *taskServiceImpl) {
		s.now = now
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         store.TaskStore
	eventEmitter  events.EventEmitter
	initialStatus domain.TaskStatus
	now           func() time.Time
	logger        *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
// eventEmitter may be nil, in which case no events are published.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	initialStatus domain.TaskStatus,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if logger == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "logger cannot be nil"}
	}
	if initialStatus == "" {
		initialStatus = domain.TaskStatusPending
	}

	s := &taskServiceImpl{
		store:         taskStore,
		eventEmitter:  eventEmitter,
		initialStatus: initialStatus,
		now:           time.Now,
		logger:        logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status := params.Status
	if params.Completed {
		status = domain.TaskStatusCompleted
	}

	task, err := domain.NewTask(params.Title, params.Description, status, s.initialStatus, s.now())
	if err != nil {
		log.Debug("task validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to store task", err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	s.emit(ctx, events.TaskCreated, task.ID, task)
	return task, nil
}

// ListTasks implements TaskService.ListTasks.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to get task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("update_task", "failed to get task", err)
	}

	if err := task.ApplyUpdate(update, s.initialStatus, s.now()); err != nil {
		log.Debug("task update rejected",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.store.Update(ctx, task); err != nil {
		return nil, NewTaskServiceError("update_task", "failed to store task", err)
	}

	log.Info("task updated",
		slog.Int64("task_id", task.ID),
		slog.String("status", string(task.Status)))
	s.emit(ctx, events.TaskUpdated, task.ID, task)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.store.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	s.emit(ctx, events.TaskDeleted, id, nil)
	return nil
}

// emit publishes a lifecycle event. Failures are logged and never returned;
// the change has already been applied.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, taskID int64, task *domain.Task) {
	if s.eventEmitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	var payload interface{}
	if task != nil {
		payload = task
	}

	event, err := events.NewTaskEvent(eventType, taskID, payload)
	if err != nil {
		log.Error("failed to build task event",
			slog.String("event_type", eventType),
			slog.Int64("task_id", taskID),
			slog.String("error", err.Error()))
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit task event",
			slog.String("event_type", eventType),
			slog.Int64("task_id", taskID),
			slog.String("error", err.Error()))
	}
}
