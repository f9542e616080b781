package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements the store.TaskStore interface over an ordered slice
// held in process memory. Identifiers start at 1 and are never reused.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	lastID int64
	logger *slog.Logger
}

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make([]*domain.Task, 0),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return fmt.Errorf("%w: task is nil", store.ErrInvalidEntity)
	}
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "validation failed", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	s.lastID++
	task.ID = s.lastID
	s.tasks = append(s.tasks, task.Clone())
	count := len(s.tasks)
	s.mu.Unlock()

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int("task_count", count))
	return nil
}

// List implements store.TaskStore.List.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		result[i] = t.Clone()
	}
	return result, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrTaskNotFound
	}
	return s.tasks[i].Clone(), nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task == nil {
		return fmt.Errorf("%w: task is nil", store.ErrInvalidEntity)
	}
	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "update", "validation failed", fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(task.ID)
	if i < 0 {
		return store.ErrTaskNotFound
	}

	updated := task.Clone()
	updated.CreatedAt = s.tasks[i].CreatedAt
	s.tasks[i] = updated

	log.Debug("task updated", slog.Int64("task_id", task.ID))
	return nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return store.ErrTaskNotFound
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)

	log.Debug("task deleted",
		slog.Int64("task_id", id),
		slog.Int("task_count", len(s.tasks)))
	return nil
}

// Count implements store.TaskStore.Count.
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}

// indexOf returns the position of id in the ordered slice, or -1.
// Callers must hold s.mu.
func (s *TaskStore) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
