package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations copy tasks on the way in and out; callers never share
// state with the store.
type TaskStore interface {
	// Create assigns the next identifier to task, records it, and appends it
	// to the ordered collection. The assigned ID is written back to task.
	// Returns ErrInvalidEntity if the task fails domain validation.
	Create(ctx context.Context, task *domain.Task) error

	// List returns all tasks in insertion order.
	// Returns an empty slice when the store holds no tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces an existing task, keeping its position and CreatedAt.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task. Its identifier is never reassigned.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the number of tasks currently held.
	Count(ctx context.Context) (int, error)
}
