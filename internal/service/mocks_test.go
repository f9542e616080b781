package service

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
)

// MockTaskStore is a function-based mock of store.TaskStore.
type MockTaskStore struct {
	CreateFn  func(ctx context.Context, task *domain.Task) error
	ListFn    func(ctx context.Context) ([]*domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id int64) error
	CountFn   func(ctx context.Context) (int, error)
}

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Task{}, nil
}

func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return nil
}

func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockTaskStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// recordingEmitter captures emitted events and can be told to fail.
type recordingEmitter struct {
	events []*events.TaskEvent
	err    error
}

func (r *recordingEmitter) EmitEvent(ctx context.Context, event *events.TaskEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingEmitter) types() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}
