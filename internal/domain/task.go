package domain

import (
	"strings"
	"time"
)

// TaskStatus is the workflow state of a task. Values outside the well-known
// set are accepted as-is.
type TaskStatus string

// Well-known task status values.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task is the single resource managed by the API: a unit of work with a status.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task with the given fields. The ID is left zero; it
// is assigned by the store. An empty status falls back to defaultStatus.
// Returns an error if validation fails.
func NewTask(title, description string, status, defaultStatus TaskStatus, now time.Time) (*Task, error) {
	if status == "" {
		status = defaultStatus
	}

	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	return nil
}

// Completed reports whether the task has reached the completed status.
func (t *Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}

// Clone returns a copy of the task that shares no state with t.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// TaskUpdate carries the fields of a partial update. Nil fields are left
// untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	// Completed is applied after Status: true moves the task to completed,
	// false moves a completed task back to the initial status.
	Completed *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.Completed == nil
}

// ApplyUpdate applies the supplied fields of u to the task and refreshes
// UpdatedAt. The task is left unchanged when an error is returned.
func (t *Task) ApplyUpdate(u TaskUpdate, initialStatus TaskStatus, now time.Time) error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}

	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Status != nil {
		status := *u.Status
		if status == "" {
			status = initialStatus
		}
		t.Status = status
	}
	if u.Completed != nil {
		switch {
		case *u.Completed:
			t.Status = TaskStatusCompleted
		case t.Status == TaskStatusCompleted:
			t.Status = initialStatus
		}
	}

	t.UpdatedAt = now.UTC()
	return nil
}
