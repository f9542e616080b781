package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
)

// CreateTaskRequest defines the payload for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Completed   bool   `json:"completed"`
}

// UpdateTaskRequest defines the payload for PUT /api/tasks/{id}.
// Only the fields present in the body are applied.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Completed   *bool   `json:"completed"`
}

// UnmarshalJSON decodes the request, treating `"title": null` as an empty
// title rather than an absent one.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateTaskRequest
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	if decoded.Title == nil {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		for key := range fields {
			if strings.EqualFold(key, "title") {
				empty := ""
				decoded.Title = &empty
				break
			}
		}
	}

	*r = UpdateTaskRequest(decoded)
	return nil
}

// toDomain converts the request into a partial domain update.
func (r UpdateTaskRequest) toDomain() domain.TaskUpdate {
	u := domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
	if r.Status != nil {
		status := domain.TaskStatus(*r.Status)
		u.Status = &status
	}
	return u
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskEnvelope wraps a single task with an outcome marker.
type TaskEnvelope struct {
	Task   TaskResponse `json:"task"`
	Status string       `json:"status"`
}

// TaskListResponse is returned by GET /api/tasks.
type TaskListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Count  int            `json:"count"`
	Status string         `json:"status"`
}

// DeleteTaskResponse confirms a deletion.
type DeleteTaskResponse struct {
	Message string `json:"message"`
	TaskID  int64  `json:"task_id"`
	Status  string `json:"status"`
}

// IndexResponse describes the API on GET /.
type IndexResponse struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Completed:   task.Completed(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
