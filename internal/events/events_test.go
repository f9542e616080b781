package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskEvent(t *testing.T) {
	payload := map[string]interface{}{"id": 5, "title": "Write report"}

	event, err := NewTaskEvent(TaskCreated, 5, payload)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TaskCreated, event.Type)
	assert.Equal(t, int64(5), event.TaskID)
	assert.False(t, event.CreatedAt.IsZero())

	var decoded struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, int64(5), decoded.ID)
	assert.Equal(t, "Write report", decoded.Title)
}

func TestNewTaskEvent_UniqueIDs(t *testing.T) {
	a, err := NewTaskEvent(TaskDeleted, 1, nil)
	require.NoError(t, err)
	b, err := NewTaskEvent(TaskDeleted, 1, nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Nil(t, a.Payload)
}

func TestNewTaskEvent_UnencodablePayload(t *testing.T) {
	_, err := NewTaskEvent(TaskCreated, 1, make(chan int))
	assert.Error(t, err)
}

func TestAuditLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := NewAuditLogHandler(logger)

	event, err := NewTaskEvent(TaskUpdated, 12, nil)
	require.NoError(t, err)

	require.NoError(t, handler.HandleEvent(context.Background(), event))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task lifecycle event", entry["msg"])
	assert.Equal(t, "task_audit", entry["component"])
	assert.Equal(t, TaskUpdated, entry["event_type"])
	assert.Equal(t, float64(12), entry["task_id"])
	assert.Equal(t, event.ID.String(), entry["event_id"])

	_, hasStatus := entry["task_status"]
	assert.False(t, hasStatus, "events without a snapshot carry no status")
}

func TestAuditLogHandler_Snapshot(t *testing.T) {
	var buf bytes.Buffer
	handler := NewAuditLogHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	event, err := NewTaskEvent(TaskCreated, 4, map[string]string{
		"title":  "Write report",
		"status": "in_progress",
	})
	require.NoError(t, err)

	require.NoError(t, handler.HandleEvent(context.Background(), event))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "in_progress", entry["task_status"])
	assert.NotContains(t, buf.String(), "Write report")
}

func TestAuditLogHandler_UndecodableSnapshot(t *testing.T) {
	var buf bytes.Buffer
	handler := NewAuditLogHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	event, err := NewTaskEvent(TaskUpdated, 4, []string{"not", "an", "object"})
	require.NoError(t, err)

	err = handler.HandleEvent(context.Background(), event)
	assert.ErrorContains(t, err, "decode task.updated payload")
	assert.Empty(t, buf.String())
}
