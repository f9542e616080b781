package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithLogger builds a request whose context carries a JSON logger
// writing into buf, plus the given trace ID.
func requestWithLogger(buf *bytes.Buffer, traceID string) *http.Request {
	l := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logger.WithLogger(context.Background(), l)
	if traceID != "" {
		ctx = WithTraceID(ctx, traceID)
	}
	return httptest.NewRequest(http.MethodGet, "/api/tasks/1", nil).WithContext(ctx)
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusCreated,
			data:         map[string]interface{}{"status": "created", "count": 1},
			expectedBody: `{"count":1,"status":"created"}` + "\n",
		},
		{
			name:         "empty object",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: "{}\n",
		},
		{
			name:         "nil",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: "null\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	var logBuf bytes.Buffer
	req := requestWithLogger(&logBuf, "")
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	var logBuf bytes.Buffer
	req := requestWithLogger(&logBuf, "test-trace-id")
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Task not found", WithTaskID(9999))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Task not found", body["error"])
	assert.Equal(t, float64(9999), body["task_id"])
	assert.Equal(t, "test-trace-id", body["trace_id"])
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "Code")
}

func TestRespondWithErrorOptionalFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Endpoint not found",
		WithMessage("The requested endpoint does not exist"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Equal(t, "The requested endpoint does not exist", body["message"])
	assert.NotContains(t, body, "task_id")
	assert.NotContains(t, body, "trace_id", "no trace ID in context")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		opts             []ResponseOption
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			message:          "Internal server error",
			err:              errors.New("store exploded"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error with default log level",
			statusCode:       http.StatusBadRequest,
			message:          "Title is required",
			err:              errors.New("title is required"),
			expectedLogLevel: "DEBUG",
		},
		{
			name:             "client error with elevated log level",
			statusCode:       http.StatusBadRequest,
			message:          "Bad request",
			err:              errors.New("suspicious input"),
			opts:             []ResponseOption{WithElevatedLogLevel()},
			expectedLogLevel: "WARN",
		},
		{
			name:             "rate limiting",
			statusCode:       http.StatusTooManyRequests,
			message:          "Too many requests",
			err:              errors.New("rate limit exceeded"),
			expectedLogLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			req := requestWithLogger(&logBuf, "trace-123")
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err, tc.opts...)

			assert.Equal(t, tc.statusCode, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body.Error)
			assert.Equal(t, "trace-123", body.TraceID)
			assert.NotContains(t, w.Body.String(), tc.err.Error(), "raw error must not leak to clients")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
			assert.Equal(t, tc.expectedLogLevel, entry["level"])
			assert.Equal(t, "API error response", entry["msg"])
			assert.Equal(t, tc.err.Error(), entry["error"])
			assert.Equal(t, float64(tc.statusCode), entry["status_code"])
			assert.Equal(t, "trace-123", entry["trace_id"])
		})
	}
}

func TestRespondWithErrorAndLogRedacts(t *testing.T) {
	var logBuf bytes.Buffer
	req := requestWithLogger(&logBuf, "")
	w := httptest.NewRecorder()

	err := errors.New("open /etc/task-api/secrets.env: permission denied")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Internal server error", err)

	assert.NotContains(t, logBuf.String(), "/etc/task-api")
	assert.Contains(t, logBuf.String(), "[REDACTED_PATH]")
}
