package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverer(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes JSON 500", func(t *testing.T) {
		t.Parallel()

		logHandler := testutils.NewTestSlogHandler()
		handler := TraceMiddleware(slog.New(logHandler))(Recoverer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				panic("connect to postgres://admin:hunter2@db/tasks failed")
			})))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		require.NotPanics(t, func() { handler.ServeHTTP(rr, req) })

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Error)
		assert.Equal(t, "An unexpected error occurred", body.Message)
		assert.Equal(t, rr.Header().Get(TraceIDHeader), body.TraceID)
		assert.NotContains(t, rr.Body.String(), "hunter2")

		entries := logHandler.EntriesWithMessage("panic recovered")
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0]["level"])
		assert.NotContains(t, entries[0]["panic"], "hunter2")
		assert.Contains(t, entries[0]["stack"], "goroutine")
	})

	t.Run("no panic passes through", func(t *testing.T) {
		t.Parallel()

		handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})

	t.Run("abort handler is re-panicked", func(t *testing.T) {
		t.Parallel()

		handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
