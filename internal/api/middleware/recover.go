package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
)

// Recoverer turns a panic in a downstream handler into a JSON 500 response.
// The panic value is redacted and logged with the stack at ERROR level.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// http.ErrAbortHandler is the sanctioned way to abort a response.
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("panic", redact.String(fmt.Sprint(rec))),
				slog.String("stack", string(debug.Stack())))

			shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error",
				shared.WithMessage("An unexpected error occurred"))
		}()

		next.ServeHTTP(w, r)
	})
}
