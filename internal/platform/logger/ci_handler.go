package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/phrazzld/task-api/internal/ciutil"
)

// CIHandler is a slog.Handler that stamps CI environment metadata and, when
// enabled, source code location onto every log record. It is selected with
// the "ci" log format so that server output captured during pipeline smoke
// tests can be correlated with the run that produced it.
type CIHandler struct {
	handler   slog.Handler
	metadata  map[string]string
	addSource bool
}

// NewCIHandler creates a new CIHandler that wraps a JSON handler writing to out.
func NewCIHandler(out io.Writer, opts *slog.HandlerOptions) *CIHandler {
	return newCIHandler(out, opts, os.Getenv)
}

func newCIHandler(out io.Writer, opts *slog.HandlerOptions, getenv ciutil.Getenv) *CIHandler {
	// Clone the options to avoid modifying the caller's options
	handlerOpts := &slog.HandlerOptions{}
	if opts != nil {
		cp := *opts
		handlerOpts = &cp
	}
	addSource := handlerOpts.AddSource
	// Source is attached as flat attributes below instead.
	handlerOpts.AddSource = false

	return &CIHandler{
		handler:   slog.NewJSONHandler(out, handlerOpts),
		metadata:  ciutil.Metadata(getenv),
		addSource: addSource,
	}
}

// Enabled implements the slog.Handler interface.
func (h *CIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *CIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CIHandler{
		handler:   h.handler.WithAttrs(attrs),
		metadata:  h.metadata,
		addSource: h.addSource,
	}
}

// WithGroup implements the slog.Handler interface.
func (h *CIHandler) WithGroup(name string) slog.Handler {
	return &CIHandler{
		handler:   h.handler.WithGroup(name),
		metadata:  h.metadata,
		addSource: h.addSource,
	}
}

// Handle implements the slog.Handler interface.
func (h *CIHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := record.Clone()

	if h.addSource && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		enhanced.AddAttrs(
			slog.String("source_file", frame.File),
			slog.Int("source_line", frame.Line),
			slog.String("source_func", frame.Function),
		)
	}

	for key, value := range h.metadata {
		enhanced.AddAttrs(slog.String(key, value))
	}

	return h.handler.Handle(ctx, enhanced)
}
