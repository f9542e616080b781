package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/task-api/internal/platform/logger"
)

const emitterComponent = "task_event_emitter"

// InMemoryEventEmitter delivers task events synchronously to every registered
// handler, in registration order.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with no handlers.
func NewInMemoryEventEmitter(log *slog.Logger) *InMemoryEventEmitter {
	if log == nil {
		log = slog.Default()
	}
	return &InMemoryEventEmitter{logger: log}
}

// RegisterHandler subscribes handler to every subsequent event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	e.handlers = append(e.handlers, handler)
	count := len(e.handlers)
	e.mu.Unlock()

	e.logger.Debug("task event handler registered",
		slog.String("component", emitterComponent),
		slog.String("handler", fmt.Sprintf("%T", handler)),
		slog.Int("handler_count", count))
}

// EmitEvent delivers event to all registered handlers. A failing or panicking
// handler does not stop delivery to the rest; their errors are joined.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *TaskEvent) error {
	e.mu.RLock()
	handlers := append([]EventHandler(nil), e.handlers...)
	e.mu.RUnlock()

	log := logger.FromContextOrDefault(ctx, e.logger).With(
		slog.String("component", emitterComponent),
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int64("task_id", event.TaskID),
	)
	log.DebugContext(ctx, "dispatching task event", slog.Int("handler_count", len(handlers)))

	var errs []error
	for i, handler := range handlers {
		if err := deliver(ctx, handler, event); err != nil {
			log.ErrorContext(ctx, "task event handler failed",
				slog.Int("handler_index", i),
				slog.String("handler", fmt.Sprintf("%T", handler)),
				slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// deliver calls handler, converting a panic into an error.
func deliver(ctx context.Context, handler EventHandler, event *TaskEvent) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task event handler panicked: %v", rec)
		}
	}()
	return handler.HandleEvent(ctx, event)
}
