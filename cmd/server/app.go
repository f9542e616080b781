package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies to simplify management.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	now    func() time.Time

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore

	// Service interfaces
	taskService service.TaskService

	// Event system
	eventEmitter events.EventEmitter
}

// appOption customizes application construction.
type appOption func(*application)

// withClock overrides the time source used for task timestamps and health checks.
func withClock(now func() time.Time) appOption {
	return func(app *application) {
		app.now = now
	}
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...appOption,
) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}

	app.taskStore = memory.NewTaskStore(logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))
	emitter.RegisterHandler(events.EventHandlerFunc(app.logStoreSize))
	app.eventEmitter = emitter

	var err error
	app.taskService, err = service.NewTaskService(
		app.taskStore,
		app.eventEmitter,
		domain.TaskStatus(cfg.Tasks.DefaultStatus),
		logger,
		service.WithClock(app.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task service: %w", err)
	}

	if cfg.Tasks.SeedDemo {
		if err := service.SeedDemoTasks(ctx, app.taskService); err != nil {
			return nil, fmt.Errorf("failed to seed demo tasks: %w", err)
		}
		count, err := app.taskStore.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count seeded tasks: %w", err)
		}
		logger.Info("demo tasks seeded", slog.Int("task_count", count))
	}

	return app, nil
}

// logStoreSize records how many tasks remain stored after each lifecycle event.
func (app *application) logStoreSize(ctx context.Context, event *events.TaskEvent) error {
	count, err := app.taskStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("count tasks after %s: %w", event.Type, err)
	}
	logger.FromContextOrDefault(ctx, app.logger).DebugContext(ctx, "task store size",
		slog.String("event_type", event.Type),
		slog.Int64("task_id", event.TaskID),
		slog.Int("task_count", count))
	return nil
}
