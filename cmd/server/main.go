// Package main implements the entry point for the task API server, an
// in-memory REST service for creating, listing, updating and deleting tasks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/task-api/internal/ciutil"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "task-api: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, wires the application and
// serves HTTP until SIGINT or SIGTERM is received.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		slog.String("addr", cfg.Server.Addr()),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("log_format", cfg.Server.LogFormat),
		slog.String("default_status", cfg.Tasks.DefaultStatus),
		slog.Bool("seed_demo", cfg.Tasks.SeedDemo),
		slog.Bool("ci", ciutil.IsCI(os.Getenv)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
