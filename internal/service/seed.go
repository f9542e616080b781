package service

import (
	"context"
	"fmt"
)

// demoTasks are preloaded when demo seeding is enabled.
var demoTasks = []CreateTaskParams{
	{Title: "Setup CI/CD Pipeline", Description: "Configure GitHub Actions"},
	{Title: "Write Unit Tests", Description: "Create comprehensive test suite"},
}

// SeedDemoTasks creates the demo tasks through svc, in order.
func SeedDemoTasks(ctx context.Context, svc TaskService) error {
	for _, params := range demoTasks {
		if _, err := svc.CreateTask(ctx, params); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", params.Title, err)
		}
	}
	return nil
}
