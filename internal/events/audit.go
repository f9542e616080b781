package events

import (
	"context"
	"fmt"
	"log/slog"
)

// AuditLogHandler writes every task event to a structured logger at info level.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler writing to logger.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogHandler{logger: logger.With("component", "task_audit")}
}

// auditSnapshot is the part of a task snapshot recorded in the audit log.
// Titles and descriptions are user content and stay out of it.
type auditSnapshot struct {
	Status string `json:"status"`
}

// HandleEvent implements EventHandler. Events carrying a snapshot also log the
// task's resulting status.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	attrs := []slog.Attr{
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int64("task_id", event.TaskID),
		slog.Time("event_time", event.CreatedAt),
	}

	if len(event.Payload) > 0 {
		var snapshot auditSnapshot
		if err := event.UnmarshalPayload(&snapshot); err != nil {
			return fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		attrs = append(attrs, slog.String("task_status", snapshot.Status))
	}

	h.logger.LogAttrs(ctx, slog.LevelInfo, "task lifecycle event", attrs...)
	return nil
}
