package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Kind is the terminal outcome a notification reports.
type Kind string

const (
	KindCompleted Kind = "completed"
	KindFailed    Kind = "failed"
	KindDuplicate Kind = "duplicate"
)

// Notification is one terminal-outcome message for a file's owner.
type Notification struct {
	Kind     Kind
	OwnerID  uuid.UUID
	FileID   uuid.UUID
	ChainID  string
	EntityID *uuid.UUID
	Reason   string
}

// Notifier delivers terminal pipeline outcomes to the file's owner.
// Delivery is best-effort; the pipeline never fails on notification errors.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier emits notifications as structured log events. The outer
// product consumes these from the log stream; an in-process mail or push
// dispatcher would implement Notifier the same way.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, note Notification) {
	attrs := []any{
		"kind", note.Kind,
		"owner_id", note.OwnerID,
		"file_id", note.FileID,
		"chain_id", note.ChainID,
	}
	if note.EntityID != nil {
		attrs = append(attrs, "entity_id", *note.EntityID)
	}
	if note.Reason != "" {
		attrs = append(attrs, "reason", note.Reason)
	}
	if note.Kind == KindFailed {
		n.logger.Warn("owner notification", attrs...)
		return
	}
	n.logger.Info("owner notification", attrs...)
}
