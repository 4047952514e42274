package audit

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/org-directory/internal/core/events"
	"github.com/frahmantamala/org-directory/pkg/logger"
)

// Logger records directory mutations as structured audit entries. It hangs
// off the event bus so the write path never waits on it.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

// Register subscribes the audit logger to every employee lifecycle event.
func (a *Logger) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeEmployeeCreated, a.handle)
	bus.Subscribe(events.EventTypeEmployeeUpdated, a.handle)
	bus.Subscribe(events.EventTypeEmployeeDeleted, a.handle)
}

// handle prefers the request-scoped logger so audit entries keep the trace
// id of the request that caused the mutation.
func (a *Logger) handle(ctx context.Context, event events.Event) error {
	lg, ok := logger.FromContext(ctx)
	if !ok {
		lg = a.logger
	}
	lg.Info("audit",
		"event_type", event.EventType(),
		"event_id", event.EventID(),
		"occurred_at", event.OccurredAt(),
		"payload", event.Payload(),
	)
	return nil
}
