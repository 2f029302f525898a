package events

import (
	"context"
	"log/slog"

	"github.com/vaultscope/yctl/internal/domain"
	"github.com/vaultscope/yctl/internal/usecase"
)

// LogSink delivers boundary events to the structured logger. It stands in
// for an external notification collaborator.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a logging event sink
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Emit logs one event
func (s *LogSink) Emit(ctx context.Context, event domain.Event) {
	s.log.InfoContext(ctx, "event emitted",
		"event", event.EventName(),
		"detail", event.String(),
	)
}

// Ensure the adapter implements the interface
var _ usecase.EventSink = (*LogSink)(nil)
