package logs

import (
	"context"
	"log/slog"
)

// Handler copies the span id from the context into every record.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := ctx.Value(SpanKey).(Span); ok {
		record.Add("span", span)
	}
	return h.Handler.Handle(ctx, record)
}
