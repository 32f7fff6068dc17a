package usecase

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/tapi-calorie/tapi/internal/domain"
)

var tracer = otel.Tracer("usecase")

type notifier struct {
	publisher ChangePublisher
}

// changed publishes a change event. The mutation is already committed, so a
// failure is logged and not returned.
func (n notifier) changed(ctx context.Context, resource, action, key string) {
	if n.publisher == nil {
		return
	}

	event := domain.ChangeEvent{
		Resource:  resource,
		Action:    action,
		Key:       key,
		Timestamp: time.Now().UTC(),
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(
			ctx, "failed to publish change event",
			slog.String("resource", resource),
			slog.String("action", action),
			slog.String("error", err.Error()),
			slog.String("module", "usecase"),
		)
	}
}
