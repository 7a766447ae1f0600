// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "zenvira/internal/delivery/context"
	"zenvira/internal/domain/service"
)

const eventPublishTimeout = 5 * time.Second

// publishEvent sends a domain event after the write that produced it has committed.
// Failures are logged and never reach the caller.
func publishEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType, aggregateID string,
	payload map[string]any,
) {
	if publisher == nil {
		return
	}

	event := &service.Event{
		Type:        eventType,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
	}

	// The request may finish before the broker acks; keep the values, drop the cancellation.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := publisher.Publish(pubCtx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", aggregateID),
			slog.Any("error", err),
		)
	}
}
