package service

import (
	"context"
	"time"
)

// Event is a domain fact published after the write that produced it has committed.
type Event struct {
	Type        string         `json:"type"`
	RequestID   string         `json:"requestId,omitempty"` // For distributed tracing
	AggregateID string         `json:"aggregateId"`
	OccurredAt  time.Time      `json:"occurredAt"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
