package service

import (
	"context"
)

// AlertEvent is published for every classified alert so other systems can react to it.
type AlertEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	EventID   string            `json:"event_id"`
	Severity  string            `json:"severity"`
	Message   string            `json:"message"`
	Topic     string            `json:"topic"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp string            `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
