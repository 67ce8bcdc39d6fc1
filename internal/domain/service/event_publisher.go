package service

import (
	"context"
)

// DispatchEvent represents an event to be processed by the dispatch worker
type DispatchEvent struct {
	RequestID       string   `json:"request_id,omitempty"` // For distributed tracing
	EmergencyID     string   `json:"emergency_id"`
	Priority        string   `json:"priority"`
	Status          string   `json:"status"`
	NotificationIDs []string `json:"notification_ids"` // Durable rows created for this event
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async processing
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
