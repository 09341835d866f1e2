package service

import (
	"context"
)

// ScanEvent asks the worker to run an alert scan for one subscription.
type ScanEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	SubscriptionID string   `json:"subscription_id"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Categories     []string `json:"categories,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScanEvent publishes a scan event for async processing
	PublishScanEvent(ctx context.Context, event *ScanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
