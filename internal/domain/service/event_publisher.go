package service

import (
	"context"
)

// JobDispatchEvent announces a new background job to external workers
type JobDispatchEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	JobID     string         `json:"job_id"`
	JobType   string         `json:"job_type"`
	CreatedBy string         `json:"created_by"`
	Metadata  map[string]any `json:"metadata"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishJobDispatchEvent publishes a job event for asynchronous execution
	PublishJobDispatchEvent(ctx context.Context, event *JobDispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
