package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobStatus is the lifecycle state of a background job.
type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusRunning JobStatus = "running"
	JobStatusSuccess JobStatus = "success"
	JobStatusError   JobStatus = "error"
)

// jobTransitions lists the allowed next states. Terminal states have none.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPending: {JobStatusRunning},
	JobStatusRunning: {JobStatusSuccess, JobStatusError},
}

// IsValid checks if the status is a known value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusRunning, JobStatusSuccess, JobStatusError:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a job may move from s to next.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s JobStatus) IsTerminal() bool {
	return len(jobTransitions[s]) == 0
}

// EventType classifies an entry of the job event log.
type EventType string

const (
	EventTypeInfo  EventType = "info"
	EventTypeError EventType = "error"
)

// IsValid checks if the event type is a known value.
func (t EventType) IsValid() bool {
	return t == EventTypeInfo || t == EventTypeError
}

// JobEvent is an append-only log entry of a background job.
type JobEvent struct {
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// BackgroundJob tracks work executed by an external worker.
// Metadata is discriminated by Type and validated through the job type registry.
type BackgroundJob struct {
	ID        primitive.ObjectID `json:"_id"`
	Type      JobType            `json:"type"`
	Metadata  map[string]any     `json:"metadata"`
	Status    JobStatus          `json:"status"`
	CreatedBy string             `json:"created_by"`
	Events    []JobEvent         `json:"events"`
	Message   *string            `json:"message,omitempty"`
	StartedAt *time.Time         `json:"started_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
