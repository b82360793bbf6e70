package model

import (
	"time"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobEventModel is an element of the embedded 'events' array.
type JobEventModel struct {
	Type      string    `bson:"type"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

// BackgroundJobModel mirrors a document of the 'background_jobs' collection.
type BackgroundJobModel struct {
	ID        primitive.ObjectID `bson:"_id"`
	Type      string             `bson:"type"`
	Metadata  bson.M             `bson:"metadata"`
	Status    string             `bson:"status"`
	CreatedBy string             `bson:"created_by"`
	Events    []JobEventModel    `bson:"events"`
	Message   *string            `bson:"message,omitempty"`
	StartedAt *time.Time         `bson:"started_at,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// ToBackgroundJobDomain maps a stored document to the domain entity.
func ToBackgroundJobDomain(m *BackgroundJobModel) *entity.BackgroundJob {
	if m == nil {
		return nil
	}

	events := make([]entity.JobEvent, len(m.Events))
	for i, e := range m.Events {
		events[i] = entity.JobEvent{
			Type:      entity.EventType(e.Type),
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
		}
	}

	metadata := make(map[string]any, len(m.Metadata))
	for k, v := range m.Metadata {
		metadata[k] = v
	}

	return &entity.BackgroundJob{
		ID:        m.ID,
		Type:      entity.JobType(m.Type),
		Metadata:  metadata,
		Status:    entity.JobStatus(m.Status),
		CreatedBy: m.CreatedBy,
		Events:    events,
		Message:   m.Message,
		StartedAt: m.StartedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromBackgroundJobDomain maps the domain entity to its document.
func FromBackgroundJobDomain(j *entity.BackgroundJob) *BackgroundJobModel {
	events := make([]JobEventModel, len(j.Events))
	for i, e := range j.Events {
		events[i] = FromJobEventDomain(e)
	}

	return &BackgroundJobModel{
		ID:        j.ID,
		Type:      string(j.Type),
		Metadata:  bson.M(j.Metadata),
		Status:    string(j.Status),
		CreatedBy: j.CreatedBy,
		Events:    events,
		Message:   j.Message,
		StartedAt: j.StartedAt,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// FromJobEventDomain maps a log entry to its embedded document.
func FromJobEventDomain(e entity.JobEvent) JobEventModel {
	return JobEventModel{
		Type:      string(e.Type),
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
	}
}
