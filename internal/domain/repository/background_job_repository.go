package repository

import (
	"context"
	"time"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BackgroundJobUpdate is a partial update; nil fields are left untouched.
type BackgroundJobUpdate struct {
	Status    *entity.JobStatus
	Metadata  map[string]any
	Message   *string
	StartedAt *time.Time
}

// BackgroundJobRepository persists background jobs. Every mutation returns the post-image.
type BackgroundJobRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.BackgroundJob, error)
	FindAll(ctx context.Context) ([]*entity.BackgroundJob, error)
	Create(ctx context.Context, job *entity.BackgroundJob) error

	// Update applies the update only while the job is still in expectedStatus,
	// so concurrent transitions cannot both succeed. Returns ErrNotFound otherwise.
	Update(ctx context.Context, id primitive.ObjectID, expectedStatus entity.JobStatus, update BackgroundJobUpdate) (*entity.BackgroundJob, error)

	// AppendEvent pushes the event to the end of the job's event log.
	AppendEvent(ctx context.Context, id primitive.ObjectID, event entity.JobEvent) (*entity.BackgroundJob, error)

	Delete(ctx context.Context, id primitive.ObjectID) (*entity.BackgroundJob, error)
}
