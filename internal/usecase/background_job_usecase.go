package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
)

// CreateBackgroundJobInput describes a new job.
type CreateBackgroundJobInput struct {
	Type     entity.JobType
	Metadata map[string]any
}

// PatchBackgroundJobInput is a partial update; nil fields are left untouched.
// Metadata is merged field by field over the stored metadata.
type PatchBackgroundJobInput struct {
	Status   *entity.JobStatus
	Metadata map[string]any
	Message  *string
}

// AddJobEventInput is appended to the job's event log.
type AddJobEventInput struct {
	Type    entity.EventType
	Message string
}

// BackgroundJobUsecase tracks jobs executed by external workers.
// actor is the subject of the calling service account; mutations require it to be the job's creator.
type BackgroundJobUsecase interface {
	Get(ctx context.Context, id string) (*entity.BackgroundJob, error)
	GetAll(ctx context.Context) ([]*entity.BackgroundJob, error)
	Create(ctx context.Context, actor string, input CreateBackgroundJobInput) (*entity.BackgroundJob, error)
	Patch(ctx context.Context, actor, id string, input PatchBackgroundJobInput) (*entity.BackgroundJob, error)
	AddEvent(ctx context.Context, actor, id string, input AddJobEventInput) (*entity.BackgroundJob, error)
	Delete(ctx context.Context, actor, id string) (*entity.BackgroundJob, error)
}
