package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"go.uber.org/fx"
)

type backgroundJobService struct {
	jobRepo   repository.BackgroundJobRepository
	registry  *entity.JobRegistry
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// BackgroundJobServiceParams holds dependencies for BackgroundJobService, injected by Fx.
type BackgroundJobServiceParams struct {
	fx.In

	JobRepo   repository.BackgroundJobRepository
	Registry  *entity.JobRegistry
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewBackgroundJobService is the constructor for backgroundJobService.
func NewBackgroundJobService(params BackgroundJobServiceParams) usecase.BackgroundJobUsecase {
	return &backgroundJobService{
		jobRepo:   params.JobRepo,
		registry:  params.Registry,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *backgroundJobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *backgroundJobService) Get(ctx context.Context, id string) (*entity.BackgroundJob, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	job, err := srv.jobRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("background job "+id), "failed to get background job")
	}

	return job, nil
}

func (srv *backgroundJobService) GetAll(ctx context.Context) ([]*entity.BackgroundJob, error) {
	jobs, err := srv.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list background jobs")
	}

	return jobs, nil
}

func (srv *backgroundJobService) Create(ctx context.Context, actor string, input usecase.CreateBackgroundJobInput) (*entity.BackgroundJob, error) {
	if !srv.registry.Supports(input.Type) {
		return nil, domainerrors.ErrUnsupportedJobType.WithDetails(string(input.Type))
	}

	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	if err := srv.validateMetadata(input.Type, metadata); err != nil {
		return nil, err
	}

	job := &entity.BackgroundJob{
		Type:      input.Type,
		Metadata:  metadata,
		Status:    entity.JobStatusPending,
		CreatedBy: actor,
		Events:    []entity.JobEvent{},
	}
	if err := srv.jobRepo.Create(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to create background job")
	}

	event := &service.JobDispatchEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		JobID:     job.ID.Hex(),
		JobType:   string(job.Type),
		CreatedBy: job.CreatedBy,
		Metadata:  job.Metadata,
	}
	if err := srv.publisher.PublishJobDispatchEvent(ctx, event); err != nil {
		// The job stays pending; dispatch is not retried.
		srv.log(ctx).Error("Failed to publish job dispatch event", slog.String("job_id", event.JobID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Background job created", slog.String("job_id", job.ID.Hex()), slog.String("type", string(job.Type)))

	return job, nil
}

func (srv *backgroundJobService) Patch(ctx context.Context, actor, id string, input usecase.PatchBackgroundJobInput) (*entity.BackgroundJob, error) {
	job, err := srv.ownedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var update repository.BackgroundJobUpdate

	if input.Status != nil {
		next := *input.Status
		if !next.IsValid() || !job.Status.CanTransitionTo(next) {
			return nil, domainerrors.ErrUnsupportedStatus.WithDetails(string(job.Status) + " -> " + string(next))
		}
		update.Status = &next

		if next == entity.JobStatusRunning {
			startedAt := srv.now().UTC()
			update.StartedAt = &startedAt
		}
	}

	if input.Metadata != nil {
		merged := entity.MergeMetadata(job.Metadata, input.Metadata)
		if err := srv.validateMetadata(job.Type, merged); err != nil {
			return nil, err
		}
		update.Metadata = merged
	}

	update.Message = input.Message

	if update.Status == nil && update.Metadata == nil && update.Message == nil {
		return job, nil
	}

	updated, err := srv.jobRepo.Update(ctx, job.ID, job.Status, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrConflict.WithDetails("background job was modified concurrently")
		}

		return nil, errors.Wrap(err, "failed to patch background job")
	}

	return updated, nil
}

func (srv *backgroundJobService) AddEvent(ctx context.Context, actor, id string, input usecase.AddJobEventInput) (*entity.BackgroundJob, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrUnsupportedEventType.WithDetails(string(input.Type))
	}

	job, err := srv.ownedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated, err := srv.jobRepo.AppendEvent(ctx, job.ID, entity.JobEvent{
		Type:    input.Type,
		Message: input.Message,
	})
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("background job "+id), "failed to append event")
	}

	return updated, nil
}

func (srv *backgroundJobService) Delete(ctx context.Context, actor, id string) (*entity.BackgroundJob, error) {
	job, err := srv.ownedJob(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	deleted, err := srv.jobRepo.Delete(ctx, job.ID)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("background job "+id), "failed to delete background job")
	}

	return deleted, nil
}

// ownedJob loads the job and checks actor created it.
func (srv *backgroundJobService) ownedJob(ctx context.Context, actor, id string) (*entity.BackgroundJob, error) {
	job, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if job.CreatedBy != actor {
		srv.log(ctx).Warn("Background job mutation by non-creator",
			slog.String("job_id", id), slog.String("actor", actor), slog.String("created_by", job.CreatedBy))

		return nil, domainerrors.ErrForbidden
	}

	return job, nil
}

func (srv *backgroundJobService) validateMetadata(jobType entity.JobType, metadata map[string]any) error {
	err := srv.registry.Validate(jobType, metadata)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrMetadataDecode):
		return domainerrors.ErrUnprocessableEntity.WithDetails(err.Error())
	case errors.Is(err, entity.ErrMetadataInvalid):
		return domainerrors.ErrInvalidMetadata.WithDetails(err.Error())
	default:
		return domainerrors.ErrUnsupportedJobType.WithDetails(string(jobType))
	}
}
