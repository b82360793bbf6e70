package mongo

import (
	"context"

	"indieneer/internal/domain/entity"
	"indieneer/internal/domain/repository"
	"indieneer/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// backgroundJobRepository implements repository.BackgroundJobRepository.
type backgroundJobRepository struct {
	baseRepository
}

// NewBackgroundJobRepository returns the background job repository.
func NewBackgroundJobRepository(db *mongo.Database) repository.BackgroundJobRepository {
	return &backgroundJobRepository{baseRepository: newBaseRepository(db, CollectionBackgroundJobs, nil)}
}

func (repo *backgroundJobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.BackgroundJob, error) {
	var doc model.BackgroundJobModel
	if err := repo.coll.FindOne(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to find background job")
	}

	return model.ToBackgroundJobDomain(&doc), nil
}

func (repo *backgroundJobRepository) FindAll(ctx context.Context) ([]*entity.BackgroundJob, error) {
	docs, err := findAll[model.BackgroundJobModel](repo.ctx(ctx), repo.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, translate(err, "failed to list background jobs")
	}

	jobs := make([]*entity.BackgroundJob, len(docs))
	for i, doc := range docs {
		jobs[i] = model.ToBackgroundJobDomain(doc)
	}

	return jobs, nil
}

func (repo *backgroundJobRepository) Create(ctx context.Context, job *entity.BackgroundJob) error {
	now := repo.now()
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	if job.Events == nil {
		job.Events = []entity.JobEvent{}
	}
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := repo.coll.InsertOne(repo.ctx(ctx), model.FromBackgroundJobDomain(job)); err != nil {
		return translate(err, "failed to create background job")
	}

	return nil
}

func (repo *backgroundJobRepository) Update(
	ctx context.Context,
	id primitive.ObjectID,
	expectedStatus entity.JobStatus,
	update repository.BackgroundJobUpdate,
) (*entity.BackgroundJob, error) {
	set := bson.M{"updated_at": repo.now()}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.Metadata != nil {
		set["metadata"] = bson.M(update.Metadata)
	}
	if update.Message != nil {
		set["message"] = *update.Message
	}
	if update.StartedAt != nil {
		set["started_at"] = *update.StartedAt
	}

	filter := bson.M{"_id": id, "status": string(expectedStatus)}

	return repo.findOneAndUpdate(ctx, filter, bson.M{"$set": set}, "failed to update background job")
}

func (repo *backgroundJobRepository) AppendEvent(ctx context.Context, id primitive.ObjectID, event entity.JobEvent) (*entity.BackgroundJob, error) {
	now := repo.now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}

	update := bson.M{
		"$push": bson.M{"events": model.FromJobEventDomain(event)},
		"$set":  bson.M{"updated_at": now},
	}

	return repo.findOneAndUpdate(ctx, bson.M{"_id": id}, update, "failed to append background job event")
}

func (repo *backgroundJobRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M, op string) (*entity.BackgroundJob, error) {
	var doc model.BackgroundJobModel
	err := repo.coll.FindOneAndUpdate(repo.ctx(ctx), filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, translate(err, op)
	}

	return model.ToBackgroundJobDomain(&doc), nil
}

func (repo *backgroundJobRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.BackgroundJob, error) {
	var doc model.BackgroundJobModel
	if err := repo.coll.FindOneAndDelete(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to delete background job")
	}

	return model.ToBackgroundJobDomain(&doc), nil
}
