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

// profileRepository implements repository.ProfileRepository.
type profileRepository struct {
	baseRepository
}

// NewProfileRepository returns a profile repository outside of any transaction.
func NewProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return newProfileRepository(db, nil)
}

func newProfileRepository(db *mongo.Database, session mongo.Session) *profileRepository {
	return &profileRepository{baseRepository: newBaseRepository(db, CollectionProfiles, session)}
}

func (repo *profileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error) {
	return repo.findOne(ctx, bson.M{"_id": id}, "failed to find profile by id")
}

func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find profile by email")
}

func (repo *profileRepository) findOne(ctx context.Context, filter bson.M, op string) (*entity.Profile, error) {
	var doc model.ProfileModel
	if err := repo.coll.FindOne(repo.ctx(ctx), filter).Decode(&doc); err != nil {
		return nil, translate(err, op)
	}

	return model.ToProfileDomain(&doc), nil
}

func (repo *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	docs, err := findAll[model.ProfileModel](repo.ctx(ctx), repo.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, translate(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, len(docs))
	for i, doc := range docs {
		profiles[i] = model.ToProfileDomain(doc)
	}

	return profiles, nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	now := repo.now()
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := repo.coll.InsertOne(repo.ctx(ctx), model.FromProfileDomain(profile)); err != nil {
		return translate(err, "failed to create profile")
	}

	return nil
}

func (repo *profileRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.ProfileUpdate) (*entity.Profile, error) {
	set := bson.M{"updated_at": repo.now()}
	if update.Nickname != nil {
		set["nickname"] = *update.Nickname
	}
	if update.DisplayName != nil {
		set["display_name"] = *update.DisplayName
	}
	if update.PhotoURL != nil {
		set["photo_url"] = *update.PhotoURL
	}
	if update.Roles != nil {
		set["roles"] = update.Roles.ToStrings()
	}

	var doc model.ProfileModel
	err := repo.coll.FindOneAndUpdate(repo.ctx(ctx), bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, translate(err, "failed to update profile")
	}

	return model.ToProfileDomain(&doc), nil
}

func (repo *profileRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error) {
	var doc model.ProfileModel
	if err := repo.coll.FindOneAndDelete(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to delete profile")
	}

	return model.ToProfileDomain(&doc), nil
}

// serviceProfileRepository implements repository.ServiceProfileRepository.
type serviceProfileRepository struct {
	baseRepository
}

// NewServiceProfileRepository returns the service account repository.
func NewServiceProfileRepository(db *mongo.Database) repository.ServiceProfileRepository {
	return &serviceProfileRepository{baseRepository: newBaseRepository(db, CollectionServiceProfiles, nil)}
}

func (repo *serviceProfileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.ServiceProfile, error) {
	return repo.findOne(ctx, bson.M{"_id": id}, "failed to find service profile by id")
}

func (repo *serviceProfileRepository) FindByClientID(ctx context.Context, clientID string) (*entity.ServiceProfile, error) {
	return repo.findOne(ctx, bson.M{"client_id": clientID}, "failed to find service profile by client id")
}

func (repo *serviceProfileRepository) findOne(ctx context.Context, filter bson.M, op string) (*entity.ServiceProfile, error) {
	var doc model.ServiceProfileModel
	if err := repo.coll.FindOne(repo.ctx(ctx), filter).Decode(&doc); err != nil {
		return nil, translate(err, op)
	}

	return model.ToServiceProfileDomain(&doc), nil
}

func (repo *serviceProfileRepository) Create(ctx context.Context, profile *entity.ServiceProfile) error {
	now := repo.now()
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := repo.coll.InsertOne(repo.ctx(ctx), model.FromServiceProfileDomain(profile)); err != nil {
		return translate(err, "failed to create service profile")
	}

	return nil
}

func (repo *serviceProfileRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.ServiceProfile, error) {
	var doc model.ServiceProfileModel
	if err := repo.coll.FindOneAndDelete(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to delete service profile")
	}

	return model.ToServiceProfileDomain(&doc), nil
}
