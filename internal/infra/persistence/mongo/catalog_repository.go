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

type tagRepository struct {
	baseRepository
}

// NewTagRepository returns the tag repository.
func NewTagRepository(db *mongo.Database) repository.TagRepository {
	return &tagRepository{baseRepository: newBaseRepository(db, CollectionTags, nil)}
}

func (repo *tagRepository) FindAll(ctx context.Context) ([]*entity.Tag, error) {
	docs, err := findAll[model.TagModel](repo.ctx(ctx), repo.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, translate(err, "failed to list tags")
	}

	tags := make([]*entity.Tag, len(docs))
	for i, doc := range docs {
		tags[i] = model.ToTagDomain(doc)
	}

	return tags, nil
}

func (repo *tagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tag, error) {
	var doc model.TagModel
	if err := repo.coll.FindOne(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to find tag")
	}

	return model.ToTagDomain(&doc), nil
}

func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	now := repo.now()
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}
	tag.CreatedAt = now
	tag.UpdatedAt = now

	if _, err := repo.coll.InsertOne(repo.ctx(ctx), model.FromTagDomain(tag)); err != nil {
		return translate(err, "failed to create tag")
	}

	return nil
}

func (repo *tagRepository) Update(ctx context.Context, id primitive.ObjectID, name string) (*entity.Tag, error) {
	var doc model.TagModel
	err := repo.coll.FindOneAndUpdate(repo.ctx(ctx), bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "updated_at": repo.now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, translate(err, "failed to update tag")
	}

	return model.ToTagDomain(&doc), nil
}

func (repo *tagRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Tag, error) {
	var doc model.TagModel
	if err := repo.coll.FindOneAndDelete(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to delete tag")
	}

	return model.ToTagDomain(&doc), nil
}

type platformRepository struct {
	baseRepository
}

// NewPlatformRepository returns the platform repository.
func NewPlatformRepository(db *mongo.Database) repository.PlatformRepository {
	return &platformRepository{baseRepository: newBaseRepository(db, CollectionPlatforms, nil)}
}

func (repo *platformRepository) FindAll(ctx context.Context, enabled *bool) ([]*entity.Platform, error) {
	filter := bson.M{}
	if enabled != nil {
		filter["enabled"] = *enabled
	}

	docs, err := findAll[model.PlatformModel](repo.ctx(ctx), repo.coll, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, translate(err, "failed to list platforms")
	}

	platforms := make([]*entity.Platform, len(docs))
	for i, doc := range docs {
		platforms[i] = model.ToPlatformDomain(doc)
	}

	return platforms, nil
}

type productRepository struct {
	baseRepository
}

// NewProductRepository returns the product repository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{baseRepository: newBaseRepository(db, CollectionProducts, nil)}
}

func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var doc model.ProductModel
	if err := repo.coll.FindOne(repo.ctx(ctx), bson.M{"slug": slug}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to find product")
	}

	return model.ToProductDomain(&doc), nil
}
