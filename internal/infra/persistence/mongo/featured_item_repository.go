package mongo

import (
	"context"

	"indieneer/internal/domain/entity"
	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"
	"indieneer/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// featuredListLockID identifies the lock document of the featured list.
const featuredListLockID = CollectionPopularOnSteam

// featuredItemRepository implements repository.FeaturedItemRepository.
type featuredItemRepository struct {
	baseRepository
	locks *mongo.Collection
}

// NewFeaturedItemRepository returns a featured list repository outside of any transaction.
func NewFeaturedItemRepository(db *mongo.Database) repository.FeaturedItemRepository {
	return newFeaturedItemRepository(db, nil)
}

func newFeaturedItemRepository(db *mongo.Database, session mongo.Session) *featuredItemRepository {
	return &featuredItemRepository{
		baseRepository: newBaseRepository(db, CollectionPopularOnSteam, session),
		locks:          db.Collection(collectionLocks),
	}
}

func (repo *featuredItemRepository) FindAll(ctx context.Context) ([]*entity.FeaturedItem, error) {
	docs, err := findAll[model.FeaturedItemModel](repo.ctx(ctx), repo.coll, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, translate(err, "failed to list featured items")
	}

	items := make([]*entity.FeaturedItem, len(docs))
	for i, doc := range docs {
		items[i] = model.ToFeaturedItemDomain(doc)
	}

	return items, nil
}

func (repo *featuredItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.FeaturedItem, error) {
	var doc model.FeaturedItemModel
	if err := repo.coll.FindOne(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to find featured item")
	}

	return model.ToFeaturedItemDomain(&doc), nil
}

func (repo *featuredItemRepository) ExistsAtIndex(ctx context.Context, orderIndex int) (bool, error) {
	count, err := repo.coll.CountDocuments(repo.ctx(ctx), bson.M{"order_index": orderIndex},
		options.Count().SetLimit(1))
	if err != nil {
		return false, translate(err, "failed to check featured index")
	}

	return count > 0, nil
}

func (repo *featuredItemRepository) LockList(ctx context.Context) error {
	_, err := repo.locks.UpdateOne(repo.ctx(ctx),
		bson.M{"_id": featuredListLockID},
		bson.M{"$inc": bson.M{"version": 1}, "$set": bson.M{"updated_at": repo.now()}},
		options.Update().SetUpsert(true))
	if isDuplicateKey(err) {
		// Two first-time upserts of the lock document raced.
		return errors.Wrap(repository.ErrWriteConflict, "failed to lock featured list")
	}
	if err != nil {
		return translate(err, "failed to lock featured list")
	}

	return nil
}

func (repo *featuredItemRepository) Create(ctx context.Context, item *entity.FeaturedItem) error {
	now := repo.now()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := repo.coll.InsertOne(repo.ctx(ctx), model.FromFeaturedItemDomain(item)); err != nil {
		return translate(err, "failed to create featured item")
	}

	return nil
}

func (repo *featuredItemRepository) ShiftRange(ctx context.Context, from, to, delta int) error {
	bounds := bson.M{"$gte": from}
	if to >= 0 {
		bounds["$lte"] = to
	}

	_, err := repo.coll.UpdateMany(repo.ctx(ctx),
		bson.M{"order_index": bounds},
		bson.M{"$inc": bson.M{"order_index": delta}, "$set": bson.M{"updated_at": repo.now()}})
	if err != nil {
		return translate(err, "failed to shift featured items")
	}

	return nil
}

func (repo *featuredItemRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.FeaturedItemUpdate) (*entity.FeaturedItem, error) {
	set := bson.M{"updated_at": repo.now()}
	if update.ProductSlug != nil {
		set["product_slug"] = *update.ProductSlug
	}
	if update.OrderIndex != nil {
		set["order_index"] = *update.OrderIndex
	}

	var doc model.FeaturedItemModel
	err := repo.coll.FindOneAndUpdate(repo.ctx(ctx), bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		return nil, translate(err, "failed to update featured item")
	}

	return model.ToFeaturedItemDomain(&doc), nil
}

func (repo *featuredItemRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.FeaturedItem, error) {
	var doc model.FeaturedItemModel
	if err := repo.coll.FindOneAndDelete(repo.ctx(ctx), bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translate(err, "failed to delete featured item")
	}

	return model.ToFeaturedItemDomain(&doc), nil
}
