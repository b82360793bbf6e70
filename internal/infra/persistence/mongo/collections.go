package mongo

import (
	"context"

	"indieneer/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionProfiles                  = "profiles"
	CollectionServiceProfiles           = "service_profiles"
	CollectionProducts                  = "products"
	CollectionTags                      = "tags"
	CollectionPlatforms                 = "platforms"
	CollectionOperatingSystems          = "operating_systems"
	CollectionPlatformsOS               = "platforms_os"
	CollectionPlatformProducts          = "platform_products"
	CollectionAffiliatePlatformProducts = "affiliate_platform_products"
	CollectionAffiliateReviews          = "affiliate_reviews"
	CollectionProductComments           = "product_comments"
	CollectionProductReplies            = "product_replies"
	CollectionDailyGuessGames           = "daily_guess_games"
	CollectionBackgroundJobs            = "background_jobs"
	CollectionPopularOnSteam            = "popular_on_steam"

	// collectionLocks holds one document per list whose writers must serialize.
	collectionLocks = "locks"
)

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionProfiles: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionServiceProfiles: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionProducts: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionPopularOnSteam: {
			{Keys: bson.D{{Key: "order_index", Value: 1}}},
		},
		CollectionBackgroundJobs: {
			{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}
