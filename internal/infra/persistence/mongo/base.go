package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseRepository is embedded by every repository. When session is set the
// repository is bound to that session's transaction.
type baseRepository struct {
	coll    *mongo.Collection
	session mongo.Session
	now     func() time.Time
}

func newBaseRepository(db *mongo.Database, collection string, session mongo.Session) baseRepository {
	return baseRepository{
		coll:    db.Collection(collection),
		session: session,
		now:     defaultClock.Now,
	}
}

func (r baseRepository) ctx(ctx context.Context) context.Context {
	if r.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, r.session)
}

// findAll decodes every document matched by filter into a slice of T.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}
