package mongo

import (
	"context"
	"testing"
	"time"

	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// sentUpdate is the subset of an update command the featured list repository sends.
type sentUpdate struct {
	Update           string `bson:"update"`
	StartTransaction bool   `bson:"startTransaction"`
	Updates          []struct {
		Q struct {
			ID         string `bson:"_id"`
			OrderIndex struct {
				Gte *int `bson:"$gte"`
				Lte *int `bson:"$lte"`
			} `bson:"order_index"`
		} `bson:"q"`
		U struct {
			Inc map[string]int `bson:"$inc"`
			Set struct {
				UpdatedAt time.Time `bson:"updated_at"`
			} `bson:"$set"`
		} `bson:"u"`
		Upsert bool `bson:"upsert"`
		Multi  bool `bson:"multi"`
	} `bson:"updates"`
}

func lastUpdate(mt *mtest.T) sentUpdate {
	mt.Helper()

	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "update", evt.CommandName)

	var cmd sentUpdate
	require.NoError(mt, bson.Unmarshal(evt.Command, &cmd))
	require.Len(mt, cmd.Updates, 1)

	return cmd
}

func updated(n int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
}

func TestFeaturedItemRepository_LockList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts the lock document", func(mt *mtest.T) {
		repo := newFeaturedItemRepository(mt.DB, nil)
		mt.AddMockResponses(updated(1))

		require.NoError(mt, repo.LockList(context.Background()))

		cmd := lastUpdate(mt)
		assert.Equal(mt, collectionLocks, cmd.Update)
		assert.Equal(mt, featuredListLockID, cmd.Updates[0].Q.ID)
		assert.True(mt, cmd.Updates[0].Upsert)
		assert.Equal(mt, 1, cmd.Updates[0].U.Inc["version"])
		assert.False(mt, cmd.Updates[0].U.Set.UpdatedAt.IsZero())
	})

	mt.Run("racing first upsert is a write conflict", func(mt *mtest.T) {
		repo := newFeaturedItemRepository(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.locks",
		}))

		err := repo.LockList(context.Background())

		assert.True(mt, errors.Is(err, repository.ErrWriteConflict))
		assert.False(mt, errors.Is(err, repository.ErrDuplicateKey))
	})

	mt.Run("other failures are annotated", func(mt *mtest.T) {
		repo := newFeaturedItemRepository(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		err := repo.LockList(context.Background())

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "failed to lock featured list")
		assert.False(mt, errors.Is(err, repository.ErrWriteConflict))
	})
}

func TestFeaturedItemRepository_ShiftRange(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("open ended range", func(mt *mtest.T) {
		repo := newFeaturedItemRepository(mt.DB, nil)
		mt.AddMockResponses(updated(3))

		require.NoError(mt, repo.ShiftRange(context.Background(), 2, -1, 1))

		cmd := lastUpdate(mt)
		assert.Equal(mt, CollectionPopularOnSteam, cmd.Update)
		update := cmd.Updates[0]
		assert.True(mt, update.Multi)
		require.NotNil(mt, update.Q.OrderIndex.Gte)
		assert.Equal(mt, 2, *update.Q.OrderIndex.Gte)
		assert.Nil(mt, update.Q.OrderIndex.Lte)
		assert.Equal(mt, 1, update.U.Inc["order_index"])
	})

	mt.Run("bounded range", func(mt *mtest.T) {
		repo := newFeaturedItemRepository(mt.DB, nil)
		mt.AddMockResponses(updated(2))

		require.NoError(mt, repo.ShiftRange(context.Background(), 1, 3, -1))

		update := lastUpdate(mt).Updates[0]
		require.NotNil(mt, update.Q.OrderIndex.Gte)
		require.NotNil(mt, update.Q.OrderIndex.Lte)
		assert.Equal(mt, 1, *update.Q.OrderIndex.Gte)
		assert.Equal(mt, 3, *update.Q.OrderIndex.Lte)
		assert.Equal(mt, -1, update.U.Inc["order_index"])
	})

	mt.Run("write conflict", func(mt *mtest.T) {
		repo := newFeaturedItemRepository(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    writeConflictCode,
			Name:    "WriteConflict",
			Message: "write conflict",
			Labels:  []string{"TransientTransactionError"},
		}))

		err := repo.ShiftRange(context.Background(), 0, -1, 1)

		assert.True(mt, errors.Is(err, repository.ErrWriteConflict))
	})
}
