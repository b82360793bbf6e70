package mongo

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"indieneer/config"
	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockTransactionManager(mt *mtest.T) repository.TransactionManager {
	cfg := &config.Config{Mongo: &config.MongoConfig{Database: mt.DB.Name()}}

	return NewTransactionManager(mt.Client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func startedCommands(mt *mtest.T) []string {
	names := make([]string, 0)
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}

	return names
}

func TestTransactionManager_Execute(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("commits", func(mt *mtest.T) {
		tm := newMockTransactionManager(mt)
		mt.AddMockResponses(updated(1), mtest.CreateSuccessResponse())

		err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			return factory.FeaturedItemRepo().LockList(context.Background())
		})

		require.NoError(mt, err)
		started := mt.GetAllStartedEvents()
		require.Len(mt, started, 2)

		var first sentUpdate
		require.NoError(mt, bson.Unmarshal(started[0].Command, &first))
		assert.True(mt, first.StartTransaction)
		assert.Equal(mt, "commitTransaction", started[1].CommandName)
	})

	mt.Run("aborts when the callback fails", func(mt *mtest.T) {
		tm := newMockTransactionManager(mt)
		mt.AddMockResponses(updated(1), mtest.CreateSuccessResponse())
		failure := errors.New("order index out of range")

		err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			if err := factory.FeaturedItemRepo().LockList(context.Background()); err != nil {
				return err
			}

			return failure
		})

		assert.Equal(mt, failure, err)
		assert.Equal(mt, []string{"update", "abortTransaction"}, startedCommands(mt))
	})

	mt.Run("reports a raw write conflict as a sentinel", func(mt *mtest.T) {
		tm := newMockTransactionManager(mt)

		err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error {
			return mongo.CommandError{Code: writeConflictCode, Message: "WriteConflict"}
		})

		assert.True(mt, errors.Is(err, repository.ErrWriteConflict))
		assert.Empty(mt, startedCommands(mt))
	})

	mt.Run("failed commit is a write conflict", func(mt *mtest.T) {
		tm := newMockTransactionManager(mt)
		conflict := mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    writeConflictCode,
			Name:    "WriteConflict",
			Message: "write conflict",
			Labels:  []string{"TransientTransactionError"},
		})
		mt.AddMockResponses(updated(1), conflict, conflict)

		err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			return factory.FeaturedItemRepo().LockList(context.Background())
		})

		assert.True(mt, errors.Is(err, repository.ErrWriteConflict))
	})
}
