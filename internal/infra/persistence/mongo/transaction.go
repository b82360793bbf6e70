package mongo

import (
	"context"
	"log/slog"

	"indieneer/config"
	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// mongoTransactionManager implements the domain's TransactionManager interface
// with explicit session transactions. It does not retry: a conflicting
// transaction is aborted and reported as repository.ErrWriteConflict.
type mongoTransactionManager struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// mongoRepositoryFactory hands out repositories bound to a single session.
type mongoRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
}

// ProfileRepo creates a profile repository bound to the transaction.
func (f *mongoRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return newProfileRepository(f.db, f.session)
}

// FeaturedItemRepo creates a featured item repository bound to the transaction.
func (f *mongoRepositoryFactory) FeaturedItemRepo() repository.FeaturedItemRepository {
	return newFeaturedItemRepository(f.db, f.session)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(client *mongo.Client, cfg *config.Config, logger *slog.Logger) repository.TransactionManager {
	return &mongoTransactionManager{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
		logger: logger,
	}
}

// Execute runs fn inside a multi-document transaction.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	session, err := tm.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(context.WithoutCancel(ctx))

	txOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	if err := session.StartTransaction(txOpts); err != nil {
		return errors.Wrap(err, "failed to start transaction")
	}

	sessCtx := mongo.NewSessionContext(ctx, session)

	defer func() {
		if r := recover(); r != nil {
			_ = session.AbortTransaction(context.WithoutCancel(sessCtx))
			panic(r)
		}
	}()

	if err := fn(&mongoRepositoryFactory{db: tm.db, session: session}); err != nil {
		if abortErr := session.AbortTransaction(context.WithoutCancel(sessCtx)); abortErr != nil {
			tm.logger.Warn("Transaction abort failed", slog.Any("error", abortErr), slog.Any("cause", err))
		}
		if isWriteConflict(err) {
			return errors.Wrap(repository.ErrWriteConflict, err.Error())
		}

		return err
	}

	if err := session.CommitTransaction(sessCtx); err != nil {
		_ = session.AbortTransaction(context.WithoutCancel(sessCtx))

		return translate(err, "failed to commit transaction")
	}

	return nil
}
