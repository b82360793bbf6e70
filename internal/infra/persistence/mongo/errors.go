package mongo

import (
	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

const writeConflictCode = 112

// Helper functions for MongoDB error checking
func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func isWriteConflict(err error) bool {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorCode(writeConflictCode) || serverErr.HasErrorLabel("TransientTransactionError")
	}

	return false
}

// translate maps driver errors onto repository sentinels and annotates anything else.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case isNotFound(err):
		return repository.ErrNotFound
	case isDuplicateKey(err):
		return errors.Wrap(repository.ErrDuplicateKey, op)
	case isWriteConflict(err):
		return errors.Wrap(repository.ErrWriteConflict, op)
	default:
		return errors.Wrap(err, op)
	}
}
