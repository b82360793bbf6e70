// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID turns a path identifier into an ObjectID, rejecting malformed values as a bad request.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidID.WithDetails(id)
	}

	return oid, nil
}

// notFoundAs replaces repository.ErrNotFound with the given domain error and wraps anything else.
func notFoundAs(err error, notFound error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}

	return errors.Wrap(err, message)
}
