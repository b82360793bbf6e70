package repository

import (
	"context"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Nickname    *string
	DisplayName *string
	PhotoURL    *string
	Roles       *entity.Roles
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Nickname == nil && u.DisplayName == nil && u.PhotoURL == nil && u.Roles == nil
}

// ProfileRepository persists human profiles.
type ProfileRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// Create inserts the profile with its preset ID. Returns ErrDuplicateKey when it already exists.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update applies the partial update and returns the post-image.
	Update(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (*entity.Profile, error)

	// Delete removes the profile and returns the deleted document.
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Profile, error)
}

// ServiceProfileRepository persists service accounts.
type ServiceProfileRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.ServiceProfile, error)
	FindByClientID(ctx context.Context, clientID string) (*entity.ServiceProfile, error)
	Create(ctx context.Context, profile *entity.ServiceProfile) error
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.ServiceProfile, error)
}
