package repository

import (
	"context"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TagRepository persists product tags.
type TagRepository interface {
	FindAll(ctx context.Context) ([]*entity.Tag, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error
	Update(ctx context.Context, id primitive.ObjectID, name string) (*entity.Tag, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Tag, error)
}

// PlatformRepository reads store platforms.
type PlatformRepository interface {
	// FindAll returns every platform, or only those matching enabled when it is set.
	FindAll(ctx context.Context, enabled *bool) ([]*entity.Platform, error)
}

// ProductRepository reads products.
type ProductRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
}

// Pinger checks the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
