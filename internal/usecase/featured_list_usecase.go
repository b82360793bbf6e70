package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
)

// CreateFeaturedItemInput inserts ProductSlug at OrderIndex, shifting later items down.
type CreateFeaturedItemInput struct {
	ProductSlug string
	OrderIndex  int
}

// PatchFeaturedItemInput is a partial update; changing OrderIndex moves the item.
type PatchFeaturedItemInput struct {
	ProductSlug *string
	OrderIndex  *int
}

// FeaturedListUsecase maintains the densely ordered "popular on Steam" list.
type FeaturedListUsecase interface {
	GetAll(ctx context.Context) ([]*entity.FeaturedItem, error)
	Get(ctx context.Context, id string) (*entity.FeaturedItem, error)
	Create(ctx context.Context, input CreateFeaturedItemInput) (*entity.FeaturedItem, error)
	Patch(ctx context.Context, id string, input PatchFeaturedItemInput) (*entity.FeaturedItem, error)
	Delete(ctx context.Context, id string) (*entity.FeaturedItem, error)
}
