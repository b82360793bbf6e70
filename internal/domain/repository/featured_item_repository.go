package repository

import (
	"context"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeaturedItemUpdate is a partial update; nil fields are left untouched.
type FeaturedItemUpdate struct {
	ProductSlug *string
	OrderIndex  *int
}

// FeaturedItemRepository persists the ordered "popular on Steam" list.
type FeaturedItemRepository interface {
	// FindAll returns the items sorted by order index ascending.
	FindAll(ctx context.Context) ([]*entity.FeaturedItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.FeaturedItem, error)
	ExistsAtIndex(ctx context.Context, orderIndex int) (bool, error)

	// LockList writes the list's lock document so that two transactions
	// reordering the list at the same time conflict and one of them aborts.
	LockList(ctx context.Context) error
	Create(ctx context.Context, item *entity.FeaturedItem) error

	// ShiftRange adds delta to the order index of every item with from <= order_index <= to.
	// A negative to means the range is unbounded above.
	ShiftRange(ctx context.Context, from, to, delta int) error

	Update(ctx context.Context, id primitive.ObjectID, update FeaturedItemUpdate) (*entity.FeaturedItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.FeaturedItem, error)
}
