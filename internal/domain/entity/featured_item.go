package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeaturedItem is an element of the "popular on Steam" list. Order indices of
// the list form the dense sequence 0..N-1.
type FeaturedItem struct {
	ID          primitive.ObjectID `json:"_id"`
	ProductSlug string             `json:"product_slug"`
	OrderIndex  int                `json:"order_index"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
