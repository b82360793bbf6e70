package model

import (
	"time"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeaturedItemModel mirrors a document of the 'popular_on_steam' collection.
type FeaturedItemModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	ProductSlug string             `bson:"product_slug"`
	OrderIndex  int                `bson:"order_index"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ToFeaturedItemDomain maps a stored document to the domain entity.
func ToFeaturedItemDomain(m *FeaturedItemModel) *entity.FeaturedItem {
	if m == nil {
		return nil
	}

	return &entity.FeaturedItem{
		ID:          m.ID,
		ProductSlug: m.ProductSlug,
		OrderIndex:  m.OrderIndex,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromFeaturedItemDomain maps the domain entity to its document.
func FromFeaturedItemDomain(i *entity.FeaturedItem) *FeaturedItemModel {
	return &FeaturedItemModel{
		ID:          i.ID,
		ProductSlug: i.ProductSlug,
		OrderIndex:  i.OrderIndex,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
