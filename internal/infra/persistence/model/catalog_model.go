package model

import (
	"time"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TagModel mirrors a document of the 'tags' collection.
type TagModel struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// ToTagDomain maps a stored document to the domain entity.
func ToTagDomain(m *TagModel) *entity.Tag {
	if m == nil {
		return nil
	}

	return &entity.Tag{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// FromTagDomain maps the domain entity to its document.
func FromTagDomain(t *entity.Tag) *TagModel {
	return &TagModel{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

// PlatformModel mirrors a document of the 'platforms' collection.
type PlatformModel struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Slug      string             `bson:"slug"`
	BaseURL   string             `bson:"base_url"`
	Enabled   bool               `bson:"enabled"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// ToPlatformDomain maps a stored document to the domain entity.
func ToPlatformDomain(m *PlatformModel) *entity.Platform {
	if m == nil {
		return nil
	}

	return &entity.Platform{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		BaseURL:   m.BaseURL,
		Enabled:   m.Enabled,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProductModel mirrors a document of the 'products' collection.
type ProductModel struct {
	ID               primitive.ObjectID   `bson:"_id"`
	Slug             string               `bson:"slug"`
	Name             string               `bson:"name"`
	ShortDescription string               `bson:"short_description"`
	Tags             []primitive.ObjectID `bson:"tags"`
	Platforms        []primitive.ObjectID `bson:"platforms"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

// ToProductDomain maps a stored document to the domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:               m.ID,
		Slug:             m.Slug,
		Name:             m.Name,
		ShortDescription: m.ShortDescription,
		Tags:             m.Tags,
		Platforms:        m.Platforms,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
