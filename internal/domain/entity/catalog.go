package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag labels products, e.g. "Roguelike".
type Tag struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Platform is a store or launcher a product is sold on.
type Platform struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	BaseURL   string             `json:"base_url"`
	Enabled   bool               `json:"enabled"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Product is a game listed on the platform.
type Product struct {
	ID               primitive.ObjectID   `json:"_id"`
	Slug             string               `json:"slug"`
	Name             string               `json:"name"`
	ShortDescription string               `json:"short_description"`
	Tags             []primitive.ObjectID `json:"tags"`
	Platforms        []primitive.ObjectID `json:"platforms"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}
