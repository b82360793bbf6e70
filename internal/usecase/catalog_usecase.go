package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
)

// CatalogUsecase exposes the product catalog entities.
type CatalogUsecase interface {
	ListTags(ctx context.Context) ([]*entity.Tag, error)
	GetTag(ctx context.Context, id string) (*entity.Tag, error)
	CreateTag(ctx context.Context, name string) (*entity.Tag, error)
	UpdateTag(ctx context.Context, id, name string) (*entity.Tag, error)
	DeleteTag(ctx context.Context, id string) (*entity.Tag, error)

	// ListPlatforms returns every platform, or only those matching enabled when it is set.
	ListPlatforms(ctx context.Context, enabled *bool) ([]*entity.Platform, error)

	GetProduct(ctx context.Context, slug string) (*entity.Product, error)
}

// HealthOutput reports the state of the service's dependencies.
type HealthOutput struct {
	DB          string `json:"db"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// HealthUsecase probes the document store.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthOutput
}
