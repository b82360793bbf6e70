package impl

import (
	"context"
	"strings"

	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	tagRepo      repository.TagRepository
	platformRepo repository.PlatformRepository
	productRepo  repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TagRepo      repository.TagRepository
	PlatformRepo repository.PlatformRepository
	ProductRepo  repository.ProductRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		tagRepo:      params.TagRepo,
		platformRepo: params.PlatformRepo,
		productRepo:  params.ProductRepo,
	}
}

func (srv *catalogService) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

func (srv *catalogService) GetTag(ctx context.Context, id string) (*entity.Tag, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	tag, err := srv.tagRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("tag "+id), "failed to get tag")
	}

	return tag, nil
}

func (srv *catalogService) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	tag := &entity.Tag{Name: name}
	if err := srv.tagRepo.Create(ctx, tag); err != nil {
		return nil, errors.Wrap(err, "failed to create tag")
	}

	return tag, nil
}

func (srv *catalogService) UpdateTag(ctx context.Context, id, name string) (*entity.Tag, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	tag, err := srv.tagRepo.Update(ctx, oid, name)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("tag "+id), "failed to update tag")
	}

	return tag, nil
}

func (srv *catalogService) DeleteTag(ctx context.Context, id string) (*entity.Tag, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	tag, err := srv.tagRepo.Delete(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("tag "+id), "failed to delete tag")
	}

	return tag, nil
}

func (srv *catalogService) ListPlatforms(ctx context.Context, enabled *bool) ([]*entity.Platform, error) {
	platforms, err := srv.platformRepo.FindAll(ctx, enabled)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list platforms")
	}

	return platforms, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("product "+slug), "failed to get product")
	}

	return product, nil
}
