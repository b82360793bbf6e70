package impl

import (
	"context"
	"testing"

	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	mockRepo "indieneer/internal/mocks/repository"
	"indieneer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	tagRepo      *mockRepo.MockTagRepository
	platformRepo *mockRepo.MockPlatformRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		tagRepo:      mockRepo.NewMockTagRepository(t),
		platformRepo: mockRepo.NewMockPlatformRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		TagRepo:      fx.tagRepo,
		PlatformRepo: fx.platformRepo,
		ProductRepo:  fx.productRepo,
	})

	return fx
}

func TestCatalogService_CreateTag(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.tagRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(_ context.Context, tag *entity.Tag) {
			tag.ID = primitive.NewObjectID()
		}).
		Return(nil)

	tag, err := fx.service.CreateTag(ctx, "  Roguelike ")

	require.NoError(t, err)
	assert.Equal(t, "Roguelike", tag.Name)
	assert.False(t, tag.ID.IsZero())
}

func TestCatalogService_CreateTag_BlankName(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateTag(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_TagNotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	id := primitive.NewObjectID()

	fx.tagRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNotFound)
	fx.tagRepo.EXPECT().Update(mock.Anything, id, "Puzzle").Return(nil, repository.ErrNotFound)
	fx.tagRepo.EXPECT().Delete(mock.Anything, id).Return(nil, repository.ErrNotFound)

	_, err := fx.service.GetTag(context.Background(), id.Hex())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = fx.service.UpdateTag(context.Background(), id.Hex(), "Puzzle")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = fx.service.DeleteTag(context.Background(), id.Hex())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_ListPlatforms_PassesFilter(t *testing.T) {
	fx := createTestCatalogService(t)
	enabled := true

	fx.platformRepo.EXPECT().FindAll(mock.Anything, &enabled).Return([]*entity.Platform{{Name: "Steam", Enabled: true}}, nil)

	platforms, err := fx.service.ListPlatforms(context.Background(), &enabled)

	require.NoError(t, err)
	assert.Len(t, platforms, 1)
}

func TestCatalogService_GetProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.productRepo.EXPECT().FindBySlug(mock.Anything, "hades").Return(&entity.Product{Slug: "hades"}, nil)
	fx.productRepo.EXPECT().FindBySlug(mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	product, err := fx.service.GetProduct(context.Background(), "hades")
	require.NoError(t, err)
	assert.Equal(t, "hades", product.Slug)

	_, err = fx.service.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
