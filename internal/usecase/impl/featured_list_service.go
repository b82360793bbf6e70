package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"go.uber.org/fx"
)

type featuredListService struct {
	txManager repository.TransactionManager
	itemRepo  repository.FeaturedItemRepository
	logger    *slog.Logger
}

// FeaturedListServiceParams holds dependencies for FeaturedListService, injected by Fx.
type FeaturedListServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ItemRepo  repository.FeaturedItemRepository
	Logger    *slog.Logger
}

// NewFeaturedListService is the constructor for featuredListService.
func NewFeaturedListService(params FeaturedListServiceParams) usecase.FeaturedListUsecase {
	return &featuredListService{
		txManager: params.TxManager,
		itemRepo:  params.ItemRepo,
		logger:    params.Logger,
	}
}

func (srv *featuredListService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *featuredListService) GetAll(ctx context.Context) ([]*entity.FeaturedItem, error) {
	items, err := srv.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured items")
	}

	return items, nil
}

func (srv *featuredListService) Get(ctx context.Context, id string) (*entity.FeaturedItem, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	item, err := srv.itemRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("featured item "+id), "failed to get featured item")
	}

	return item, nil
}

// Create inserts the item at its order index. An occupied index pushes that item and every later one down by one.
func (srv *featuredListService) Create(ctx context.Context, input usecase.CreateFeaturedItemInput) (*entity.FeaturedItem, error) {
	if input.ProductSlug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product_slug is required")
	}
	if input.OrderIndex < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order_index must not be negative")
	}

	item := &entity.FeaturedItem{ProductSlug: input.ProductSlug, OrderIndex: input.OrderIndex}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.FeaturedItemRepo()

		if err := repo.LockList(ctx); err != nil {
			return err
		}

		size, err := listSize(ctx, repo)
		if err != nil {
			return err
		}
		if item.OrderIndex > size {
			return domainerrors.ErrValidationFailed.WithDetails("order_index must be at most " + strconv.Itoa(size))
		}

		occupied, err := repo.ExistsAtIndex(ctx, item.OrderIndex)
		if err != nil {
			return err
		}
		if occupied {
			if err := repo.ShiftRange(ctx, item.OrderIndex, -1, 1); err != nil {
				return err
			}
		}

		return repo.Create(ctx, item)
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Featured item insertion failed", slog.Int("order_index", input.OrderIndex), slog.Any("error", err))

		return nil, domainerrors.ErrInsertionFailed
	}

	return item, nil
}

// Patch moves the item when its order index changes; the items in between close the gap.
func (srv *featuredListService) Patch(ctx context.Context, id string, input usecase.PatchFeaturedItemInput) (*entity.FeaturedItem, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if input.ProductSlug != nil && *input.ProductSlug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product_slug must not be empty")
	}

	var updated *entity.FeaturedItem
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.FeaturedItemRepo()

		if err := repo.LockList(ctx); err != nil {
			return err
		}

		current, err := repo.FindByID(ctx, oid)
		if err != nil {
			return notFoundAs(err, domainerrors.ErrNotFound.WithDetails("featured item "+id), "failed to load featured item")
		}

		update := repository.FeaturedItemUpdate{ProductSlug: input.ProductSlug}

		if input.OrderIndex != nil && *input.OrderIndex != current.OrderIndex {
			if err := srv.move(ctx, repo, current.OrderIndex, *input.OrderIndex); err != nil {
				return err
			}
			update.OrderIndex = input.OrderIndex
		}

		updated, err = repo.Update(ctx, oid, update)

		return err
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		if errors.Is(err, repository.ErrWriteConflict) {
			return nil, domainerrors.ErrTransactionAborted
		}

		return nil, errors.Wrap(err, "failed to patch featured item")
	}

	return updated, nil
}

func (srv *featuredListService) move(ctx context.Context, repo repository.FeaturedItemRepository, from, to int) error {
	size, err := listSize(ctx, repo)
	if err != nil {
		return err
	}
	if to < 0 || to >= size {
		return domainerrors.ErrValidationFailed.WithDetails("order_index must be between 0 and " + strconv.Itoa(size-1))
	}

	if to > from {
		return repo.ShiftRange(ctx, from+1, to, -1)
	}

	return repo.ShiftRange(ctx, to, from-1, 1)
}

// Delete leaves a gap at the removed index; later items keep their positions.
func (srv *featuredListService) Delete(ctx context.Context, id string) (*entity.FeaturedItem, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	item, err := srv.itemRepo.Delete(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrNotFound.WithDetails("featured item "+id), "failed to delete featured item")
	}

	return item, nil
}

// listSize is one past the highest order index, so gaps left by deletes stay addressable.
func listSize(ctx context.Context, repo repository.FeaturedItemRepository) (int, error) {
	items, err := repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	return items[len(items)-1].OrderIndex + 1, nil
}
