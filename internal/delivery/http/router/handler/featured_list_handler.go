package handler

import (
	"net/http"

	"indieneer/internal/delivery/http/response"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FeaturedListHandler serves /v1/admin/cms/popular_on_steam.
type FeaturedListHandler struct {
	featuredUC usecase.FeaturedListUsecase
}

// NewFeaturedListHandler is the constructor for FeaturedListHandler.
func NewFeaturedListHandler(featuredUC usecase.FeaturedListUsecase) *FeaturedListHandler {
	return &FeaturedListHandler{featuredUC: featuredUC}
}

// CreateFeaturedItemRequest inserts a product at order_index.
type CreateFeaturedItemRequest struct {
	ProductSlug string `json:"product_slug" validate:"required"`
	OrderIndex  *int   `json:"order_index" validate:"required,min=0"`
}

// PatchFeaturedItemRequest renames or moves an item.
type PatchFeaturedItemRequest struct {
	ProductSlug *string `json:"product_slug" validate:"omitempty,min=1"`
	OrderIndex  *int    `json:"order_index" validate:"omitempty,min=0"`
}

// List handles GET.
func (h *FeaturedListHandler) List(c echo.Context) error {
	items, err := h.featuredUC.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, items, ListMeta{Count: len(items)})
}

// Get handles GET /:id.
func (h *FeaturedListHandler) Get(c echo.Context) error {
	item, err := h.featuredUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Create handles POST.
func (h *FeaturedListHandler) Create(c echo.Context) error {
	var req CreateFeaturedItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.featuredUC.Create(c.Request().Context(), usecase.CreateFeaturedItemInput{
		ProductSlug: req.ProductSlug,
		OrderIndex:  *req.OrderIndex,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// Patch handles PATCH /:id.
func (h *FeaturedListHandler) Patch(c echo.Context) error {
	var req PatchFeaturedItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.featuredUC.Patch(c.Request().Context(), c.Param("id"), usecase.PatchFeaturedItemInput{
		ProductSlug: req.ProductSlug,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Delete handles DELETE /:id.
func (h *FeaturedListHandler) Delete(c echo.Context) error {
	item, err := h.featuredUC.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}
