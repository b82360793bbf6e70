package handler

import (
	"net/http"
	"strconv"

	"indieneer/internal/delivery/http/response"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves tags, platforms and products.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// TagRequest is the body of tag create and update.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// ListTags handles GET /v1/tags, GET /v1/genres and GET /v1/admin/tags.
func (h *CatalogHandler) ListTags(c echo.Context) error {
	tags, err := h.catalogUC.ListTags(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags)
}

// GetTag handles GET /v1/admin/tags/:id.
func (h *CatalogHandler) GetTag(c echo.Context) error {
	tag, err := h.catalogUC.GetTag(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tag)
}

// CreateTag handles POST /v1/admin/tags.
func (h *CatalogHandler) CreateTag(c echo.Context) error {
	var req TagRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tag, err := h.catalogUC.CreateTag(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tag)
}

// UpdateTag handles PATCH /v1/admin/tags/:id.
func (h *CatalogHandler) UpdateTag(c echo.Context) error {
	var req TagRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tag, err := h.catalogUC.UpdateTag(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tag)
}

// DeleteTag handles DELETE /v1/admin/tags/:id.
func (h *CatalogHandler) DeleteTag(c echo.Context) error {
	tag, err := h.catalogUC.DeleteTag(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tag)
}

// ListPlatforms handles GET /v1/platforms with an optional ?enabled filter.
func (h *CatalogHandler) ListPlatforms(c echo.Context) error {
	var enabled *bool
	if raw := c.QueryParam("enabled"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrBadRequest.WithDetails("enabled must be a boolean")
		}
		enabled = &v
	}

	platforms, err := h.catalogUC.ListPlatforms(c.Request().Context(), enabled)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, platforms)
}

// GetProduct handles GET /v1/products/:slug.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}
