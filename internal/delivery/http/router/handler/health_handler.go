package handler

import (
	"net/http"

	"indieneer/internal/delivery/http/response"
	"indieneer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service health.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(healthUC usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{healthUC: healthUC}
}

// Health always answers 200; a failing database is reported in the body.
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.healthUC.Check(c.Request().Context()))
}
