package handler

import (
	"net/http"

	"indieneer/internal/delivery/http/response"
	"indieneer/internal/domain/entity"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BackgroundJobHandler serves the job tracking routes used by service accounts.
type BackgroundJobHandler struct {
	jobUC usecase.BackgroundJobUsecase
}

// NewBackgroundJobHandler is the constructor for BackgroundJobHandler.
func NewBackgroundJobHandler(jobUC usecase.BackgroundJobUsecase) *BackgroundJobHandler {
	return &BackgroundJobHandler{jobUC: jobUC}
}

// CreateBackgroundJobRequest is the body of POST /v1/background_jobs.
type CreateBackgroundJobRequest struct {
	Type     string         `json:"type" validate:"required"`
	Metadata map[string]any `json:"metadata"`
}

// PatchBackgroundJobRequest is a partial update of a job.
type PatchBackgroundJobRequest struct {
	Status   *string        `json:"status"`
	Metadata map[string]any `json:"metadata"`
	Message  *string        `json:"message"`
}

// AddJobEventRequest is the body of POST /v1/background_jobs/:id/events.
type AddJobEventRequest struct {
	Type    string `json:"type" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// List handles GET /v1/background_jobs.
func (h *BackgroundJobHandler) List(c echo.Context) error {
	jobs, err := h.jobUC.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMeta(c, http.StatusOK, jobs, ListMeta{Count: len(jobs)})
}

// Get handles GET /v1/background_jobs/:id.
func (h *BackgroundJobHandler) Get(c echo.Context) error {
	job, err := h.jobUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job)
}

// Create handles POST /v1/background_jobs.
func (h *BackgroundJobHandler) Create(c echo.Context) error {
	auth, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateBackgroundJobRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	job, err := h.jobUC.Create(c.Request().Context(), auth.Subject, usecase.CreateBackgroundJobInput{
		Type:     entity.JobType(req.Type),
		Metadata: req.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job)
}

// Patch handles PATCH /v1/background_jobs/:id.
func (h *BackgroundJobHandler) Patch(c echo.Context) error {
	auth, err := principal(c)
	if err != nil {
		return err
	}

	var req PatchBackgroundJobRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecase.PatchBackgroundJobInput{
		Metadata: req.Metadata,
		Message:  req.Message,
	}
	if req.Status != nil {
		status := entity.JobStatus(*req.Status)
		input.Status = &status
	}

	job, err := h.jobUC.Patch(c.Request().Context(), auth.Subject, c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job)
}

// AddEvent handles POST /v1/background_jobs/:id/events.
func (h *BackgroundJobHandler) AddEvent(c echo.Context) error {
	auth, err := principal(c)
	if err != nil {
		return err
	}

	var req AddJobEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	job, err := h.jobUC.AddEvent(c.Request().Context(), auth.Subject, c.Param("id"), usecase.AddJobEventInput{
		Type:    entity.EventType(req.Type),
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job)
}

// Delete handles DELETE /v1/background_jobs/:id.
func (h *BackgroundJobHandler) Delete(c echo.Context) error {
	auth, err := principal(c)
	if err != nil {
		return err
	}

	job, err := h.jobUC.Delete(c.Request().Context(), auth.Subject, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job)
}
