package handler

import (
	"net/http"

	"indieneer/internal/delivery/http/response"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the profile routes of end users and admins.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(profileUC usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC}
}

// CreateProfileRequest is the body of POST /v1/profiles.
type CreateProfileRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// CreateProfileV2Request is the body of POST /v2/profiles.
type CreateProfileV2Request struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	Nickname      string `json:"nickname" validate:"required,max=64"`
	DisplayName   string `json:"display_name" validate:"omitempty,max=128"`
	PhotoURL      string `json:"photo_url" validate:"omitempty,url"`
	EmailVerified bool   `json:"email_verified"`
}

// AdminCreateProfileRequest lets an admin pick the role of the new account.
type AdminCreateProfileRequest struct {
	CreateProfileV2Request
	Role string `json:"role" validate:"omitempty,oneof=User Admin user admin"`
}

// UpdateProfileRequest is a partial update of a profile.
type UpdateProfileRequest struct {
	Nickname    *string `json:"nickname" validate:"omitempty,min=1,max=64"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=128"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url"`
}

// SetRolesRequest replaces the roles of a profile.
type SetRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,required"`
}

// CreateServiceProfileRequest is the body of POST /v1/admin/service_profiles.
type CreateServiceProfileRequest struct {
	Permissions []string `json:"permissions" validate:"dive,required"`
}

// ServiceProfileResponse is the only place the client secret is ever shown.
type ServiceProfileResponse struct {
	*entity.ServiceProfile
	ClientSecret string `json:"client_secret"`
}

// Create handles POST /v1/profiles.
func (h *ProfileHandler) Create(c echo.Context) error {
	var req CreateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.Create(c.Request().Context(), usecase.CreateProfileInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: nicknameFromEmail(req.Email),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// CreateV2 handles POST /v2/profiles.
func (h *ProfileHandler) CreateV2(c echo.Context) error {
	var req CreateProfileV2Request
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.Create(c.Request().Context(), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

func (r CreateProfileV2Request) input() usecase.CreateProfileInput {
	return usecase.CreateProfileInput{
		Email:         r.Email,
		Password:      r.Password,
		Nickname:      r.Nickname,
		DisplayName:   r.DisplayName,
		PhotoURL:      r.PhotoURL,
		EmailVerified: r.EmailVerified,
	}
}

// Me handles GET /v1/profiles/me.
func (h *ProfileHandler) Me(c echo.Context) error {
	auth, err := principal(c)
	if err != nil {
		return err
	}
	if auth.ProfileID == "" {
		return domainerrors.ErrProfileNotFound
	}

	profile, err := h.profileUC.Get(c.Request().Context(), auth.ProfileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Get handles GET /v1/profiles/:id for the owner.
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := h.ownedID(c)
	if err != nil {
		return err
	}

	return h.get(c, id)
}

// Update handles PATCH /v1/profiles/:id for the owner.
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := h.ownedID(c)
	if err != nil {
		return err
	}

	return h.update(c, id)
}

// Delete handles DELETE /v1/profiles/:id for the owner.
func (h *ProfileHandler) Delete(c echo.Context) error {
	id, err := h.ownedID(c)
	if err != nil {
		return err
	}

	return h.delete(c, id)
}

// ownedID returns the :id parameter once the caller is known to own it.
func (h *ProfileHandler) ownedID(c echo.Context) (string, error) {
	auth, err := principal(c)
	if err != nil {
		return "", err
	}

	id := c.Param("id")
	if !auth.Owns(id) {
		return "", domainerrors.ErrForbidden
	}

	return id, nil
}

// List handles GET /v1/admin/profiles.
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// AdminGet handles GET /v1/admin/profiles/:id.
func (h *ProfileHandler) AdminGet(c echo.Context) error {
	return h.get(c, c.Param("id"))
}

// AdminCreate handles POST /v1/admin/profiles.
func (h *ProfileHandler) AdminCreate(c echo.Context) error {
	var req AdminCreateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := req.input()
	input.Role = entity.Role(req.Role)

	profile, err := h.profileUC.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// AdminUpdate handles PATCH /v1/admin/profiles/:id.
func (h *ProfileHandler) AdminUpdate(c echo.Context) error {
	return h.update(c, c.Param("id"))
}

// AdminDelete handles DELETE /v1/admin/profiles/:id.
func (h *ProfileHandler) AdminDelete(c echo.Context) error {
	return h.delete(c, c.Param("id"))
}

// SetRoles handles PUT /v1/admin/profiles/:id/roles.
func (h *ProfileHandler) SetRoles(c echo.Context) error {
	var req SetRolesRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	roles := make(entity.Roles, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, entity.Role(r))
	}

	profile, err := h.profileUC.SetRoles(c.Request().Context(), c.Param("id"), roles)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// CreateServiceProfile handles POST /v1/admin/service_profiles.
func (h *ProfileHandler) CreateServiceProfile(c echo.Context) error {
	var req CreateServiceProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.profileUC.CreateServiceProfile(c.Request().Context(), usecase.CreateServiceProfileInput{
		Permissions: req.Permissions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ServiceProfileResponse{
		ServiceProfile: out.Profile,
		ClientSecret:   out.ClientSecret,
	})
}

func (h *ProfileHandler) get(c echo.Context, id string) error {
	profile, err := h.profileUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *ProfileHandler) update(c echo.Context, id string) error {
	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.Update(c.Request().Context(), id, usecase.UpdateProfileInput{
		Nickname:    req.Nickname,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

func (h *ProfileHandler) delete(c echo.Context, id string) error {
	profile, err := h.profileUC.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}
