package handler

import (
	"net/http"
	"strconv"

	"indieneer/internal/delivery/http/middleware"
	"indieneer/internal/delivery/http/response"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CookieRefreshToken holds the refresh token set by the refresh endpoint.
const CookieRefreshToken = "RefreshToken"

// LoginHandler handles sign-in and token refresh.
type LoginHandler struct {
	loginUC usecase.LoginUsecase
}

// NewLoginHandler is the constructor for LoginHandler.
func NewLoginHandler(loginUC usecase.LoginUsecase) *LoginHandler {
	return &LoginHandler{loginUC: loginUC}
}

// LoginRequest is the body of POST /v1/logins.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// M2MLoginRequest is the body of POST /v1/logins/m2m.
type M2MLoginRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// RefreshRequest is the body of POST /v1/logins/refresh_tokens. The token may come from a cookie instead.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LoginV2Response is the identity envelope together with the signed-in profile.
type LoginV2Response struct {
	*service.SignInResult
	Profile *entity.Profile `json:"profile"`
}

// Login handles POST /v1/logins.
func (h *LoginHandler) Login(c echo.Context) error {
	out, err := h.login(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out.Identity)
}

// LoginV2 handles POST /v2/logins.
func (h *LoginHandler) LoginV2(c echo.Context) error {
	out, err := h.login(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, LoginV2Response{
		SignInResult: out.Identity,
		Profile:      out.Profile,
	})
}

func (h *LoginHandler) login(c echo.Context) (*usecase.LoginOutput, error) {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return nil, err
	}

	out, err := h.loginUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

// LoginM2M handles POST /v1/logins/m2m.
func (h *LoginHandler) LoginM2M(c echo.Context) error {
	var req M2MLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	identity, err := h.loginUC.LoginM2M(c.Request().Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity)
}

// Refresh handles POST /v1/logins/refresh_tokens and stores the new tokens in cookies.
func (h *LoginHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrBadRequest.WithDetails("malformed request body")
	}

	token := req.RefreshToken
	if token == "" {
		if cookie, err := c.Cookie(CookieRefreshToken); err == nil {
			token = cookie.Value
		}
	}

	result, err := h.loginUC.Refresh(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(tokenCookie(middleware.CookieAuthorization, result.IDToken, result.ExpiresIn))
	c.SetCookie(tokenCookie(CookieRefreshToken, result.RefreshToken, ""))

	return response.Success(c, http.StatusOK, result)
}

func tokenCookie(name, value, expiresIn string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
	if seconds, err := strconv.Atoi(expiresIn); err == nil && seconds > 0 {
		cookie.MaxAge = seconds
	}

	return cookie
}
