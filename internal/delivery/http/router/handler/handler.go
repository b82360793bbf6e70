// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strings"

	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bind decodes the request into req and runs its validate tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrBadRequest.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// principal returns the authenticated caller. Routes using it sit behind Authenticate.
func principal(c echo.Context) (*entity.AuthContext, error) {
	auth := deliverycontext.GetAuth(c)
	if auth == nil {
		return nil, domainerrors.ErrAuthorizationHeaderMissing
	}

	return auth, nil
}

// nicknameFromEmail is the nickname of accounts created without one.
func nicknameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}

// ListMeta accompanies list responses.
type ListMeta struct {
	Count int `json:"count"`
}
