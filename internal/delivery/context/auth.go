package context

import (
	"context"

	"indieneer/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetAuth attaches the verified principal to both the echo context and the request context.
func SetAuth(c echo.Context, auth *entity.AuthContext) {
	c.Set(string(KeyAuth), auth)
	c.SetRequest(c.Request().WithContext(WithAuth(c.Request().Context(), auth)))
}

// GetAuth returns the principal set by the auth middleware, or nil on unauthenticated routes.
func GetAuth(c echo.Context) *entity.AuthContext {
	if auth, ok := c.Get(string(KeyAuth)).(*entity.AuthContext); ok {
		return auth
	}

	return nil
}

// WithAuth returns a new context carrying the principal.
func WithAuth(ctx context.Context, auth *entity.AuthContext) context.Context {
	return context.WithValue(ctx, KeyAuth, auth)
}

// AuthFromContext extracts the principal from a standard context.
func AuthFromContext(ctx context.Context) *entity.AuthContext {
	if auth, ok := ctx.Value(KeyAuth).(*entity.AuthContext); ok {
		return auth
	}

	return nil
}
