package middleware

import (
	"log/slog"
	"strings"

	"indieneer/config"
	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieAuthorization holds the id token set by the refresh endpoint.
const CookieAuthorization = "Authorization"

// AuthMiddleware provides the authentication and authorization gates.
// Gates compose as Authenticate first, then RequireRole or RequireServiceAccount.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	firebase *config.FirebaseConfig
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, firebase: cfg.Firebase}
}

// Authenticate verifies the bearer token and attaches the principal to the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			return err
		}

		auth := m.principal(claims)
		deliverycontext.SetAuth(c, auth)

		if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With(slog.String("subject", auth.Subject)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireRole lets the request through only if the principal holds role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.GetAuth(c).HasRole(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireServiceAccount lets the request through only for client-credentials principals.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireServiceAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := deliverycontext.GetAuth(c)
		if auth == nil || !auth.IsServiceAccount {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// bearerToken reads "Authorization: Bearer <token>", falling back to the Authorization cookie.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		if cookie, err := c.Cookie(CookieAuthorization); err == nil && cookie.Value != "" {
			return cookie.Value, nil
		}

		return "", domainerrors.ErrAuthorizationHeaderMissing
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domainerrors.ErrInvalidHeader
	}

	return parts[1], nil
}

func (m *AuthMiddleware) principal(claims jwt.MapClaims) *entity.AuthContext {
	subject, _ := claims.GetSubject()
	profileID, _ := claims[m.firebase.ClaimKey("profile_id")].(string)

	return &entity.AuthContext{
		Claims:           claims,
		Subject:          subject,
		ProfileID:        profileID,
		Roles:            entity.RolesFromStrings(stringList(claims[m.firebase.ClaimKey("roles")])),
		Permissions:      stringList(claims[m.firebase.ClaimKey("permissions")]),
		IsServiceAccount: entity.IsServiceSubject(subject),
	}
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}
