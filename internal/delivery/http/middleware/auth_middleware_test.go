package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"indieneer/config"
	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/errors"
	mockSvc "indieneer/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testNamespace = "https://indieneer.test/"

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenVerifier) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	cfg := &config.Config{Firebase: &config.FirebaseConfig{Namespace: testNamespace}}

	return NewAuthMiddleware(verifier, cfg), verifier
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, verifier := newTestAuthMiddleware(t)
	verifier.EXPECT().Verify(mock.Anything, "tok").Return(jwt.MapClaims{
		"sub": "uid-1",
		"https://indieneer.test/profile_id":  "p1",
		"https://indieneer.test/roles":       []any{"admin", 7},
		"https://indieneer.test/permissions": []any{"read:jobs"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "bearer tok")
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var seen *entity.AuthContext
	err := m.Authenticate(func(c echo.Context) error {
		seen = deliverycontext.GetAuth(c)
		assert.Same(t, seen, deliverycontext.AuthFromContext(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "uid-1", seen.Subject)
	assert.Equal(t, "p1", seen.ProfileID)
	assert.Equal(t, entity.Roles{entity.RoleAdmin}, seen.Roles)
	assert.Equal(t, []string{"read:jobs"}, seen.Permissions)
	assert.False(t, seen.IsServiceAccount)
}

func TestAuthMiddleware_HeaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   error
	}{
		{name: "missing", want: domainerrors.ErrAuthorizationHeaderMissing},
		{name: "wrong scheme", header: "Token abc", want: domainerrors.ErrInvalidHeader},
		{name: "no token", header: "Bearer", want: domainerrors.ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAuthMiddleware(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")
				return nil
			})(c)

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestAuthMiddleware_Gates(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	ok := func(echo.Context) error { return nil }

	tests := []struct {
		name     string
		auth     *entity.AuthContext
		gate     echo.MiddlewareFunc
		wantDeny bool
	}{
		{name: "admin role", auth: &entity.AuthContext{Roles: entity.Roles{"Admin"}}, gate: m.RequireRole(entity.RoleAdmin)},
		{name: "role case insensitive", auth: &entity.AuthContext{Roles: entity.Roles{"ADMIN"}}, gate: m.RequireRole("admin")},
		{name: "user lacks admin", auth: &entity.AuthContext{Roles: entity.Roles{"User"}}, gate: m.RequireRole(entity.RoleAdmin), wantDeny: true},
		{name: "no principal", gate: m.RequireRole(entity.RoleAdmin), wantDeny: true},
		{name: "service account", auth: &entity.AuthContext{IsServiceAccount: true}, gate: m.RequireServiceAccount},
		{name: "human on service route", auth: &entity.AuthContext{Subject: "uid"}, gate: m.RequireServiceAccount, wantDeny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tt.auth != nil {
				deliverycontext.SetAuth(c, tt.auth)
			}

			err := tt.gate(ok)(c)
			if tt.wantDeny {
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthMiddleware_ServiceSubject(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	assert.True(t, m.principal(jwt.MapClaims{"sub": "svc@clients"}).IsServiceAccount)
	assert.True(t, m.principal(jwt.MapClaims{"sub": "service|abc"}).IsServiceAccount)
	assert.False(t, m.principal(jwt.MapClaims{"sub": "@clients"}).IsServiceAccount)
}
