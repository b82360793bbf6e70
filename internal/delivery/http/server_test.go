package http

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"indieneer/config"
	"indieneer/internal/delivery/http/middleware"
	"indieneer/internal/delivery/http/router"
	"indieneer/internal/delivery/http/router/handler"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/service"
	mockSvc "indieneer/internal/mocks/service"
	mockUC "indieneer/internal/mocks/usecase"
	"indieneer/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testNamespace = "https://indieneer.test"

type serverFixtures struct {
	echo      *echo.Echo
	verifier  *mockSvc.MockTokenVerifier
	health    *mockUC.MockHealthUsecase
	profiles  *mockUC.MockProfileUsecase
	logins    *mockUC.MockLoginUsecase
	jobs      *mockUC.MockBackgroundJobUsecase
	catalog   *mockUC.MockCatalogUsecase
	featured  *mockUC.MockFeaturedListUsecase
	rateLimit int
}

func newTestServer(t *testing.T) *serverFixtures {
	t.Helper()

	f := &serverFixtures{
		verifier:  mockSvc.NewMockTokenVerifier(t),
		health:    mockUC.NewMockHealthUsecase(t),
		profiles:  mockUC.NewMockProfileUsecase(t),
		logins:    mockUC.NewMockLoginUsecase(t),
		jobs:      mockUC.NewMockBackgroundJobUsecase(t),
		catalog:   mockUC.NewMockCatalogUsecase(t),
		featured:  mockUC.NewMockFeaturedListUsecase(t),
		rateLimit: 100,
	}

	cfg := &config.Config{Firebase: &config.FirebaseConfig{Namespace: testNamespace}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, Requests: f.rateLimit, Window: time.Minute}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.echo = NewEcho(cfg, logger, router.RouterParams{
		HealthHandler:        handler.NewHealthHandler(f.health),
		ProfileHandler:       handler.NewProfileHandler(f.profiles),
		LoginHandler:         handler.NewLoginHandler(f.logins),
		BackgroundJobHandler: handler.NewBackgroundJobHandler(f.jobs),
		CatalogHandler:       handler.NewCatalogHandler(f.catalog),
		FeaturedListHandler:  handler.NewFeaturedListHandler(f.featured),
		AuthMiddleware:       middleware.NewAuthMiddleware(f.verifier, cfg),
		RateLimitMiddleware:  middleware.NewRateLimitMiddleware(cfg, logger),
	})

	return f
}

// token registers a bearer token that the verifier resolves to claims.
func (f *serverFixtures) token(name string, claims jwt.MapClaims) string {
	f.verifier.EXPECT().Verify(mock.Anything, name).Return(claims, nil).Maybe()

	return name
}

func (f *serverFixtures) userToken(profileID string, roles ...any) string {
	return f.token("user-"+profileID, jwt.MapClaims{
		"sub":                        "uid-" + profileID,
		testNamespace + "/profile_id": profileID,
		testNamespace + "/roles":      roles,
	})
}

func (f *serverFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())

	return rec, payload
}

func TestServer_SignInThenMe(t *testing.T) {
	f := newTestServer(t)
	profileID := primitive.NewObjectID()

	f.logins.EXPECT().Login(mock.Anything, "a@b.co", "P@ss!").Return(&usecase.LoginOutput{
		Identity: &service.SignInResult{IDToken: "id-token", RefreshToken: "refresh-token", LocalID: profileID.Hex()},
	}, nil)

	rec, payload := f.do(t, nethttp.MethodPost, "/v1/logins", "", `{"email":"a@b.co","password":"P@ss!"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
	data := payload["data"].(map[string]any)
	assert.Equal(t, "id-token", data["id_token"])
	assert.Equal(t, "refresh-token", data["refresh_token"])
	assert.Equal(t, profileID.Hex(), data["local_id"])

	f.token("id-token", jwt.MapClaims{
		"sub":                        profileID.Hex(),
		testNamespace + "/profile_id": profileID.Hex(),
		testNamespace + "/roles":      []any{"User"},
	})
	f.profiles.EXPECT().Get(mock.Anything, profileID.Hex()).Return(&entity.Profile{ID: profileID, Email: "a@b.co"}, nil)

	rec, payload = f.do(t, nethttp.MethodGet, "/v1/profiles/me", "id-token", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "a@b.co", payload["data"].(map[string]any)["email"])
}

func TestServer_AdminTagCreate(t *testing.T) {
	f := newTestServer(t)
	admin := f.userToken("admin", "admin")
	tagID := primitive.NewObjectID()
	tag := &entity.Tag{ID: tagID, Name: "Roguelike"}

	f.catalog.EXPECT().CreateTag(mock.Anything, "Roguelike").Return(tag, nil)
	f.catalog.EXPECT().GetTag(mock.Anything, tagID.Hex()).Return(tag, nil)

	rec, payload := f.do(t, nethttp.MethodPost, "/v1/admin/tags", admin, `{"name":"Roguelike"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Equal(t, "Roguelike", payload["data"].(map[string]any)["name"])

	rec, payload = f.do(t, nethttp.MethodGet, "/v1/admin/tags/"+tagID.Hex(), admin, "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, tagID.Hex(), payload["data"].(map[string]any)["_id"])
}

func TestServer_NonAdminForbidden(t *testing.T) {
	f := newTestServer(t)
	user := f.userToken("user", "User")

	rec, payload := f.do(t, nethttp.MethodPost, "/v1/admin/tags", user, `{"name":"Roguelike"}`)

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	assert.Equal(t, "error", payload["status"])
	assert.Equal(t, "no permission", payload["error"])
	f.catalog.AssertNotCalled(t, "CreateTag", mock.Anything, mock.Anything)
}

func TestServer_AuthenticationErrors(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		verify   error
		wantCode string
	}{
		{name: "missing header", wantCode: domainerrors.CodeAuthorizationHeaderMissing},
		{name: "not bearer", header: "Basic abc", wantCode: domainerrors.CodeInvalidHeader},
		{name: "extra parts", header: "Bearer a b", wantCode: domainerrors.CodeInvalidHeader},
		{name: "expired", header: "Bearer expired", verify: domainerrors.ErrTokenExpired, wantCode: domainerrors.CodeTokenExpired},
		{name: "bad claims", header: "Bearer foreign", verify: domainerrors.ErrInvalidClaims, wantCode: domainerrors.CodeInvalidClaims},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestServer(t)
			if tt.verify != nil {
				f.verifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil, tt.verify)
			}

			req := httptest.NewRequest(nethttp.MethodGet, "/v1/profiles/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			f.echo.ServeHTTP(rec, req)

			require.Equal(t, nethttp.StatusUnauthorized, rec.Code)
			var payload struct {
				Status string `json:"status"`
				Error  struct {
					Code        string `json:"code"`
					Description string `json:"description"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.Equal(t, "error", payload.Status)
			assert.Equal(t, tt.wantCode, payload.Error.Code)
			assert.NotEmpty(t, payload.Error.Description)
		})
	}
}

func TestServer_AuthorizationCookieFallback(t *testing.T) {
	f := newTestServer(t)
	f.userToken("p1", "User")
	f.profiles.EXPECT().Get(mock.Anything, "p1").Return(&entity.Profile{Email: "c@d.co"}, nil)

	req := httptest.NewRequest(nethttp.MethodGet, "/v1/profiles/me", nil)
	req.AddCookie(&nethttp.Cookie{Name: middleware.CookieAuthorization, Value: "user-p1"})
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestServer_ProfileOwnership(t *testing.T) {
	f := newTestServer(t)
	owner := f.userToken("p1", "User")

	f.profiles.EXPECT().Update(mock.Anything, "p1", mock.MatchedBy(func(in usecase.UpdateProfileInput) bool {
		return in.Nickname != nil && *in.Nickname == "neo" && in.DisplayName == nil
	})).Return(&entity.Profile{Nickname: "neo"}, nil)

	rec, _ := f.do(t, nethttp.MethodPatch, "/v1/profiles/p1", owner, `{"nickname":"neo"}`)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec, payload := f.do(t, nethttp.MethodDelete, "/v1/profiles/p2", owner, "")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	assert.Equal(t, "no permission", payload["error"])
}

func TestServer_BackgroundJobLifecycle(t *testing.T) {
	f := newTestServer(t)
	svc := f.token("svc", jwt.MapClaims{"sub": "svc@clients"})
	jobID := primitive.NewObjectID()

	f.jobs.EXPECT().Create(mock.Anything, "svc@clients", usecase.CreateBackgroundJobInput{
		Type:     entity.JobType("es_seeder"),
		Metadata: map[string]any{"match_query": "indie"},
	}).Return(&entity.BackgroundJob{ID: jobID, Type: "es_seeder", Status: entity.JobStatusPending, CreatedBy: "svc@clients"}, nil)

	rec, payload := f.do(t, nethttp.MethodPost, "/v1/background_jobs", svc,
		`{"type":"es_seeder","metadata":{"match_query":"indie"}}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.Equal(t, "pending", payload["data"].(map[string]any)["status"])

	statusIs := func(want entity.JobStatus) any {
		return mock.MatchedBy(func(in usecase.PatchBackgroundJobInput) bool {
			return in.Status != nil && *in.Status == want
		})
	}
	f.jobs.EXPECT().Patch(mock.Anything, "svc@clients", jobID.Hex(), statusIs(entity.JobStatusRunning)).
		Return(&entity.BackgroundJob{ID: jobID, Status: entity.JobStatusRunning}, nil)
	f.jobs.EXPECT().Patch(mock.Anything, "svc@clients", jobID.Hex(), statusIs(entity.JobStatusSuccess)).
		Return(&entity.BackgroundJob{ID: jobID, Status: entity.JobStatusSuccess}, nil)
	f.jobs.EXPECT().Patch(mock.Anything, "svc@clients", jobID.Hex(), statusIs(entity.JobStatusPending)).
		Return(nil, domainerrors.ErrUnsupportedStatus)

	path := "/v1/background_jobs/" + jobID.Hex()
	rec, _ = f.do(t, nethttp.MethodPatch, path, svc, `{"status":"running"}`)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	rec, _ = f.do(t, nethttp.MethodPatch, path, svc, `{"status":"success"}`)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec, payload = f.do(t, nethttp.MethodPatch, path, svc, `{"status":"pending"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unsupported status", payload["error"])
}

func TestServer_BackgroundJobsRequireServiceAccount(t *testing.T) {
	f := newTestServer(t)
	user := f.userToken("p1", "Admin")

	rec, payload := f.do(t, nethttp.MethodGet, "/v1/background_jobs", user, "")

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	assert.Equal(t, "no permission", payload["error"])
}

func TestServer_FeaturedListInsert(t *testing.T) {
	f := newTestServer(t)
	admin := f.userToken("admin", "Admin")

	f.featured.EXPECT().Create(mock.Anything, usecase.CreateFeaturedItemInput{ProductSlug: "sX", OrderIndex: 1}).
		Return(&entity.FeaturedItem{ProductSlug: "sX", OrderIndex: 1}, nil)

	rec, payload := f.do(t, nethttp.MethodPost, "/v1/admin/cms/popular_on_steam", admin,
		`{"product_slug":"sX","order_index":1}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	assert.EqualValues(t, 1, payload["data"].(map[string]any)["order_index"])

	rec, payload = f.do(t, nethttp.MethodPost, "/v1/admin/cms/popular_on_steam", admin, `{"product_slug":"sX"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Contains(t, payload["details"], "order_index is required")
}

func TestServer_RateLimit(t *testing.T) {
	f := newTestServer(t)
	f.health.EXPECT().Check(mock.Anything).Return(&usecase.HealthOutput{DB: "ok", Environment: "test", Version: "v0"})

	for i := 0; i < f.rateLimit; i++ {
		rec, _ := f.do(t, nethttp.MethodGet, "/v1/health", "", "")
		require.Equal(t, nethttp.StatusOK, rec.Code, "request %d", i+1)
	}

	rec, payload := f.do(t, nethttp.MethodGet, "/v1/health", "", "")
	assert.Equal(t, nethttp.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Rate limit exceeded", payload["error"])
}

func TestServer_RefreshSetsCookies(t *testing.T) {
	f := newTestServer(t)
	f.logins.EXPECT().Refresh(mock.Anything, "from-cookie").Return(&service.RefreshResult{
		IDToken:      "new-id",
		RefreshToken: "new-refresh",
		ExpiresIn:    "3600",
	}, nil)

	req := httptest.NewRequest(nethttp.MethodPost, "/v1/logins/refresh_tokens", nil)
	req.AddCookie(&nethttp.Cookie{Name: handler.CookieRefreshToken, Value: "from-cookie"})
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	cookies := map[string]*nethttp.Cookie{}
	for _, c := range rec.Result().Cookies() {
		cookies[c.Name] = c
	}
	require.Contains(t, cookies, middleware.CookieAuthorization)
	require.Contains(t, cookies, handler.CookieRefreshToken)
	assert.Equal(t, "new-id", cookies[middleware.CookieAuthorization].Value)
	assert.Equal(t, 3600, cookies[middleware.CookieAuthorization].MaxAge)
	assert.True(t, cookies[middleware.CookieAuthorization].HttpOnly)
	assert.True(t, cookies[middleware.CookieAuthorization].Secure)
	assert.Equal(t, "new-refresh", cookies[handler.CookieRefreshToken].Value)
}

func TestServer_ErrorRendering(t *testing.T) {
	f := newTestServer(t)

	rec, payload := f.do(t, nethttp.MethodPost, "/v1/logins", "", `{"email":"not-an-email"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid input", payload["error"])
	assert.Contains(t, payload["details"], "password is required")

	rec, payload = f.do(t, nethttp.MethodPost, "/v1/logins", "", `{"email":`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bad request", payload["error"])

	f.catalog.EXPECT().GetProduct(mock.Anything, "boom").Return(nil, errors.New("mongo went away"))
	rec, payload = f.do(t, nethttp.MethodGet, "/v1/products/boom", "", "")
	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "mongo went away", payload["error"])

	rec, payload = f.do(t, nethttp.MethodGet, "/v1/platforms?enabled=maybe", "", "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "enabled must be a boolean", payload["details"])

	rec, _ = f.do(t, nethttp.MethodGet, "/nowhere", "", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestServer_RequestIDEchoed(t *testing.T) {
	f := newTestServer(t)
	f.health.EXPECT().Check(mock.Anything).Return(&usecase.HealthOutput{DB: "ok"})

	req := httptest.NewRequest(nethttp.MethodGet, "/v1/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
}
