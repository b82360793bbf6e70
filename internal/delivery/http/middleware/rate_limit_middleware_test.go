package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(limit int, window time.Duration) (*RateLimitMiddleware, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newRateLimitMiddleware(true, limit, window, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.now = func() time.Time { return now }

	return m, &now
}

func TestRateLimit_SlidingWindow(t *testing.T) {
	m, now := newTestRateLimiter(3, time.Minute)

	assert.True(t, m.allow("k"))
	*now = now.Add(20 * time.Second)
	assert.True(t, m.allow("k"))
	assert.True(t, m.allow("k"))
	assert.False(t, m.allow("k"), "fourth hit inside the window")

	// The first hit leaves the window; one slot frees up.
	*now = now.Add(41 * time.Second)
	assert.True(t, m.allow("k"))
	assert.False(t, m.allow("k"))
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	m, _ := newTestRateLimiter(1, time.Minute)

	assert.True(t, m.allow("10.0.0.1 GET /v1/health"))
	assert.True(t, m.allow("10.0.0.2 GET /v1/health"))
	assert.True(t, m.allow("10.0.0.1 GET /v1/tags"))
	assert.False(t, m.allow("10.0.0.1 GET /v1/health"))
}

func TestRateLimit_Handle(t *testing.T) {
	m, _ := newTestRateLimiter(2, time.Minute)
	e := echo.New()
	handler := m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	call := func() error {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/v1/health")

		return handler(c)
	}

	require.NoError(t, call())
	require.NoError(t, call())
	assert.True(t, errors.Is(call(), domainerrors.ErrRateLimited))
}

func TestRateLimit_Disabled(t *testing.T) {
	m := newRateLimitMiddleware(false, 1, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	handler := m.Handle(func(c echo.Context) error { return nil })

	for i := 0; i < 5; i++ {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		require.NoError(t, handler(c))
	}
}

func TestRateLimit_Defaults(t *testing.T) {
	m := newRateLimitMiddleware(true, 0, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, 100, m.limit)
	assert.Equal(t, time.Minute, m.window)
}
