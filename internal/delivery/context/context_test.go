package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"indieneer/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSetAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, GetAuth(c))

	auth := &entity.AuthContext{Subject: "svc@clients", IsServiceAccount: true}
	SetAuth(c, auth)

	assert.Same(t, auth, GetAuth(c))
	assert.Same(t, auth, AuthFromContext(c.Request().Context()))
}

func TestRequestScopedValues(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = WithLogger(WithRequestID(ctx, "req-1"), logger)

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, fallback))
}

func TestGetLogger_Missing(t *testing.T) {
	assert.Nil(t, GetLogger(context.Background()))
}
