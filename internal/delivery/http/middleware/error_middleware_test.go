package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	m.HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   any
		wantDetails any
	}{
		{
			name:       "forbidden",
			err:        errors.WithStack(domainerrors.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantError:  "no permission",
		},
		{
			name:        "client error keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("email is required"),
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid input",
			wantDetails: "email is required",
		},
		{
			name:       "server error drops details",
			err:        domainerrors.ErrInsertionFailed.WithDetails("E11000 duplicate key"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "insertion failed",
		},
		{
			name:       "auth error is structured",
			err:        domainerrors.ErrTokenExpired,
			wantStatus: http.StatusUnauthorized,
			wantError:  map[string]any{"code": domainerrors.CodeTokenExpired, "description": "token is expired"},
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method Not Allowed",
		},
		{
			name:       "echo 500 wrapping a plain error",
			err:        echo.NewHTTPError(http.StatusInternalServerError).SetInternal(errors.New("mongo went away")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "mongo went away",
		},
		{
			name:       "echo client error keeps its message",
			err:        echo.NewHTTPError(http.StatusNotFound).SetInternal(errors.New("route lookup")),
			wantStatus: http.StatusNotFound,
			wantError:  "Not Found",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := renderError(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.wantError, body["error"])
			assert.Equal(t, tt.wantDetails, body["details"])
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
