package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/delivery/http/response"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Internal != nil && httpErr.Code >= http.StatusInternalServerError {
			m.handleUncaught(c, logger, httpErr.Internal)

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, message, "")

		return
	}

	m.handleUncaught(c, logger, err)
}

// handleUncaught renders errors outside the AppError taxonomy. Access log
// middleware may have already wrapped them into an echo 500.
func (m *ErrorMiddleware) handleUncaught(c echo.Context, logger *slog.Logger, err error) {
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	// Uncaught errors keep their text in the body.
	_ = response.Error(c, http.StatusInternalServerError, err.Error(), "")
}
