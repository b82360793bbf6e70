// Package response renders the JSON envelopes of the HTTP API.
package response

import (
	"net/http"

	domainerrors "indieneer/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
	Meta   any    `json:"meta,omitempty"`
}

// ErrorResponse is the envelope of every failed response. Error is either a
// message string or, for authentication failures, an AuthErrorInfo.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   any    `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthErrorInfo is the structured body of a 401.
type AuthErrorInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Status: statusOK, Data: data})
}

// SuccessWithMeta returns a successful response carrying extra metadata next to the data.
func SuccessWithMeta(c echo.Context, statusCode int, data, meta any) error {
	return c.JSON(statusCode, SuccessResponse{Status: statusOK, Data: data, Meta: meta})
}

// Error returns an error response with a plain message.
func Error(c echo.Context, statusCode int, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{Status: statusError, Error: message, Details: details})
}

// Unauthorized returns a 401 carrying a machine readable code.
func Unauthorized(c echo.Context, code, description string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Status: statusError,
		Error:  AuthErrorInfo{Code: code, Description: description},
	})
}

// AppError renders err according to its HTTP code. Details are kept for 4xx
// responses only.
func AppError(c echo.Context, err domainerrors.AppError) error {
	status := err.HTTPCode()
	if status == http.StatusUnauthorized {
		return Unauthorized(c, err.ErrorCode(), err.Message())
	}

	details := err.Details()
	if status >= http.StatusInternalServerError {
		details = ""
	}

	return Error(c, status, err.Message(), details)
}
