package errors

import (
	"net/http"

	"indieneer/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors of the same kind regardless of their details, so that
// errors.Is(err.WithDetails("..."), ErrNotFound) holds.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == t.httpCode && e.errorCode == t.errorCode
}

// Authentication errors. The error code is machine readable and rendered as-is.
const (
	CodeAuthorizationHeaderMissing = "authorization_header_missing"
	CodeInvalidHeader              = "invalid_header"
	CodeTokenExpired               = "token_expired"
	CodeInvalidClaims              = "invalid_claims"
)

// NewAuthError creates a 401 error carrying a machine readable code and a description.
func NewAuthError(code, description string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, code, description, "")
}

// Predefined error types
var (
	ErrAuthorizationHeaderMissing = NewAuthError(CodeAuthorizationHeaderMissing, "Authorization header is expected")

	ErrInvalidHeader = NewAuthError(CodeInvalidHeader, "Authorization header must be of the form 'Bearer <token>'")

	ErrTokenExpired = NewAuthError(CodeTokenExpired, "token is expired")

	ErrInvalidClaims = NewAuthError(CodeInvalidClaims, "incorrect claims, please check the audience and issuer")

	ErrUnableToFindKey = NewAuthError(CodeInvalidHeader, "unable to find key")

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid login credentials",
		"",
	)

	ErrIncorrectClientCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CLIENT_CREDENTIALS",
		"incorrect client id or secret",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid refresh token",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"Refresh token expired",
		"",
	)

	ErrUserDisabled = NewBaseError(
		http.StatusUnauthorized,
		"USER_DISABLED",
		"User account is disabled",
		"",
	)

	ErrRefreshTokenMissing = NewBaseError(
		http.StatusBadRequest,
		"REFRESH_TOKEN_MISSING",
		"Refresh token is required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"no permission",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrBadRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Bad request",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid identifier",
		"",
	)

	ErrUnsupportedStatus = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_STATUS",
		"Unsupported status",
		"",
	)

	ErrUnsupportedEventType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_EVENT_TYPE",
		"Unsupported event type",
		"",
	)

	ErrUnsupportedJobType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_JOB_TYPE",
		"Unsupported job type",
		"",
	)

	ErrInvalidMetadata = NewBaseError(
		http.StatusBadRequest,
		"INVALID_METADATA",
		"Invalid metadata",
		"",
	)

	ErrUnprocessableEntity = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNPROCESSABLE_ENTITY",
		"Unprocessable entity",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS",
		"The user with the provided email already exists",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInsertionFailed = NewBaseError(
		http.StatusInternalServerError,
		"INSERTION_FAILED",
		"insertion failed",
		"",
	)

	ErrTransactionAborted = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_ABORTED",
		"Transaction aborted",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Rate limit exceeded",
		"",
	)

	ErrIdentityProvider = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_ERROR",
		"Identity provider request failed",
		"",
	)
)
