// Package service declares the outbound services the use cases depend on.
package service

import (
	"context"
	"errors"
)

// Identity provider error kinds. Implementations map provider specific codes onto these.
var (
	ErrInvalidLoginCredentials = errors.New("INVALID_LOGIN_CREDENTIALS")
	ErrInvalidRefreshToken     = errors.New("INVALID_REFRESH_TOKEN")
	ErrInvalidGrantType        = errors.New("INVALID_GRANT_TYPE")
	ErrTokenExpired            = errors.New("TOKEN_EXPIRED")
	ErrUserDisabled            = errors.New("USER_DISABLED")
	ErrMissingRefreshToken     = errors.New("MISSING_REFRESH_TOKEN")
	ErrUserNotFound            = errors.New("USER_NOT_FOUND")
	ErrEmailAlreadyExists      = errors.New("EMAIL_EXISTS")

	// ErrorDecode is returned for error bodies whose code is not recognised.
	ErrorDecode = errors.New("identity provider returned an unknown error")
)

// SignInResult is the identity envelope returned by password and custom-token sign-in.
type SignInResult struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	LocalID      string `json:"local_id"`
	ExpiresIn    string `json:"expires_in"`
	Email        string `json:"email,omitempty"`
	Registered   bool   `json:"registered"`
}

// RefreshResult is returned by the refresh-token exchange.
type RefreshResult struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	UserID       string `json:"user_id"`
}

// CreateUserParams describes a user to create in the identity provider.
type CreateUserParams struct {
	UID           string
	Email         string
	Password      string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
}

// IdPUser is a user record held by the identity provider.
type IdPUser struct {
	UID           string
	Email         string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	Disabled      bool
	CustomClaims  map[string]any
}

// IdentityProvider is the contract with the external identity provider.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	ExchangeRefreshToken(ctx context.Context, refreshToken string) (*RefreshResult, error)

	// SignInWithCustomToken exchanges a token minted by CustomToken for an id token.
	SignInWithCustomToken(ctx context.Context, customToken string) (*SignInResult, error)

	CreateUser(ctx context.Context, params CreateUserParams) (*IdPUser, error)
	GetUser(ctx context.Context, uid string) (*IdPUser, error)
	GetUserByEmail(ctx context.Context, email string) (*IdPUser, error)
	DeleteUser(ctx context.Context, uid string) error
	SetCustomUserClaims(ctx context.Context, uid string, claims map[string]any) error
	CustomToken(ctx context.Context, uid string, claims map[string]any) (string, error)
}
