// Package firebase implements the identity provider contract on top of
// Firebase Authentication: the admin SDK for user management and the
// identity toolkit / secure token REST APIs for sign-in.
package firebase

import (
	"context"
	"log/slog"
	"net/http"

	"indieneer/config"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// adminClient is the subset of *auth.Client used here.
type adminClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]any) error
	CustomTokenWithClaims(ctx context.Context, uid string, devClaims map[string]any) (string, error)
}

// Client talks to Firebase Authentication.
type Client struct {
	admin   adminClient
	rest    *restClient
	jwksURL string
	logger  *slog.Logger
}

var (
	_ service.IdentityProvider = (*Client)(nil)
	_ service.JWKSFetcher      = (*Client)(nil)
)

// New initializes the Firebase app from the inline service account JSON or a credentials file.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	fb := cfg.Firebase
	if fb == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	switch {
	case fb.ServiceAccount != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(fb.ServiceAccount)))
	case fb.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(fb.CredentialsPath))
	}

	ctx := context.Background()

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: fb.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	httpClient := &http.Client{Timeout: fb.HTTPTimeout}

	return newClient(authClient, newRESTClient(httpClient, fb.APIKey, fb.IdentityToolkitURL, fb.SecureTokenURL), fb.JWKSURL, logger), nil
}

func newClient(admin adminClient, rest *restClient, jwksURL string, logger *slog.Logger) *Client {
	return &Client{
		admin:   admin,
		rest:    rest,
		jwksURL: jwksURL,
		logger:  logger,
	}
}

// NewIdentityProvider exposes the client as the domain contract.
func NewIdentityProvider(c *Client) service.IdentityProvider {
	return c
}

// NewJWKSFetcher exposes the client as the key set source of the token verifier.
func NewJWKSFetcher(c *Client) service.JWKSFetcher {
	return c
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*service.SignInResult, error) {
	return c.rest.signInWithPassword(ctx, email, password)
}

func (c *Client) SignInWithCustomToken(ctx context.Context, customToken string) (*service.SignInResult, error) {
	return c.rest.signInWithCustomToken(ctx, customToken)
}

func (c *Client) ExchangeRefreshToken(ctx context.Context, refreshToken string) (*service.RefreshResult, error) {
	if refreshToken == "" {
		return nil, service.ErrMissingRefreshToken
	}

	return c.rest.exchangeRefreshToken(ctx, refreshToken)
}

func (c *Client) FetchJWKS(ctx context.Context) (*service.JSONWebKeySet, error) {
	if c.jwksURL == "" {
		return nil, errors.New("jwks url is not configured")
	}

	return c.rest.fetchJWKS(ctx, c.jwksURL)
}

func (c *Client) CreateUser(ctx context.Context, params service.CreateUserParams) (*service.IdPUser, error) {
	user := (&auth.UserToCreate{}).
		UID(params.UID).
		Email(params.Email).
		Password(params.Password).
		EmailVerified(params.EmailVerified)
	if params.DisplayName != "" {
		user = user.DisplayName(params.DisplayName)
	}
	if params.PhotoURL != "" {
		user = user.PhotoURL(params.PhotoURL)
	}

	record, err := c.admin.CreateUser(ctx, user)
	if err != nil {
		return nil, mapAdminError(err, "failed to create user")
	}

	return toIdPUser(record), nil
}

func (c *Client) GetUser(ctx context.Context, uid string) (*service.IdPUser, error) {
	record, err := c.admin.GetUser(ctx, uid)
	if err != nil {
		return nil, mapAdminError(err, "failed to get user")
	}

	return toIdPUser(record), nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*service.IdPUser, error) {
	record, err := c.admin.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, mapAdminError(err, "failed to get user by email")
	}

	return toIdPUser(record), nil
}

func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	if err := c.admin.DeleteUser(ctx, uid); err != nil {
		return mapAdminError(err, "failed to delete user")
	}

	return nil
}

func (c *Client) SetCustomUserClaims(ctx context.Context, uid string, claims map[string]any) error {
	if err := c.admin.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return mapAdminError(err, "failed to set custom claims")
	}

	return nil
}

func (c *Client) CustomToken(ctx context.Context, uid string, claims map[string]any) (string, error) {
	token, err := c.admin.CustomTokenWithClaims(ctx, uid, claims)
	if err != nil {
		return "", mapAdminError(err, "failed to mint custom token")
	}

	return token, nil
}

func mapAdminError(err error, message string) error {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return service.ErrEmailAlreadyExists
	case auth.IsUserNotFound(err):
		return service.ErrUserNotFound
	default:
		return errors.Wrap(err, message)
	}
}

func toIdPUser(record *auth.UserRecord) *service.IdPUser {
	if record == nil || record.UserInfo == nil {
		return nil
	}

	return &service.IdPUser{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		PhotoURL:      record.PhotoURL,
		EmailVerified: record.EmailVerified,
		Disabled:      record.Disabled,
		CustomClaims:  record.CustomClaims,
	}
}
