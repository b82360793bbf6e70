package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"indieneer/internal/domain/service"
	"indieneer/internal/errors"
)

// restClient calls the identity toolkit and secure token REST APIs.
type restClient struct {
	http           *http.Client
	apiKey         string
	toolkitURL     string
	secureTokenURL string
}

func newRESTClient(httpClient *http.Client, apiKey, toolkitURL, secureTokenURL string) *restClient {
	return &restClient{
		http:           httpClient,
		apiKey:         apiKey,
		toolkitURL:     strings.TrimRight(toolkitURL, "/"),
		secureTokenURL: strings.TrimRight(secureTokenURL, "/"),
	}
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	ExpiresIn    string `json:"expiresIn"`
	Email        string `json:"email"`
	Registered   bool   `json:"registered"`
}

func (r signInResponse) toResult() *service.SignInResult {
	return &service.SignInResult{
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
		LocalID:      r.LocalID,
		ExpiresIn:    r.ExpiresIn,
		Email:        r.Email,
		Registered:   r.Registered,
	}
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	UserID       string `json:"user_id"`
}

// errorResponse is the error body shared by both APIs.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var errorCodes = map[string]error{
	"INVALID_LOGIN_CREDENTIALS": service.ErrInvalidLoginCredentials,
	"EMAIL_NOT_FOUND":           service.ErrInvalidLoginCredentials,
	"INVALID_PASSWORD":          service.ErrInvalidLoginCredentials,
	"TOKEN_EXPIRED":             service.ErrTokenExpired,
	"USER_DISABLED":             service.ErrUserDisabled,
	"USER_NOT_FOUND":            service.ErrUserNotFound,
	"INVALID_REFRESH_TOKEN":     service.ErrInvalidRefreshToken,
	"INVALID_GRANT_TYPE":        service.ErrInvalidGrantType,
	"MISSING_REFRESH_TOKEN":     service.ErrMissingRefreshToken,
}

func (c *restClient) signInWithPassword(ctx context.Context, email, password string) (*service.SignInResult, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp signInResponse
	if err := c.postJSON(ctx, c.toolkitURL+"/accounts:signInWithPassword", body, &resp); err != nil {
		return nil, err
	}

	return resp.toResult(), nil
}

func (c *restClient) signInWithCustomToken(ctx context.Context, token string) (*service.SignInResult, error) {
	body := map[string]any{
		"token":             token,
		"returnSecureToken": true,
	}

	var resp signInResponse
	if err := c.postJSON(ctx, c.toolkitURL+"/accounts:signInWithCustomToken", body, &resp); err != nil {
		return nil, err
	}

	return resp.toResult(), nil
}

func (c *restClient) exchangeRefreshToken(ctx context.Context, refreshToken string) (*service.RefreshResult, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.withKey(c.secureTokenURL+"/token"), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refresh request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp refreshResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	return &service.RefreshResult{
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		UserID:       resp.UserID,
	}, nil
}

func (c *restClient) fetchJWKS(ctx context.Context, jwksURL string) (*service.JSONWebKeySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jwksURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create JWKS request")
	}

	var set service.JSONWebKeySet
	if err := c.do(req, &set); err != nil {
		return nil, err
	}

	return &set, nil
}

func (c *restClient) postJSON(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.withKey(endpoint), bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *restClient) withKey(endpoint string) string {
	if c.apiKey == "" {
		return endpoint
	}

	return endpoint + "?key=" + url.QueryEscape(c.apiKey)
}

func (c *restClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

// decodeError maps an error body onto the service error kinds. The message may
// carry a detail suffix, e.g. "TOKEN_EXPIRED : ...".
func decodeError(status int, data []byte) error {
	var body errorResponse
	if err := json.Unmarshal(data, &body); err != nil || body.Error.Message == "" {
		return errors.Wrapf(service.ErrorDecode, "status %d", status)
	}

	code := body.Error.Message
	if idx := strings.IndexAny(code, " :"); idx > 0 {
		code = code[:idx]
	}

	if mapped, ok := errorCodes[code]; ok {
		return mapped
	}

	return errors.Wrapf(service.ErrorDecode, "status %d: %s", status, body.Error.Message)
}
