package firebase

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"indieneer/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	rest := newRESTClient(server.Client(), "api-key", server.URL+"/v1", server.URL+"/securetoken/v1")

	return newClient(nil, rest, server.URL+"/jwks", slog.Default())
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": status, "message": message},
	})
}

func TestSignIn_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "api-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.co", body["email"])
		assert.Equal(t, "P@ss!", body["password"])
		assert.Equal(t, true, body["returnSecureToken"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"idToken":      "id-token",
			"refreshToken": "refresh-token",
			"localId":      "65f1c0ffee0000000000beef",
			"expiresIn":    "3600",
			"email":        "a@b.co",
			"registered":   true,
		})
	})

	result, err := client.SignIn(context.Background(), "a@b.co", "P@ss!")
	require.NoError(t, err)
	assert.Equal(t, &service.SignInResult{
		IDToken:      "id-token",
		RefreshToken: "refresh-token",
		LocalID:      "65f1c0ffee0000000000beef",
		ExpiresIn:    "3600",
		Email:        "a@b.co",
		Registered:   true,
	}, result)
}

func TestSignIn_ErrorMapping(t *testing.T) {
	tests := []struct {
		message string
		want    error
	}{
		{message: "INVALID_LOGIN_CREDENTIALS", want: service.ErrInvalidLoginCredentials},
		{message: "TOKEN_EXPIRED", want: service.ErrTokenExpired},
		{message: "USER_DISABLED", want: service.ErrUserDisabled},
		{message: "USER_NOT_FOUND", want: service.ErrUserNotFound},
		{message: "INVALID_REFRESH_TOKEN", want: service.ErrInvalidRefreshToken},
		{message: "INVALID_GRANT_TYPE", want: service.ErrInvalidGrantType},
		{message: "MISSING_REFRESH_TOKEN", want: service.ErrMissingRefreshToken},
		{message: "TOKEN_EXPIRED : The user's credential is no longer valid.", want: service.ErrTokenExpired},
		{message: "QUOTA_EXCEEDED", want: service.ErrorDecode},
		{message: "", want: service.ErrorDecode},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeError(w, http.StatusBadRequest, tt.message)
			})

			_, err := client.SignIn(context.Background(), "a@b.co", "wrong")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignIn_UndecodableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := client.SignIn(context.Background(), "a@b.co", "P@ss!")
	assert.ErrorIs(t, err, service.ErrorDecode)
}

func TestExchangeRefreshToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/securetoken/v1/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))

		if r.PostForm.Get("refresh_token") != "good" {
			writeError(w, http.StatusBadRequest, "INVALID_REFRESH_TOKEN")

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id_token":      "new-id",
			"refresh_token": "new-refresh",
			"expires_in":    "3600",
			"user_id":       "uid-1",
		})
	})

	result, err := client.ExchangeRefreshToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "new-id", result.IDToken)
	assert.Equal(t, "new-refresh", result.RefreshToken)
	assert.Equal(t, "uid-1", result.UserID)

	_, err = client.ExchangeRefreshToken(context.Background(), "bad")
	assert.ErrorIs(t, err, service.ErrInvalidRefreshToken)

	_, err = client.ExchangeRefreshToken(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrMissingRefreshToken)
}

func TestSignInWithCustomToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithCustomToken", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "custom", body["token"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"idToken":      "id-token",
			"refreshToken": "refresh-token",
			"expiresIn":    "3600",
		})
	})

	result, err := client.SignInWithCustomToken(context.Background(), "custom")
	require.NoError(t, err)
	assert.Equal(t, "id-token", result.IDToken)
}

func TestFetchJWKS(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jwks", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]any{{"kid": "k1", "kty": "RSA", "alg": "RS256", "n": "AQAB", "e": "AQAB"}},
		})
	})

	set, err := client.FetchJWKS(context.Background())
	require.NoError(t, err)
	require.Len(t, set.Keys, 1)
	assert.Equal(t, "k1", set.Keys[0].Kid)
}
