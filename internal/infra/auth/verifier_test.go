package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAudience = "indieneer-test"
	testIssuer   = "https://indieneer.eu.auth0.com/"
)

type stubFetcher struct {
	set   *service.JSONWebKeySet
	err   error
	calls atomic.Int32
}

func (f *stubFetcher) FetchJWKS(_ context.Context) (*service.JSONWebKeySet, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}

	return f.set, nil
}

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

func toJWK(kid string, key *rsa.PublicKey) service.JSONWebKey {
	return service.JSONWebKey{
		Kid: kid,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
	}
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}

	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()

	return jwt.MapClaims{
		"sub": "auth0|abc",
		"aud": testAudience,
		"iss": testIssuer,
		"iat": now.Add(-time.Minute).Unix(),
		"exp": now.Add(time.Hour).Unix(),
		"https://indieneer.com/roles": []string{"User"},
	}
}

func TestVerifier_Verify(t *testing.T) {
	key := newTestKey(t)
	fetcher := &stubFetcher{set: &service.JSONWebKeySet{Keys: []service.JSONWebKey{toJWK("k1", &key.PublicKey)}}}
	verifier := newVerifier(newKeySetCache(fetcher, time.Hour), testAudience, testIssuer)

	tests := []struct {
		name     string
		token    func() string
		wantCode string
		wantErr  error
	}{
		{
			name:  "valid token",
			token: func() string { return signToken(t, key, "k1", validClaims()) },
		},
		{
			name: "expired token",
			token: func() string {
				claims := validClaims()
				claims["exp"] = time.Now().Add(-time.Minute).Unix()

				return signToken(t, key, "k1", claims)
			},
			wantErr: domainerrors.ErrTokenExpired,
		},
		{
			name: "wrong audience",
			token: func() string {
				claims := validClaims()
				claims["aud"] = "someone-else"

				return signToken(t, key, "k1", claims)
			},
			wantErr: domainerrors.ErrInvalidClaims,
		},
		{
			name: "wrong issuer",
			token: func() string {
				claims := validClaims()
				claims["iss"] = "https://evil.example.com/"

				return signToken(t, key, "k1", claims)
			},
			wantErr: domainerrors.ErrInvalidClaims,
		},
		{
			name:    "unknown key id",
			token:   func() string { return signToken(t, key, "k2", validClaims()) },
			wantErr: domainerrors.ErrUnableToFindKey,
		},
		{
			name:    "missing key id",
			token:   func() string { return signToken(t, key, "", validClaims()) },
			wantErr: domainerrors.ErrUnableToFindKey,
		},
		{
			name:     "garbage",
			token:    func() string { return "not-a-jwt" },
			wantCode: domainerrors.CodeInvalidHeader,
		},
		{
			name: "signed by another key",
			token: func() string {
				return signToken(t, newTestKey(t), "k1", validClaims())
			},
			wantCode: domainerrors.CodeInvalidHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.Verify(context.Background(), tt.token())

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			case tt.wantCode != "":
				require.Error(t, err)
				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantCode, appErr.ErrorCode())
				assert.Equal(t, 401, appErr.HTTPCode())
			default:
				require.NoError(t, err)
				assert.Equal(t, "auth0|abc", claims["sub"])
			}
		})
	}

	assert.Equal(t, int32(1), fetcher.calls.Load(), "the key set is fetched once per TTL window")
}

func TestKeySetCache_RotationWithinTTL(t *testing.T) {
	oldKey := newTestKey(t)
	newKey := newTestKey(t)
	fetcher := &stubFetcher{set: &service.JSONWebKeySet{Keys: []service.JSONWebKey{toJWK("old", &oldKey.PublicKey)}}}
	ttl := 50 * time.Millisecond
	verifier := newVerifier(newKeySetCache(fetcher, ttl), testAudience, testIssuer)

	_, err := verifier.Verify(context.Background(), signToken(t, oldKey, "old", validClaims()))
	require.NoError(t, err)

	// The identity provider rotates its keys.
	fetcher.set = &service.JSONWebKeySet{Keys: []service.JSONWebKey{toJWK("new", &newKey.PublicKey)}}
	rotated := signToken(t, newKey, "new", validClaims())

	_, err = verifier.Verify(context.Background(), rotated)
	assert.ErrorIs(t, err, domainerrors.ErrUnableToFindKey, "stale key set is served until the TTL elapses")

	time.Sleep(2 * ttl)

	_, err = verifier.Verify(context.Background(), rotated)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestKeySetCache_Invalidate(t *testing.T) {
	key := newTestKey(t)
	fetcher := &stubFetcher{set: &service.JSONWebKeySet{Keys: []service.JSONWebKey{toJWK("k1", &key.PublicKey)}}}
	cache := newKeySetCache(fetcher, time.Hour)

	_, err := cache.Key(context.Background(), "k1")
	require.NoError(t, err)
	_, err = cache.Key(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), fetcher.calls.Load())

	cache.Invalidate()

	_, err = cache.Key(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestKeySetCache_FetchFailureIsNotCached(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("boom")}
	cache := newKeySetCache(fetcher, time.Hour)

	_, err := cache.Key(context.Background(), "k1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch JWKS")

	_, err = cache.Key(context.Background(), "k1")
	require.Error(t, err)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}
