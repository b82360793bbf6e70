package service

import (
	"context"
	"crypto/rsa"

	"github.com/golang-jwt/jwt/v5"
)

// JSONWebKey is a single public key of a JWKS document.
type JSONWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JSONWebKeySet is the key set published by the identity provider.
type JSONWebKeySet struct {
	Keys []JSONWebKey `json:"keys"`
}

// JWKSFetcher downloads the identity provider's current key set.
type JWKSFetcher interface {
	FetchJWKS(ctx context.Context) (*JSONWebKeySet, error)
}

// KeySetCache resolves signing keys by key id, refreshing the key set once its TTL has elapsed.
type KeySetCache interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
	// Invalidate drops the cached key set so the next lookup fetches it again.
	Invalidate()
}

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier interface {
	// Verify checks signature, audience, issuer and expiry and returns the decoded payload.
	Verify(ctx context.Context, token string) (jwt.MapClaims, error)
}

// ClientSecretService derives and checks service account client secrets.
type ClientSecretService interface {
	Generate(clientID string) string
	Verify(clientID, secret string) bool
}
