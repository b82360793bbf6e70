// Package auth provides the bearer token verifier and the service account secret derivation.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"sync"
	"time"

	"indieneer/config"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"

	"github.com/patrickmn/go-cache"
)

const (
	jwksCacheKey = "jwks"
	defaultTTL   = time.Hour
)

// keySetCache keeps the identity provider's JWKS for one TTL window.
// A stale key set is tolerated until the window elapses.
type keySetCache struct {
	fetcher service.JWKSFetcher
	store   *cache.Cache

	// mu collapses concurrent refreshes into a single fetch.
	mu sync.Mutex
}

// NewKeySetCache creates the process wide JWKS cache.
func NewKeySetCache(cfg *config.Config, fetcher service.JWKSFetcher) service.KeySetCache {
	ttl := defaultTTL
	if cfg.Firebase != nil && cfg.Firebase.JWKSTTL > 0 {
		ttl = cfg.Firebase.JWKSTTL
	}

	return newKeySetCache(fetcher, ttl)
}

func newKeySetCache(fetcher service.JWKSFetcher, ttl time.Duration) *keySetCache {
	return &keySetCache{
		fetcher: fetcher,
		store:   cache.New(ttl, 2*ttl),
	}
}

// Key returns the RSA public key published under kid.
func (c *keySetCache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, err := c.keys(ctx)
	if err != nil {
		return nil, err
	}

	key, ok := keys[kid]
	if !ok {
		return nil, domainerrors.ErrUnableToFindKey
	}

	return key, nil
}

// Invalidate drops the cached key set.
func (c *keySetCache) Invalidate() {
	c.store.Delete(jwksCacheKey)
}

func (c *keySetCache) keys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	if cached, ok := c.store.Get(jwksCacheKey); ok {
		return cached.(map[string]*rsa.PublicKey), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.store.Get(jwksCacheKey); ok {
		return cached.(map[string]*rsa.PublicKey), nil
	}

	set, err := c.fetcher.FetchJWKS(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch JWKS")
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, jwk := range set.Keys {
		if jwk.Kty != "RSA" || jwk.Kid == "" {
			continue
		}

		key, err := parseRSAPublicKey(jwk)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid JWK %q", jwk.Kid)
		}
		keys[jwk.Kid] = key
	}

	c.store.Set(jwksCacheKey, keys, cache.DefaultExpiration)

	return keys, nil
}

func parseRSAPublicKey(jwk service.JSONWebKey) (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(jwk.N)
	if err != nil {
		return nil, errors.Wrap(err, "decode modulus")
	}

	e, err := base64.RawURLEncoding.DecodeString(jwk.E)
	if err != nil {
		return nil, errors.Wrap(err, "decode exponent")
	}

	exponent := new(big.Int).SetBytes(e)
	if !exponent.IsInt64() || exponent.Int64() <= 1 {
		return nil, errors.New("exponent out of range")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(exponent.Int64()),
	}, nil
}
