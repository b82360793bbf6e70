package auth

import (
	"context"

	"indieneer/config"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const signingAlgorithm = "RS256"

// Verifier validates RS256 bearer tokens against the identity provider's JWKS.
type Verifier struct {
	keys   service.KeySetCache
	parser *jwt.Parser
}

// NewVerifier builds a verifier bound to the configured audience and issuer.
func NewVerifier(cfg *config.Config, keys service.KeySetCache) (service.TokenVerifier, error) {
	fb := cfg.Firebase
	if fb == nil || fb.Audience == "" || fb.Issuer == "" {
		return nil, errors.New("firebase audience and issuer must be configured")
	}

	return newVerifier(keys, fb.Audience, fb.Issuer), nil
}

func newVerifier(keys service.KeySetCache, audience, issuer string) *Verifier {
	return &Verifier{
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{signingAlgorithm}),
			jwt.WithAudience(audience),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}
}

// Verify checks the token and returns its payload.
func (v *Verifier) Verify(ctx context.Context, raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	_, err := v.parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, domainerrors.ErrUnableToFindKey
		}

		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return nil, mapVerifyError(err)
	}

	return claims, nil
}

func mapVerifyError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return domainerrors.ErrInvalidClaims
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return domainerrors.NewAuthError(domainerrors.CodeInvalidHeader, "Unable to verify authentication token.")
	default:
		return domainerrors.NewAuthError(domainerrors.CodeInvalidHeader, "Unable to parse authentication token.")
	}
}
