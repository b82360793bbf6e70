package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
	"indieneer/internal/domain/service"
)

// LoginOutput is the identity envelope of a password sign-in together with the linked profile.
type LoginOutput struct {
	Identity *service.SignInResult
	Profile  *entity.Profile
}

// LoginUsecase signs principals in through the identity provider.
type LoginUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*service.RefreshResult, error)

	// LoginM2M authenticates a service account by its client credentials.
	LoginM2M(ctx context.Context, clientID, clientSecret string) (*service.SignInResult, error)
}
