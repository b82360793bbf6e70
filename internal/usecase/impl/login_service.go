package impl

import (
	"context"
	"log/slog"

	"indieneer/config"
	deliverycontext "indieneer/internal/delivery/context"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

type loginService struct {
	idp          service.IdentityProvider
	verifier     service.TokenVerifier
	secrets      service.ClientSecretService
	profileRepo  repository.ProfileRepository
	serviceRepo  repository.ServiceProfileRepository
	firebase     *config.FirebaseConfig
	verifySignIn bool
	logger       *slog.Logger
}

// LoginServiceParams holds dependencies for LoginService, injected by Fx.
type LoginServiceParams struct {
	fx.In

	IdP         service.IdentityProvider
	Verifier    service.TokenVerifier
	Secrets     service.ClientSecretService
	ProfileRepo repository.ProfileRepository
	ServiceRepo repository.ServiceProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewLoginService is the constructor for loginService.
func NewLoginService(params LoginServiceParams) usecase.LoginUsecase {
	return &loginService{
		idp:          params.IdP,
		verifier:     params.Verifier,
		secrets:      params.Secrets,
		profileRepo:  params.ProfileRepo,
		serviceRepo:  params.ServiceRepo,
		firebase:     params.Config.Firebase,
		verifySignIn: params.Config.Firebase.VerifySignIn,
		logger:       params.Logger,
	}
}

func (srv *loginService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *loginService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	identity, err := srv.idp.SignIn(ctx, email, password)
	if err != nil {
		srv.log(ctx).Warn("Sign-in rejected", slog.String("email", email), slog.Any("error", err))

		return nil, mapSignInError(err)
	}

	claims, err := srv.identityClaims(ctx, identity.IDToken)
	if err != nil {
		return nil, err
	}

	profileID, _ := claims[srv.firebase.ClaimKey(claimProfileID)].(string)
	oid, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, domainerrors.ErrProfileNotFound
	}

	profile, err := srv.profileRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrProfileNotFound, "failed to load profile")
	}

	return &usecase.LoginOutput{Identity: identity, Profile: profile}, nil
}

// identityClaims verifies the freshly issued id token, or only decodes it when verification is disabled.
func (srv *loginService) identityClaims(ctx context.Context, idToken string) (jwt.MapClaims, error) {
	if srv.verifySignIn {
		claims, err := srv.verifier.Verify(ctx, idToken)
		if err != nil {
			return nil, err
		}

		return claims, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, errors.Wrap(err, "failed to decode id token")
	}

	return claims, nil
}

func (srv *loginService) Refresh(ctx context.Context, refreshToken string) (*service.RefreshResult, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrRefreshTokenMissing
	}

	result, err := srv.idp.ExchangeRefreshToken(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token exchange rejected", slog.Any("error", err))

		return nil, mapRefreshError(err)
	}

	return result, nil
}

func (srv *loginService) LoginM2M(ctx context.Context, clientID, clientSecret string) (*service.SignInResult, error) {
	profile, err := srv.serviceRepo.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrIncorrectClientCredentials
		}

		return nil, errors.Wrap(err, "failed to load service profile")
	}

	if !srv.secrets.Verify(clientID, clientSecret) {
		srv.log(ctx).Warn("Client secret mismatch", slog.String("client_id", clientID))

		return nil, domainerrors.ErrIncorrectClientCredentials
	}

	customToken, err := srv.idp.CustomToken(ctx, profile.IdPID, map[string]any{
		srv.firebase.ClaimKey(claimPermissions): profile.Permissions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint custom token")
	}

	identity, err := srv.idp.SignInWithCustomToken(ctx, customToken)
	if err != nil {
		return nil, mapSignInError(err)
	}
	if identity.LocalID == "" {
		identity.LocalID = profile.IdPID
	}

	return identity, nil
}

func mapSignInError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidLoginCredentials), errors.Is(err, service.ErrUserNotFound):
		return domainerrors.ErrInvalidCredentials
	case errors.Is(err, service.ErrUserDisabled):
		return domainerrors.ErrUserDisabled
	case errors.Is(err, service.ErrorDecode):
		return domainerrors.ErrIdentityProvider.WithDetails(err.Error())
	default:
		return errors.Wrap(err, "sign-in failed")
	}
}

func mapRefreshError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidRefreshToken), errors.Is(err, service.ErrUserNotFound):
		return domainerrors.ErrRefreshTokenInvalid
	case errors.Is(err, service.ErrTokenExpired):
		return domainerrors.ErrRefreshTokenExpired
	case errors.Is(err, service.ErrUserDisabled):
		return domainerrors.ErrUserDisabled
	case errors.Is(err, service.ErrMissingRefreshToken):
		return domainerrors.ErrRefreshTokenMissing
	case errors.Is(err, service.ErrInvalidGrantType):
		return domainerrors.ErrBadRequest.WithDetails("invalid grant type")
	case errors.Is(err, service.ErrorDecode):
		return domainerrors.ErrIdentityProvider.WithDetails(err.Error())
	default:
		return errors.Wrap(err, "refresh token exchange failed")
	}
}
