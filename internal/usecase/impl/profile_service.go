package impl

import (
	"context"
	"log/slog"

	"indieneer/config"
	deliverycontext "indieneer/internal/delivery/context"
	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"
	"indieneer/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// Custom claim names written under the configured namespace.
const (
	claimProfileID   = "profile_id"
	claimRoles       = "roles"
	claimPermissions = "permissions"
)

// accountOutcome is the result of reserving the identity provider account during Create.
type accountOutcome int

const (
	// accountCreated: a fresh IdP user was created with the generated uid.
	accountCreated accountOutcome = iota
	// accountAdopted: an earlier attempt left an IdP user without claims; its uid is reused.
	accountAdopted
	// accountComplete: the IdP user already carries a profile id, so the email is genuinely taken.
	accountComplete
)

type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	serviceRepo repository.ServiceProfileRepository
	idp         service.IdentityProvider
	secrets     service.ClientSecretService
	firebase    *config.FirebaseConfig
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	ServiceRepo repository.ServiceProfileRepository
	IdP         service.IdentityProvider
	Secrets     service.ClientSecretService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		serviceRepo: params.ServiceRepo,
		idp:         params.IdP,
		secrets:     params.Secrets,
		firebase:    params.Config.Firebase,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) Create(ctx context.Context, input usecase.CreateProfileInput) (*entity.Profile, error) {
	role := input.Role.Normalize()
	if role == "" {
		role = entity.RoleUser
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.Nickname
	}
	photoURL := input.PhotoURL
	if photoURL == "" {
		photoURL = entity.DefaultPhotoURL(displayName)
	}

	uid, outcome, err := srv.reserveAccount(ctx, primitive.NewObjectID(), service.CreateUserParams{
		Email:         input.Email,
		Password:      input.Password,
		DisplayName:   displayName,
		PhotoURL:      photoURL,
		EmailVerified: input.EmailVerified,
	})
	if err != nil {
		return nil, err
	}
	if outcome == accountComplete {
		return nil, domainerrors.ErrEmailAlreadyExists
	}

	profile, err := srv.storeProfile(ctx, &entity.Profile{
		ID:          uid,
		Email:       input.Email,
		Nickname:    input.Nickname,
		DisplayName: displayName,
		PhotoURL:    photoURL,
		IdPID:       uid.Hex(),
		Roles:       entity.Roles{},
	})
	if err != nil {
		return nil, err
	}

	claims := map[string]any{
		srv.firebase.ClaimKey(claimProfileID):   profile.ID.Hex(),
		srv.firebase.ClaimKey(claimRoles):       []string{role.String()},
		srv.firebase.ClaimKey(claimPermissions): []string{},
	}
	if err := srv.idp.SetCustomUserClaims(ctx, profile.IdPID, claims); err != nil {
		srv.log(ctx).Error("Failed to set custom claims; a retried create will complete the account",
			slog.String("profile_id", profile.ID.Hex()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to set custom claims")
	}

	srv.log(ctx).Info("Profile created", slog.String("profile_id", profile.ID.Hex()), slog.Int("outcome", int(outcome)))

	return profile, nil
}

// reserveAccount creates the IdP user under uid, or resolves an existing user with the same email.
func (srv *profileService) reserveAccount(ctx context.Context, uid primitive.ObjectID, params service.CreateUserParams) (primitive.ObjectID, accountOutcome, error) {
	params.UID = uid.Hex()

	_, err := srv.idp.CreateUser(ctx, params)
	if err == nil {
		return uid, accountCreated, nil
	}
	if !errors.Is(err, service.ErrEmailAlreadyExists) {
		return primitive.NilObjectID, 0, errors.Wrap(err, "failed to create identity provider user")
	}

	existing, err := srv.idp.GetUserByEmail(ctx, params.Email)
	if err != nil {
		return primitive.NilObjectID, 0, errors.Wrap(err, "failed to load existing identity provider user")
	}

	if _, ok := existing.CustomClaims[srv.firebase.ClaimKey(claimProfileID)]; ok {
		return primitive.NilObjectID, accountComplete, nil
	}

	adopted, err := primitive.ObjectIDFromHex(existing.UID)
	if err != nil {
		return primitive.NilObjectID, 0, errors.Wrapf(err, "identity provider user %q is not a profile account", existing.UID)
	}

	srv.log(ctx).Warn("Resuming profile creation for existing identity provider user", slog.String("uid", existing.UID))

	return adopted, accountAdopted, nil
}

// storeProfile inserts the profile, or returns the one stored by an earlier attempt.
func (srv *profileService) storeProfile(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	err := srv.profileRepo.Create(ctx, profile)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return nil, errors.Wrap(err, "failed to insert profile")
	}

	existing, err := srv.profileRepo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load existing profile")
	}
	if existing.ID != profile.ID {
		return nil, domainerrors.ErrConflict.WithDetails("profile is linked to another identity")
	}

	return existing, nil
}

func (srv *profileService) Get(ctx context.Context, id string) (*entity.Profile, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrProfileNotFound, "failed to get profile")
	}

	return profile, nil
}

func (srv *profileService) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrProfileNotFound, "failed to find profile by email")
	}

	return profile, nil
}

func (srv *profileService) List(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

func (srv *profileService) Update(ctx context.Context, id string, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := repository.ProfileUpdate{
		Nickname:    input.Nickname,
		DisplayName: input.DisplayName,
		PhotoURL:    input.PhotoURL,
	}
	if update.IsEmpty() {
		return srv.Get(ctx, id)
	}

	profile, err := srv.profileRepo.Update(ctx, oid, update)
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrProfileNotFound, "failed to update profile")
	}

	return profile, nil
}

func (srv *profileService) Delete(ctx context.Context, id string) (*entity.Profile, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var deleted *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().Delete(ctx, oid)
		if err != nil {
			return notFoundAs(err, domainerrors.ErrProfileNotFound, "failed to delete profile")
		}

		if err := srv.idp.DeleteUser(ctx, profile.IdPID); err != nil {
			if !errors.Is(err, service.ErrUserNotFound) {
				return errors.Wrap(err, "failed to delete identity provider user")
			}
			srv.log(ctx).Warn("Identity provider user already gone", slog.String("uid", profile.IdPID))
		}

		deleted = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile deleted", slog.String("profile_id", id))

	return deleted, nil
}

func (srv *profileService) SetRoles(ctx context.Context, id string, roles entity.Roles) (*entity.Profile, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	normalized := make(entity.Roles, 0, len(roles))
	for _, role := range roles {
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + role.String())
		}
		if !normalized.Contains(role) {
			normalized = append(normalized, role.Normalize())
		}
	}

	profile, err := srv.profileRepo.Update(ctx, oid, repository.ProfileUpdate{Roles: &normalized})
	if err != nil {
		return nil, notFoundAs(err, domainerrors.ErrProfileNotFound, "failed to update roles")
	}

	user, err := srv.idp.GetUser(ctx, profile.IdPID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load identity provider user")
	}

	claims := make(map[string]any, len(user.CustomClaims)+3)
	for k, v := range user.CustomClaims {
		claims[k] = v
	}
	claims[srv.firebase.ClaimKey(claimProfileID)] = profile.ID.Hex()
	claims[srv.firebase.ClaimKey(claimRoles)] = normalized.ToStrings()
	if _, ok := claims[srv.firebase.ClaimKey(claimPermissions)]; !ok {
		claims[srv.firebase.ClaimKey(claimPermissions)] = []string{}
	}

	if err := srv.idp.SetCustomUserClaims(ctx, profile.IdPID, claims); err != nil {
		return nil, errors.Wrap(err, "failed to write roles to custom claims")
	}

	return profile, nil
}

func (srv *profileService) CreateServiceProfile(ctx context.Context, input usecase.CreateServiceProfileInput) (*usecase.ServiceProfileOutput, error) {
	id := primitive.NewObjectID()
	clientID := id.Hex()
	secret := srv.secrets.Generate(clientID)

	permissions := input.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	profile := &entity.ServiceProfile{
		ID:           id,
		IdPID:        entity.ServiceIdPID(id),
		ClientID:     clientID,
		ClientSecret: secret,
		Permissions:  permissions,
	}
	if err := srv.serviceRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create service profile")
	}

	srv.log(ctx).Info("Service profile created", slog.String("client_id", clientID))

	return &usecase.ServiceProfileOutput{Profile: profile, ClientSecret: secret}, nil
}
