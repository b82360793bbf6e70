package impl

import (
	"context"
	"testing"

	"indieneer/internal/domain/entity"
	domainerrors "indieneer/internal/domain/errors"
	"indieneer/internal/domain/repository"
	"indieneer/internal/domain/service"
	mockRepo "indieneer/internal/mocks/repository"
	mockSvc "indieneer/internal/mocks/service"
	"indieneer/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	serviceRepo *mockRepo.MockServiceProfileRepository
	idp         *mockSvc.MockIdentityProvider
	secrets     *mockSvc.MockClientSecretService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		serviceRepo: mockRepo.NewMockServiceProfileRepository(t),
		idp:         mockSvc.NewMockIdentityProvider(t),
		secrets:     mockSvc.NewMockClientSecretService(t),
	}

	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:   fx.txManager,
		ProfileRepo: fx.profileRepo,
		ServiceRepo: fx.serviceRepo,
		IdP:         fx.idp,
		Secrets:     fx.secrets,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func createProfileInput() usecase.CreateProfileInput {
	return usecase.CreateProfileInput{
		Email:    "dev@indieneer.test",
		Password: "s3cret-pass",
		Nickname: "dev",
	}
}

func TestProfileService_Create_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := createProfileInput()

	var uid string
	fx.idp.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("service.CreateUserParams")).
		RunAndReturn(func(_ context.Context, params service.CreateUserParams) (*service.IdPUser, error) {
			uid = params.UID
			assert.Equal(t, "dev", params.DisplayName)
			assert.Equal(t, entity.DefaultPhotoURL("dev"), params.PhotoURL)

			return &service.IdPUser{UID: params.UID, Email: params.Email}, nil
		})
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, uid, profile.ID.Hex())
			assert.Equal(t, uid, profile.IdPID)
			assert.Empty(t, profile.Roles)
		}).
		Return(nil)
	fx.idp.EXPECT().
		SetCustomUserClaims(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("map[string]interface {}")).
		Run(func(_ context.Context, claimUID string, claims map[string]any) {
			assert.Equal(t, uid, claimUID)
			assert.Equal(t, uid, claims[claimKey(claimProfileID)])
			assert.Equal(t, []string{"User"}, claims[claimKey(claimRoles)])
			assert.Equal(t, []string{}, claims[claimKey(claimPermissions)])
		}).
		Return(nil)

	profile, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, profile.Email)
	assert.Equal(t, uid, profile.ID.Hex())
}

func TestProfileService_Create_NormalizesRole(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := createProfileInput()
	input.Role = "admin"

	fx.idp.EXPECT().CreateUser(ctx, mock.Anything).Return(&service.IdPUser{}, nil)
	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.idp.EXPECT().
		SetCustomUserClaims(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, claims map[string]any) {
			assert.Equal(t, []string{"Admin"}, claims[claimKey(claimRoles)])
		}).
		Return(nil)

	_, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
}

func TestProfileService_Create_ResumesAfterProfileInsertFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := createProfileInput()
	leftover := primitive.NewObjectID()

	fx.idp.EXPECT().CreateUser(ctx, mock.Anything).Return(nil, service.ErrEmailAlreadyExists)
	fx.idp.EXPECT().GetUserByEmail(ctx, input.Email).Return(&service.IdPUser{UID: leftover.Hex(), Email: input.Email}, nil)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, leftover, profile.ID)
		}).
		Return(nil)
	fx.idp.EXPECT().SetCustomUserClaims(ctx, leftover.Hex(), mock.Anything).Return(nil)

	profile, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, leftover, profile.ID)
}

func TestProfileService_Create_ResumesAfterClaimsFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := createProfileInput()
	leftover := primitive.NewObjectID()
	stored := &entity.Profile{ID: leftover, Email: input.Email, IdPID: leftover.Hex()}

	fx.idp.EXPECT().CreateUser(ctx, mock.Anything).Return(nil, service.ErrEmailAlreadyExists)
	fx.idp.EXPECT().GetUserByEmail(ctx, input.Email).Return(&service.IdPUser{UID: leftover.Hex()}, nil)
	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateKey)
	fx.profileRepo.EXPECT().FindByEmail(ctx, input.Email).Return(stored, nil)
	fx.idp.EXPECT().SetCustomUserClaims(ctx, leftover.Hex(), mock.Anything).Return(nil)

	profile, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Same(t, stored, profile)
}

func TestProfileService_Create_CompletedAccountIsTaken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := createProfileInput()

	fx.idp.EXPECT().CreateUser(ctx, mock.Anything).Return(nil, service.ErrEmailAlreadyExists)
	fx.idp.EXPECT().GetUserByEmail(ctx, input.Email).Return(&service.IdPUser{
		UID:          primitive.NewObjectID().Hex(),
		CustomClaims: map[string]any{claimKey(claimProfileID): "abc"},
	}, nil)

	_, err := fx.service.Create(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestProfileService_Create_ProfileLinkedElsewhere(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	input := createProfileInput()

	fx.idp.EXPECT().CreateUser(ctx, mock.Anything).Return(&service.IdPUser{}, nil)
	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateKey)
	fx.profileRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.Profile{ID: primitive.NewObjectID()}, nil)

	_, err := fx.service.Create(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestProfileService_Create_IdPFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.idp.EXPECT().CreateUser(ctx, mock.Anything).Return(nil, errors.New("unavailable"))

	_, err := fx.service.Create(ctx, createProfileInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestProfileService_Get(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		setup   func(fx profileServiceFixtures, oid primitive.ObjectID)
		wantErr error
	}{
		{
			name: "found",
			setup: func(fx profileServiceFixtures, oid primitive.ObjectID) {
				fx.profileRepo.EXPECT().FindByID(mock.Anything, oid).Return(&entity.Profile{ID: oid}, nil)
			},
		},
		{
			name: "missing",
			setup: func(fx profileServiceFixtures, oid primitive.ObjectID) {
				fx.profileRepo.EXPECT().FindByID(mock.Anything, oid).Return(nil, repository.ErrNotFound)
			},
			wantErr: domainerrors.ErrProfileNotFound,
		},
		{
			name:    "malformed id",
			id:      "not-an-id",
			setup:   func(profileServiceFixtures, primitive.ObjectID) {},
			wantErr: domainerrors.ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			oid := primitive.NewObjectID()
			id := tt.id
			if id == "" {
				id = oid.Hex()
			}
			tt.setup(fx, oid)

			profile, err := fx.service.Get(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, oid, profile.ID)
		})
	}
}

func TestProfileService_Update_EmptyPatchReturnsCurrent(t *testing.T) {
	fx := createTestProfileService(t)
	oid := primitive.NewObjectID()

	fx.profileRepo.EXPECT().FindByID(mock.Anything, oid).Return(&entity.Profile{ID: oid, Nickname: "old"}, nil)

	profile, err := fx.service.Update(context.Background(), oid.Hex(), usecase.UpdateProfileInput{})

	require.NoError(t, err)
	assert.Equal(t, "old", profile.Nickname)
}

func TestProfileService_Update_AppliesFields(t *testing.T) {
	fx := createTestProfileService(t)
	oid := primitive.NewObjectID()
	nickname := "new"

	fx.profileRepo.EXPECT().
		Update(mock.Anything, oid, mock.AnythingOfType("repository.ProfileUpdate")).
		Run(func(_ context.Context, _ primitive.ObjectID, update repository.ProfileUpdate) {
			require.NotNil(t, update.Nickname)
			assert.Equal(t, nickname, *update.Nickname)
			assert.Nil(t, update.Roles)
		}).
		Return(&entity.Profile{ID: oid, Nickname: nickname}, nil)

	profile, err := fx.service.Update(context.Background(), oid.Hex(), usecase.UpdateProfileInput{Nickname: &nickname})

	require.NoError(t, err)
	assert.Equal(t, nickname, profile.Nickname)
}

func TestProfileService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		idpErr    error
		wantErr   bool
		wantFound bool
	}{
		{name: "removes both records", wantFound: true},
		{name: "identity already gone", idpErr: service.ErrUserNotFound, wantFound: true},
		{name: "identity provider failure aborts", idpErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()
			oid := primitive.NewObjectID()

			factory := mockRepo.NewMockRepositoryFactory(t)
			txProfiles := mockRepo.NewMockProfileRepository(t)
			factory.EXPECT().ProfileRepo().Return(txProfiles)
			txProfiles.EXPECT().Delete(ctx, oid).Return(&entity.Profile{ID: oid, IdPID: oid.Hex()}, nil)
			fx.idp.EXPECT().DeleteUser(ctx, oid.Hex()).Return(tt.idpErr)
			expectTransaction(fx.txManager, factory)

			profile, err := fx.service.Delete(ctx, oid.Hex())

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, profile)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, oid, profile.ID)
		})
	}
}

func TestProfileService_Delete_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	oid := primitive.NewObjectID()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProfiles := mockRepo.NewMockProfileRepository(t)
	factory.EXPECT().ProfileRepo().Return(txProfiles)
	txProfiles.EXPECT().Delete(ctx, oid).Return(nil, repository.ErrNotFound)
	expectTransaction(fx.txManager, factory)

	_, err := fx.service.Delete(ctx, oid.Hex())

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_SetRoles(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	oid := primitive.NewObjectID()
	stored := &entity.Profile{ID: oid, IdPID: oid.Hex(), Roles: entity.Roles{entity.RoleAdmin}}

	fx.profileRepo.EXPECT().
		Update(ctx, oid, mock.AnythingOfType("repository.ProfileUpdate")).
		Run(func(_ context.Context, _ primitive.ObjectID, update repository.ProfileUpdate) {
			require.NotNil(t, update.Roles)
			assert.Equal(t, entity.Roles{entity.RoleAdmin}, *update.Roles)
		}).
		Return(stored, nil)
	fx.idp.EXPECT().GetUser(ctx, oid.Hex()).Return(&service.IdPUser{
		UID: oid.Hex(),
		CustomClaims: map[string]any{
			claimKey(claimPermissions): []any{"read:jobs"},
			"other":                    true,
		},
	}, nil)
	fx.idp.EXPECT().
		SetCustomUserClaims(ctx, oid.Hex(), mock.Anything).
		Run(func(_ context.Context, _ string, claims map[string]any) {
			assert.Equal(t, []string{"Admin"}, claims[claimKey(claimRoles)])
			assert.Equal(t, []any{"read:jobs"}, claims[claimKey(claimPermissions)])
			assert.Equal(t, true, claims["other"])
			assert.Equal(t, oid.Hex(), claims[claimKey(claimProfileID)])
		}).
		Return(nil)

	profile, err := fx.service.SetRoles(ctx, oid.Hex(), entity.Roles{"admin", "ADMIN"})

	require.NoError(t, err)
	assert.Same(t, stored, profile)
}

func TestProfileService_SetRoles_UnknownRole(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.SetRoles(context.Background(), primitive.NewObjectID().Hex(), entity.Roles{"Moderator"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_CreateServiceProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.secrets.EXPECT().Generate(mock.AnythingOfType("string")).Return("derived-secret")
	fx.serviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ServiceProfile")).
		Run(func(_ context.Context, profile *entity.ServiceProfile) {
			assert.Equal(t, profile.ID.Hex(), profile.ClientID)
			assert.Equal(t, "service|"+profile.ClientID, profile.IdPID)
			assert.Equal(t, []string{}, profile.Permissions)
		}).
		Return(nil)

	out, err := fx.service.CreateServiceProfile(ctx, usecase.CreateServiceProfileInput{})

	require.NoError(t, err)
	assert.Equal(t, "derived-secret", out.ClientSecret)
	assert.True(t, entity.IsServiceSubject(out.Profile.IdPID))
}
