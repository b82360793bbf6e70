// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"indieneer/internal/domain/entity"
)

// CreateProfileInput describes a new human account. DisplayName, PhotoURL and Role are optional.
type CreateProfileInput struct {
	Email         string
	Password      string
	Nickname      string
	DisplayName   string
	PhotoURL      string
	EmailVerified bool
	Role          entity.Role
}

// UpdateProfileInput is a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	Nickname    *string
	DisplayName *string
	PhotoURL    *string
}

// CreateServiceProfileInput describes a new service account.
type CreateServiceProfileInput struct {
	Permissions []string
}

// ServiceProfileOutput carries the client credentials of a new service account.
// The secret is only ever returned here.
type ServiceProfileOutput struct {
	Profile      *entity.ServiceProfile
	ClientSecret string
}

// ProfileUsecase manages accounts that live both in the identity provider and in the document store.
type ProfileUsecase interface {
	// Create is idempotent on retry: calling it again with the same input
	// completes an account left half-created by an earlier failure.
	Create(ctx context.Context, input CreateProfileInput) (*entity.Profile, error)
	Get(ctx context.Context, id string) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	Update(ctx context.Context, id string, input UpdateProfileInput) (*entity.Profile, error)

	// Delete removes the profile and its identity provider user in one transaction.
	Delete(ctx context.Context, id string) (*entity.Profile, error)

	// SetRoles replaces the role list locally and in the custom claims.
	SetRoles(ctx context.Context, id string, roles entity.Roles) (*entity.Profile, error)

	CreateServiceProfile(ctx context.Context, input CreateServiceProfileInput) (*ServiceProfileOutput, error)
}
