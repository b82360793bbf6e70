// Package model contains the document shapes stored in MongoDB and their mapping to domain entities.
package model

import (
	"time"

	"indieneer/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileModel mirrors a document of the 'profiles' collection.
type ProfileModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	Email       string             `bson:"email"`
	Nickname    string             `bson:"nickname"`
	DisplayName string             `bson:"display_name"`
	PhotoURL    string             `bson:"photo_url"`
	IdPID       string             `bson:"idp_id"`
	Roles       []string           `bson:"roles"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ToProfileDomain maps a stored document to the domain entity.
func ToProfileDomain(m *ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:          m.ID,
		Email:       m.Email,
		Nickname:    m.Nickname,
		DisplayName: m.DisplayName,
		PhotoURL:    m.PhotoURL,
		IdPID:       m.IdPID,
		Roles:       entity.RolesFromStrings(m.Roles),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromProfileDomain maps the domain entity to its document.
func FromProfileDomain(p *entity.Profile) *ProfileModel {
	roles := p.Roles.ToStrings()
	if roles == nil {
		roles = []string{}
	}

	return &ProfileModel{
		ID:          p.ID,
		Email:       p.Email,
		Nickname:    p.Nickname,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		IdPID:       p.IdPID,
		Roles:       roles,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ServiceProfileModel mirrors a document of the 'service_profiles' collection.
type ServiceProfileModel struct {
	ID           primitive.ObjectID `bson:"_id"`
	IdPID        string             `bson:"idp_id"`
	ClientID     string             `bson:"client_id"`
	ClientSecret string             `bson:"client_secret"`
	Permissions  []string           `bson:"permissions"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// ToServiceProfileDomain maps a stored document to the domain entity.
func ToServiceProfileDomain(m *ServiceProfileModel) *entity.ServiceProfile {
	if m == nil {
		return nil
	}

	return &entity.ServiceProfile{
		ID:           m.ID,
		IdPID:        m.IdPID,
		ClientID:     m.ClientID,
		ClientSecret: m.ClientSecret,
		Permissions:  m.Permissions,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromServiceProfileDomain maps the domain entity to its document.
func FromServiceProfileDomain(p *entity.ServiceProfile) *ServiceProfileModel {
	permissions := p.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return &ServiceProfileModel{
		ID:           p.ID,
		IdPID:        p.IdPID,
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		Permissions:  permissions,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
