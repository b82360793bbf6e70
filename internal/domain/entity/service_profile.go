package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceIdPPrefix prefixes the IdP user id of every service profile.
const ServiceIdPPrefix = "service|"

// ServiceClientSuffix is the subject suffix the IdP uses for client-credentials principals.
const ServiceClientSuffix = "@clients"

// ServiceProfile represents a non-human principal authenticating with client credentials.
type ServiceProfile struct {
	ID           primitive.ObjectID `json:"_id"`
	IdPID        string             `json:"idp_id"`
	ClientID     string             `json:"client_id"`
	ClientSecret string             `json:"-"`
	Permissions  []string           `json:"permissions"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ServiceIdPID returns the IdP user id for a service profile id.
func ServiceIdPID(id primitive.ObjectID) string {
	return ServiceIdPPrefix + id.Hex()
}

// IsServiceSubject reports whether a token subject belongs to a service account.
func IsServiceSubject(subject string) bool {
	if strings.HasSuffix(subject, ServiceClientSuffix) && len(subject) > len(ServiceClientSuffix) {
		return true
	}

	return strings.HasPrefix(subject, ServiceIdPPrefix) && len(subject) > len(ServiceIdPPrefix)
}
