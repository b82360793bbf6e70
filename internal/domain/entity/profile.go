package entity

import (
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const avatarBaseURL = "https://ui-avatars.com/api/"

// Profile represents a human user. It exists both in the identity provider and
// in the document store; the IdP user id is the hex form of ID.
type Profile struct {
	ID          primitive.ObjectID `json:"_id"`
	Email       string             `json:"email"`
	Nickname    string             `json:"nickname"`
	DisplayName string             `json:"display_name"`
	PhotoURL    string             `json:"photo_url"`
	IdPID       string             `json:"idp_id"`
	Roles       Roles              `json:"roles"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// DefaultPhotoURL builds the generated avatar used when a profile has no picture.
func DefaultPhotoURL(displayName string) string {
	q := url.Values{}
	q.Set("name", displayName)
	q.Set("background", "random")

	return avatarBaseURL + "?" + q.Encode()
}
