package entity

// AuthContext carries the verified identity of the current request.
// It is created by the auth middleware and discarded with the response.
type AuthContext struct {
	Claims           map[string]any
	Subject          string
	ProfileID        string
	Roles            Roles
	Permissions      []string
	IsServiceAccount bool
}

// HasRole reports whether the principal holds role, ignoring case.
func (a *AuthContext) HasRole(role Role) bool {
	if a == nil {
		return false
	}

	return a.Roles.Contains(role)
}

// Owns reports whether the principal is the profile identified by profileID.
func (a *AuthContext) Owns(profileID string) bool {
	return a != nil && a.ProfileID != "" && a.ProfileID == profileID
}
