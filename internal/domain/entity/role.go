// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"unicode"
)

// Role represents the type of role a profile can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "User"
	// RoleAdmin indicates an administrator of the platform.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r.Normalize() {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Normalize title-cases the role, so "admin" and "ADMIN" both become "Admin".
func (r Role) Normalize() Role {
	s := strings.ToLower(strings.TrimSpace(string(r)))
	if s == "" {
		return ""
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return Role(runes)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role, ignoring case.
func (rs Roles) Contains(role Role) bool {
	want := role.Normalize()

	return slices.ContainsFunc(rs, func(r Role) bool {
		return r.Normalize() == want
	})
}

// ToStrings converts Roles to []string for claims compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to normalized Roles, keeping unknown roles
// so that claims written by other tools are not silently dropped.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s).Normalize()
		if role != "" {
			result = append(result, role)
		}
	}

	return result
}
