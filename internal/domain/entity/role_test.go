package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRole_Normalize(t *testing.T) {
	assert.Equal(t, RoleAdmin, Role("admin").Normalize())
	assert.Equal(t, RoleAdmin, Role("ADMIN").Normalize())
	assert.Equal(t, RoleUser, Role(" user ").Normalize())
	assert.Equal(t, Role(""), Role("").Normalize())
	assert.True(t, Role("admin").IsValid())
	assert.False(t, Role("moderator").IsValid())
}

func TestRoles_Contains(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "Admin"})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.True(t, roles.Contains("admin"))
	assert.True(t, roles.Contains(RoleUser))
	assert.False(t, Roles{RoleUser}.Contains(RoleAdmin))
}

func TestIsServiceSubject(t *testing.T) {
	assert.True(t, IsServiceSubject("svc@clients"))
	assert.True(t, IsServiceSubject(ServiceIdPID(primitive.NewObjectID())))
	assert.False(t, IsServiceSubject("@clients"))
	assert.False(t, IsServiceSubject("652f1c0e9b1e8a3d4c5b6a79"))
	assert.False(t, IsServiceSubject("svc@clients.example.com"))
}

func TestAuthContext(t *testing.T) {
	var nilCtx *AuthContext
	assert.False(t, nilCtx.HasRole(RoleAdmin))
	assert.False(t, nilCtx.Owns("x"))

	ac := &AuthContext{ProfileID: "abc", Roles: Roles{RoleAdmin}}
	assert.True(t, ac.HasRole("admin"))
	assert.True(t, ac.Owns("abc"))
	assert.False(t, ac.Owns(""))
}

func TestDefaultPhotoURL(t *testing.T) {
	assert.Equal(t, "https://ui-avatars.com/api/?background=random&name=Jane+Doe", DefaultPhotoURL("Jane Doe"))
}
