package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		role     Role
		first    string
		last     string
		wantErr  string
	}{
		{"valid staff", "jdoe", "jdoe@company.com", RoleStaff, "John", "Doe", ""},
		{"short username", "jd", "jdoe@company.com", RoleStaff, "John", "Doe", "username must be at least 3 characters"},
		{"bad email", "jdoe", "not-an-email", RoleStaff, "John", "Doe", "valid email is required"},
		{"missing first name", "jdoe", "jdoe@company.com", RoleStaff, " ", "Doe", "first name is required"},
		{"missing last name", "jdoe", "jdoe@company.com", RoleStaff, "John", "", "last name is required"},
		{"unknown role", "jdoe", "jdoe@company.com", Role("owner"), "John", "Doe", "invalid role: owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.email, "$2a$10$hash", tt.role, tt.first, tt.last)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, u.IsActive())
			assert.Equal(t, 0, u.FailedLoginAttempts())
			assert.Nil(t, u.LockedUntil())
			assert.Equal(t, "John Doe", u.FullName())
		})
	}
}

func TestUser_IsLocked(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Second)

	build := func(lockedUntil *time.Time) *User {
		u, err := ReconstructUser(UserData{ID: 1, Username: "jdoe", Role: RoleStaff, Active: true, LockedUntil: lockedUntil})
		require.NoError(t, err)
		return u
	}

	assert.False(t, build(nil).IsLocked(now))
	assert.True(t, build(&future).IsLocked(now))
	assert.False(t, build(&past).IsLocked(now))
	assert.False(t, build(&now).IsLocked(now))
}

func TestUser_UpdateProfileKeepsRoleAndActive(t *testing.T) {
	u, err := ReconstructUser(UserData{
		ID:        3,
		Username:  "boss",
		Email:     "boss@company.com",
		Role:      RoleSuperAdmin,
		FirstName: "Big",
		LastName:  "Boss",
		Active:    true,
	})
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile("boss2", "boss2@company.com", "Bigger", "Boss"))

	assert.Equal(t, "boss2", u.Username())
	assert.Equal(t, RoleSuperAdmin, u.Role())
	assert.True(t, u.IsActive())
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("jdoe", "jdoe@company.com", "hash", RoleStaff, "John", "Doe")
	require.NoError(t, err)

	assert.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(9))
	assert.Error(t, u.SetID(10))
	assert.Equal(t, int64(9), u.ID())
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleSuperAdmin.AtLeast(RoleStaff))
	assert.True(t, RoleSuperAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.False(t, RoleStaff.AtLeast(RoleAdmin))
	assert.False(t, Role("guest").AtLeast(RoleStaff))

	_, err := NewRole("guest")
	assert.Error(t, err)
}

func TestSecurityPolicy(t *testing.T) {
	p := DefaultSecurityPolicy()
	assert.False(t, p.ShouldLock(4))
	assert.True(t, p.ShouldLock(5))
	assert.True(t, p.ShouldLock(6))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(15*time.Minute), p.LockedUntil(now))
}
