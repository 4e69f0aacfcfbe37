package profile_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("should create a pending driver profile", func(t *testing.T) {
		adminID := kernel.NewUUID()

		p, err := profile.NewProfile(
			userID, "driver@example.com", "$2a$10$hash",
			profile.RoleDriver, "Sam Rios", "+15550123", &adminID)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, profile.RoleDriver, p.Role())
		assert.Equal(t, profile.AccountPending, p.Status())
		assert.False(t, p.IsActive())
		require.NotNil(t, p.AdminID())
		assert.True(t, p.AdminID().IsEqual(adminID))
	})

	t.Run("should create an admin without a supervising admin", func(t *testing.T) {
		p, err := profile.NewProfile(
			userID, "admin@example.com", "$2a$10$hash",
			profile.RoleAdmin, "Pat Vu", "", nil)

		require.NoError(t, err)
		assert.Nil(t, p.AdminID())
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		p, err := profile.NewProfile(
			userID, "not-an-email", "$2a$10$hash",
			profile.RoleDriver, "Sam Rios", "", nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail without password hash", func(t *testing.T) {
		p, err := profile.NewProfile(
			userID, "driver@example.com", "",
			profile.RoleDriver, "Sam Rios", "", nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		p, err := profile.NewProfile(
			userID, "driver@example.com", "$2a$10$hash",
			profile.RoleUnknown, "Sam Rios", "", nil)

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestProfileActivation(t *testing.T) {
	p, err := profile.NewProfile(
		kernel.NewUUID(), "driver@example.com", "$2a$10$hash",
		profile.RoleDriver, "Sam Rios", "", nil)
	require.NoError(t, err)

	p.Activate()
	assert.True(t, p.IsActive())
	assert.Equal(t, profile.AccountActive, p.Status())

	p.Suspend()
	assert.False(t, p.IsActive())
	assert.Equal(t, profile.AccountSuspended, p.Status())
}

func TestRestoreProfile(t *testing.T) {
	t.Run("should restore persisted state as-is", func(t *testing.T) {
		createdAt := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

		p, err := profile.RestoreProfile(
			kernel.NewUUID(), "admin@example.com", "$2a$10$hash",
			profile.RoleAdmin, profile.AccountActive,
			"Pat Vu", "+15550199", nil, createdAt, createdAt)

		require.NoError(t, err)
		assert.True(t, p.IsActive())
		assert.Equal(t, createdAt, p.CreatedAt())
	})

	t.Run("should reject a corrupt account status", func(t *testing.T) {
		p, err := profile.RestoreProfile(
			kernel.NewUUID(), "admin@example.com", "$2a$10$hash",
			profile.RoleAdmin, profile.AccountStatus(42),
			"Pat Vu", "", nil, time.Now(), time.Now())

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestAccountStatusFromString(t *testing.T) {
	for str, expected := range map[string]profile.AccountStatus{
		"active":    profile.AccountActive,
		"suspended": profile.AccountSuspended,
		"pending":   profile.AccountPending,
	} {
		status, err := profile.AccountStatusFromString(str)

		require.NoError(t, err, str)
		assert.Equal(t, expected, status)
		assert.Equal(t, str, status.String())
	}

	_, err := profile.AccountStatusFromString("disabled")
	require.Error(t, err)
}
