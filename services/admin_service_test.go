package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reservas-backend/models"
)

func seedAdmin(t *testing.T, db *gorm.DB) models.Admin {
	t.Helper()
	admin := models.Admin{
		AdminID:  "a1b2c3d4e5f6",
		FullName: "Root Admin",
		Email:    "root@hotel.local",
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, NewMemorySessionStore())
	admin := seedAdmin(t, db)
	ctx := context.Background()

	token, got, err := svc.Authenticate(ctx, admin.AdminID, admin.Email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, admin.AdminID, got.AdminID)

	adminID, ok := svc.ResolveSession(ctx, token)
	require.True(t, ok)
	assert.Equal(t, admin.AdminID, adminID)
}

func TestAuthenticateRequiresBothFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, NewMemorySessionStore())
	admin := seedAdmin(t, db)
	ctx := context.Background()

	_, _, err := svc.Authenticate(ctx, admin.AdminID, "wrong@hotel.local")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate(ctx, "wrong-id", admin.Email)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, NewMemorySessionStore())
	admin := seedAdmin(t, db)
	ctx := context.Background()

	token, _, err := svc.Authenticate(ctx, admin.AdminID, admin.Email)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	_, ok := svc.ResolveSession(ctx, token)
	assert.False(t, ok)

	// Logging out an unknown token is not an error.
	assert.NoError(t, svc.Logout(ctx, "unknown"))
}

func TestDeleteSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, NewMemorySessionStore())
	admin := seedAdmin(t, db)
	ctx := context.Background()

	token, _, err := svc.Authenticate(ctx, admin.AdminID, admin.Email)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSelf(ctx, token, admin.AdminID))

	_, ok := svc.ResolveSession(ctx, token)
	assert.False(t, ok)

	_, err = svc.GetByAdminID(admin.AdminID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok", "admin-1"))
	adminID, ok := store.Get(ctx, "tok")
	require.True(t, ok)
	assert.Equal(t, "admin-1", adminID)

	require.NoError(t, store.Delete(ctx, "tok"))
	_, ok = store.Get(ctx, "tok")
	assert.False(t, ok)
}
