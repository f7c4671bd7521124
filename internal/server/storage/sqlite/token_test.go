package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/storage"
)

func newRefreshToken(userID, hash string, expiresAt time.Time) *models.RefreshToken {
	return &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

func TestTokenStorage_SaveAndGetRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	expiresAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	token := newRefreshToken(userID, "hash-1", expiresAt)
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	got, err := s.GetRefreshToken(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, token.ID, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.True(t, expiresAt.Equal(got.ExpiresAt))

	_, err = s.GetRefreshToken(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_SaveRefreshToken_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.SaveRefreshToken(ctx, newRefreshToken(uuid.New().String(), "hash", time.Now().Add(time.Hour)))
	assert.Error(t, err)
}

func TestTokenStorage_DeleteRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	require.NoError(t, s.SaveRefreshToken(ctx, newRefreshToken(userID, "hash-1", time.Now().Add(time.Hour))))

	tests := []struct {
		wantError error
		name      string
		hash      string
	}{
		{name: "existing token", hash: "hash-1"},
		{name: "already deleted", hash: "hash-1", wantError: storage.ErrTokenNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.DeleteRefreshToken(ctx, tt.hash)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTokenStorage_DeleteUserTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID1 := createTestUser(t, ctx, s)
	userID2 := createTestUser(t, ctx, s)

	require.NoError(t, s.SaveRefreshToken(ctx, newRefreshToken(userID1, "u1-a", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newRefreshToken(userID1, "u1-b", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newRefreshToken(userID2, "u2-a", time.Now().Add(time.Hour))))

	count, err := s.DeleteUserTokens(ctx, userID1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Verify user2's token still exists
	_, err = s.GetRefreshToken(ctx, "u2-a")
	require.NoError(t, err)

	count, err = s.DeleteUserTokens(ctx, userID1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	now := time.Now().UTC()

	tokens := []*models.RefreshToken{
		newRefreshToken(userID, "expired1", now.Add(-2*time.Hour)),
		newRefreshToken(userID, "expired2", now.Add(-1*time.Hour)),
		newRefreshToken(userID, "valid1", now.Add(24*time.Hour)),
		newRefreshToken(userID, "valid2", now.Add(48*time.Hour)),
	}

	for _, token := range tokens {
		require.NoError(t, s.SaveRefreshToken(ctx, token))
	}

	count, err := s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "Should delete 2 expired tokens")

	for _, hash := range []string{"valid1", "valid2"} {
		_, err := s.GetRefreshToken(ctx, hash)
		assert.NoError(t, err, hash)
	}

	count, err = s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestResetStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	now := time.Now().UTC()

	reset := &models.PasswordReset{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: "reset-hash",
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, s.SavePasswordReset(ctx, reset))

	got, err := s.GetPasswordReset(ctx, "reset-hash")
	require.NoError(t, err)
	assert.Equal(t, reset.ID, got.ID)
	assert.Nil(t, got.UsedAt)

	require.NoError(t, s.MarkPasswordResetUsed(ctx, reset.ID, now))

	got, err = s.GetPasswordReset(ctx, "reset-hash")
	require.NoError(t, err)
	assert.NotNil(t, got.UsedAt)

	// Токен гасится только один раз
	err = s.MarkPasswordResetUsed(ctx, reset.ID, now)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	_, err = s.GetPasswordReset(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestResetStorage_DeleteExpiredResets(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	now := time.Now().UTC()

	for i, expiresAt := range []time.Time{now.Add(-time.Hour), now.Add(time.Hour)} {
		require.NoError(t, s.SavePasswordReset(ctx, &models.PasswordReset{
			ID:        uuid.New().String(),
			UserID:    userID,
			TokenHash: []string{"old", "fresh"}[i],
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}))
	}

	count, err := s.DeleteExpiredResets(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = s.GetPasswordReset(ctx, "fresh")
	assert.NoError(t, err)
	_, err = s.GetPasswordReset(ctx, "old")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}
