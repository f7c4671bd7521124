package storage

import (
	"context"
	"time"

	"github.com/iudanet/umkmhub/internal/models"
)

// TokenStorage defines interface for refresh token persistence.
// Tokens are looked up by their SHA256 hash, the raw value is never stored.
type TokenStorage interface {
	// SaveRefreshToken stores a new refresh token
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves refresh token by hash
	// Returns ErrTokenNotFound if token doesn't exist
	GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// DeleteRefreshToken deletes refresh token by hash
	// Returns ErrTokenNotFound if token doesn't exist
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteUserTokens deletes all refresh tokens for a user
	// Returns number of deleted tokens
	DeleteUserTokens(ctx context.Context, userID string) (int, error)

	// DeleteExpiredTokens removes all tokens expired before now
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}

// ResetStorage defines interface for password reset token persistence
type ResetStorage interface {
	// SavePasswordReset stores a new reset token
	SavePasswordReset(ctx context.Context, reset *models.PasswordReset) error

	// GetPasswordReset retrieves reset token by hash
	// Returns ErrTokenNotFound if token doesn't exist
	GetPasswordReset(ctx context.Context, tokenHash string) (*models.PasswordReset, error)

	// MarkPasswordResetUsed marks the token as redeemed.
	// Returns ErrTokenNotFound if token doesn't exist or was already used
	MarkPasswordResetUsed(ctx context.Context, id string, usedAt time.Time) error

	// DeleteExpiredResets removes reset tokens expired before now
	// Returns number of deleted tokens
	DeleteExpiredResets(ctx context.Context, now time.Time) (int, error)
}
