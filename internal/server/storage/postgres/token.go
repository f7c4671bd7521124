package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/storage"
)

// SaveRefreshToken stores a new refresh token
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	const q = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := s.pool.Exec(ctx, q, token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves refresh token by hash
func (s *Storage) GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	const q = `
SELECT id, user_id, token_hash, expires_at, created_at
FROM refresh_tokens WHERE token_hash = $1`

	var t models.RefreshToken
	err := s.pool.QueryRow(ctx, q, tokenHash).Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &t, nil
}

// DeleteRefreshToken deletes refresh token by hash
func (s *Storage) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrTokenNotFound
	}
	return nil
}

// DeleteUserTokens deletes all refresh tokens for a user
func (s *Storage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteExpiredTokens removes all tokens expired before now
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// SavePasswordReset stores a new reset token
func (s *Storage) SavePasswordReset(ctx context.Context, reset *models.PasswordReset) error {
	const q = `
INSERT INTO password_resets (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := s.pool.Exec(ctx, q, reset.ID, reset.UserID, reset.TokenHash, reset.ExpiresAt, reset.CreatedAt); err != nil {
		return fmt.Errorf("failed to save password reset: %w", err)
	}
	return nil
}

// GetPasswordReset retrieves reset token by hash
func (s *Storage) GetPasswordReset(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	const q = `
SELECT id, user_id, token_hash, expires_at, created_at, used_at
FROM password_resets WHERE token_hash = $1`

	var r models.PasswordReset
	err := s.pool.QueryRow(ctx, q, tokenHash).Scan(&r.ID, &r.UserID, &r.TokenHash, &r.ExpiresAt, &r.CreatedAt, &r.UsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get password reset: %w", err)
	}
	return &r, nil
}

// MarkPasswordResetUsed marks the token as redeemed
func (s *Storage) MarkPasswordResetUsed(ctx context.Context, id string, usedAt time.Time) error {
	const q = `UPDATE password_resets SET used_at = $2 WHERE id = $1 AND used_at IS NULL`

	tag, err := s.pool.Exec(ctx, q, id, usedAt)
	if err != nil {
		return fmt.Errorf("failed to mark password reset used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrTokenNotFound
	}
	return nil
}

// DeleteExpiredResets removes reset tokens expired before now
func (s *Storage) DeleteExpiredResets(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM password_resets WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired resets: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
