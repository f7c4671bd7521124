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

// CreateUser inserts a new user row
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	const q = `
INSERT INTO users (id, email, password_hash, full_name, created_at, last_login)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.pool.Exec(ctx, q, user.ID, user.Email, user.PasswordHash, user.FullName, user.CreatedAt, user.LastLogin)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail selects a user by email, case-insensitive
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
SELECT id, email, password_hash, full_name, created_at, last_login
FROM users WHERE lower(email) = lower($1)`

	return scanUser(s.pool.QueryRow(ctx, q, email))
}

// GetUserByID selects a user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	const q = `
SELECT id, email, password_hash, full_name, created_at, last_login
FROM users WHERE id = $1`

	return scanUser(s.pool.QueryRow(ctx, q, userID))
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.CreatedAt, &u.LastLogin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidText {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UpdatePassword replaces the password hash
func (s *Storage) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	const q = `UPDATE users SET password_hash = $2 WHERE id = $1`

	tag, err := s.pool.Exec(ctx, q, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin updates the last login timestamp
func (s *Storage) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	const q = `UPDATE users SET last_login = $2 WHERE id = $1`

	tag, err := s.pool.Exec(ctx, q, userID, lastLogin)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}
