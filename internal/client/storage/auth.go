package storage

import (
	"context"

	"github.com/iudanet/umkmhub/internal/models"
)

//go:generate moq -out auth_mock.go . SessionStorage

// SessionStorage defines interface for persisting the gateway session on the client.
// It lives outside of the Store key space so that screens cannot overwrite tokens.
type SessionStorage interface {
	// SaveSession stores the session as-is
	SaveSession(ctx context.Context, sess *models.Session) error

	// GetSession retrieves the stored session
	// Returns ErrAuthNotFound if no session exists
	GetSession(ctx context.Context) (*models.Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
