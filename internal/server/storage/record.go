package storage

import (
	"context"

	"github.com/iudanet/umkmhub/internal/models"
)

// RecordStorage defines interface for table records exposed by the gateway.
// Every authenticated user reads all rows, only the owner changes a row.
type RecordStorage interface {
	// Select returns rows matching the query
	// Returns ErrUnknownTable or ErrInvalidQuery for bad input
	Select(ctx context.Context, table string, q models.Query) (*models.RecordPage, error)

	// Get retrieves one row by id
	// Returns ErrRecordNotFound if row doesn't exist
	Get(ctx context.Context, table, id string) (models.Record, error)

	// Insert creates a row owned by ownerID and returns it.
	// id, owner_id and timestamps are assigned by the storage.
	Insert(ctx context.Context, table, ownerID string, rec models.Record) (models.Record, error)

	// Update applies a partial patch
	// Returns ErrRecordNotFound or ErrForbidden
	Update(ctx context.Context, table, id, ownerID string, patch models.Record) error

	// Delete deletes a row
	// Returns ErrRecordNotFound or ErrForbidden
	Delete(ctx context.Context, table, id, ownerID string) error
}
