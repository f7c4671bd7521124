package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/storage"
)

// Records оборачивает хранилище записей и публикует событие после каждой успешной записи
type Records struct {
	storage.RecordStorage
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

var _ storage.RecordStorage = (*Records)(nil)

// NewRecords создает публикующую обертку над next
func NewRecords(next storage.RecordStorage, publisher Publisher, logger *slog.Logger) *Records {
	return &Records{
		RecordStorage: next,
		publisher:     publisher,
		logger:        logger,
		now:           time.Now,
	}
}

// Insert creates a row and publishes ActionCreated
func (r *Records) Insert(ctx context.Context, table, ownerID string, rec models.Record) (models.Record, error) {
	created, err := r.RecordStorage.Insert(ctx, table, ownerID, rec)
	if err != nil {
		return nil, err
	}
	r.publish(ctx, table, created.ID(), ownerID, ActionCreated)
	return created, nil
}

// Update applies a patch and publishes ActionUpdated
func (r *Records) Update(ctx context.Context, table, id, ownerID string, patch models.Record) error {
	if err := r.RecordStorage.Update(ctx, table, id, ownerID, patch); err != nil {
		return err
	}
	r.publish(ctx, table, id, ownerID, ActionUpdated)
	return nil
}

// Delete deletes a row and publishes ActionDeleted
func (r *Records) Delete(ctx context.Context, table, id, ownerID string) error {
	if err := r.RecordStorage.Delete(ctx, table, id, ownerID); err != nil {
		return err
	}
	r.publish(ctx, table, id, ownerID, ActionDeleted)
	return nil
}

func (r *Records) publish(ctx context.Context, table, id, ownerID string, action Action) {
	event := RecordChanged{
		At:      r.now().UTC(),
		Table:   table,
		ID:      id,
		OwnerID: ownerID,
		Action:  action,
	}

	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.Warn("Failed to publish record event",
			"table", table,
			"id", id,
			"action", action,
			"error", err,
		)
	}
}
