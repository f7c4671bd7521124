// Package drafts persists unsaved create-form input and drives the
// create/edit submission state machine.
package drafts

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/iudanet/umkmhub/internal/client/storage"
)

// Draft is the persisted copy of one form under a fixed key
type Draft[T any] struct {
	store storage.Store
	key   string
}

// New creates a draft bound to key
func New[T any](store storage.Store, key string) *Draft[T] {
	return &Draft[T]{store: store, key: key}
}

// Restore decodes the stored draft over blank. Fields missing from the
// draft keep their blank values; a corrupt or absent draft yields blank.
func (d *Draft[T]) Restore(ctx context.Context, blank T) (T, bool) {
	raw, ok := storage.ReadRaw(ctx, d.store, d.key)
	if !ok {
		return blank, false
	}

	merged := blank
	if err := json.Unmarshal(raw, &merged); err != nil {
		slog.DebugContext(ctx, "discarding corrupt draft", slog.String("key", d.key), slog.Any("error", err))
		return blank, false
	}

	return merged, true
}

// Save overwrites the draft with v
func (d *Draft[T]) Save(ctx context.Context, v T) error {
	return storage.WriteJSON(ctx, d.store, d.key, v)
}

// Clear deletes the draft
func (d *Draft[T]) Clear(ctx context.Context) error {
	return d.store.Remove(ctx, d.key)
}
