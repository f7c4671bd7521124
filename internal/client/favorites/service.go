// Package favorites keeps the visitor's favorite businesses and products
// in the local store.
package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/models"
)

// Partition splits favorites by type, preserving insertion order
type Partition struct {
	Businesses []models.FavoriteEntry
	Products   []models.FavoriteEntry
}

// Service manages the favorites list
type Service struct {
	store storage.Store
	mu    sync.Mutex
}

// NewService creates a favorites service on top of the local store
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// List returns all favorites in insertion order
func (s *Service) List(ctx context.Context) []models.FavoriteEntry {
	return storage.ReadJSON(ctx, s.store, storage.KeyFavorites, []models.FavoriteEntry{})
}

// IsFavorite reports whether the (id, type) pair is in the list
func (s *Service) IsFavorite(ctx context.Context, id string, typ models.FavoriteType) bool {
	for _, f := range s.List(ctx) {
		if f.ID == id && f.Type == typ {
			return true
		}
	}
	return false
}

// Toggle removes every entry matching (entry.ID, entry.Type) or appends the entry
// when none exists. It returns the resulting membership.
func (s *Service) Toggle(ctx context.Context, entry models.FavoriteEntry) (bool, error) {
	if !entry.Type.Valid() {
		return false, fmt.Errorf("unknown favorite type %q", entry.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx)
	kept := without(list, entry.ID, entry.Type)

	favorited := len(kept) == len(list)
	if favorited {
		kept = append(kept, entry)
	}

	if err := storage.WriteJSON(ctx, s.store, storage.KeyFavorites, kept); err != nil {
		return !favorited, err
	}

	return favorited, nil
}

// Remove deletes the (id, type) pair and returns the re-derived partition
func (s *Service) Remove(ctx context.Context, id string, typ models.FavoriteType) (Partition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx)
	kept := without(list, id, typ)

	if err := storage.WriteJSON(ctx, s.store, storage.KeyFavorites, kept); err != nil {
		return partition(list), err
	}

	return partition(kept), nil
}

// Partition returns the current favorites split by type
func (s *Service) Partition(ctx context.Context) Partition {
	return partition(s.List(ctx))
}

func without(list []models.FavoriteEntry, id string, typ models.FavoriteType) []models.FavoriteEntry {
	kept := make([]models.FavoriteEntry, 0, len(list))
	for _, f := range list {
		if f.ID == id && f.Type == typ {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func partition(list []models.FavoriteEntry) Partition {
	p := Partition{
		Businesses: []models.FavoriteEntry{},
		Products:   []models.FavoriteEntry{},
	}
	for _, f := range list {
		switch f.Type {
		case models.FavoriteBusiness:
			p.Businesses = append(p.Businesses, f)
		case models.FavoriteProduct:
			p.Products = append(p.Products, f)
		}
	}
	return p
}
