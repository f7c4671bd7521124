package storage

import "context"

//go:generate moq -out store_mock.go . Store

// Store is the persisted local key-value port used by every screen.
// Values are opaque strings, keys never expire, and no multi-key atomicity is offered.
type Store interface {
	// Get returns the value stored under key and whether it exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value under key
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error
	Remove(ctx context.Context, key string) error
}
