package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// ReadJSON decodes the value under key into T.
// An absent key, a failing store, malformed JSON, null and empty
// arrays or objects all yield def. Reads never fail.
func ReadJSON[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "failed to read local value", slog.String("key", key), slog.Any("error", err))
		return def
	}
	if !ok || isEmptyJSON(raw) {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.DebugContext(ctx, "discarding corrupt local value", slog.String("key", key), slog.Any("error", err))
		return def
	}

	return v
}

// ReadRaw returns the raw JSON under key when it holds a non-empty,
// well-formed value. Used where the caller decodes over a prepared value.
func ReadRaw(ctx context.Context, s Store, key string) ([]byte, bool) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "failed to read local value", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	if !ok || isEmptyJSON(raw) || !json.Valid([]byte(raw)) {
		return nil, false
	}
	return []byte(raw), true
}

// WriteJSON overwrites the value under key with the JSON encoding of v
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := s.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func isEmptyJSON(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}
