// Package cache кеширует выборки записей в Redis.
// Каждая таблица имеет счетчик версии; любая запись в таблицу увеличивает его,
// и ключи со старой версией перестают читаться, пока не истечет их TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/server/storage"
)

// KeyPrefix префикс всех ключей кеша
const KeyPrefix = "umkmhub:records:"

// Client подмножество клиента Redis, которое использует кеш
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// Records оборачивает хранилище записей и кеширует Select.
// Ошибки Redis не ломают запросы: чтение идет напрямую в хранилище.
type Records struct {
	storage.RecordStorage
	client Client
	logger *slog.Logger
	ttl    time.Duration
}

var _ storage.RecordStorage = (*Records)(nil)

// NewRecords создает кеширующую обертку над next
func NewRecords(next storage.RecordStorage, client Client, ttl time.Duration, logger *slog.Logger) *Records {
	return &Records{
		RecordStorage: next,
		client:        client,
		ttl:           ttl,
		logger:        logger,
	}
}

func versionKey(table string) string {
	return KeyPrefix + table + ":version"
}

// selectKey строит ключ выборки из версии таблицы и хеша запроса
func selectKey(table, version string, q models.Query) (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("failed to marshal query: %w", err)
	}
	sum := sha256.Sum256(data)
	return KeyPrefix + table + ":v" + version + ":" + hex.EncodeToString(sum[:]), nil
}

func (c *Records) version(ctx context.Context, table string) (string, error) {
	v, err := c.client.Get(ctx, versionKey(table)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return v, err
}

// Select returns a cached page or reads through to the storage
func (c *Records) Select(ctx context.Context, table string, q models.Query) (*models.RecordPage, error) {
	if _, err := storage.Table(table); err != nil {
		return nil, err
	}

	version, err := c.version(ctx, table)
	if err != nil {
		c.logger.Warn("Cache version lookup failed", "table", table, "error", err)
		return c.RecordStorage.Select(ctx, table, q)
	}

	key, err := selectKey(table, version, q)
	if err != nil {
		return c.RecordStorage.Select(ctx, table, q)
	}

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var page models.RecordPage
		if err := json.Unmarshal(cached, &page); err == nil {
			c.logger.Debug("Cache hit", "table", table)
			return &page, nil
		}
		c.logger.Warn("Cached page is corrupted", "table", table)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Cache read failed", "table", table, "error", err)
	}

	page, err := c.RecordStorage.Select(ctx, table, q)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(page)
	if err != nil {
		return page, nil
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", "table", table, "error", err)
	}

	return page, nil
}

// Insert creates a row and invalidates cached selects of the table
func (c *Records) Insert(ctx context.Context, table, ownerID string, rec models.Record) (models.Record, error) {
	created, err := c.RecordStorage.Insert(ctx, table, ownerID, rec)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, table)
	return created, nil
}

// Update applies a patch and invalidates cached selects of the table
func (c *Records) Update(ctx context.Context, table, id, ownerID string, patch models.Record) error {
	if err := c.RecordStorage.Update(ctx, table, id, ownerID, patch); err != nil {
		return err
	}
	c.invalidate(ctx, table)
	return nil
}

// Delete deletes a row and invalidates cached selects of the table.
// Products reference businesses, so deleting a business also invalidates products.
func (c *Records) Delete(ctx context.Context, table, id, ownerID string) error {
	if err := c.RecordStorage.Delete(ctx, table, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, table)
	if table == models.TableBusinesses {
		c.invalidate(ctx, models.TableProducts)
	}
	return nil
}

func (c *Records) invalidate(ctx context.Context, table string) {
	if err := c.client.Incr(ctx, versionKey(table)).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", "table", table, "error", err)
	}
}

// NewClient подключается к Redis и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
