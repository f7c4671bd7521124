// Package events публикует события изменения записей во внешнюю очередь.
// Публикация не влияет на результат запроса: ошибки только логируются.
package events

import (
	"context"
	"time"
)

// Action вид изменения записи
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// RecordChanged событие изменения записи таблицы
type RecordChanged struct {
	At      time.Time `json:"at"`
	Table   string    `json:"table"`
	ID      string    `json:"id"`
	OwnerID string    `json:"owner_id"`
	Action  Action    `json:"action"`
}

// Publisher публикует события
type Publisher interface {
	Publish(ctx context.Context, event RecordChanged) error
	Close() error
}

// Noop отбрасывает события; используется, когда очередь не настроена
type Noop struct{}

// Publish does nothing
func (Noop) Publish(context.Context, RecordChanged) error { return nil }

// Close does nothing
func (Noop) Close() error { return nil }
