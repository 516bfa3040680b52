package service

import (
	"context"
	"time"
)

// Favorite event types.
const (
	FavoriteEventAdded   = "favorite.added"
	FavoriteEventRemoved = "favorite.removed"
)

// FavoriteEvent is emitted after a favorite is added or removed.
type FavoriteEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     uint      `json:"user_id"`
	ItemType   string    `json:"item_type"`
	ItemID     uint      `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFavoriteEvent publishes a favorite change for downstream consumers
	PublishFavoriteEvent(ctx context.Context, event *FavoriteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
