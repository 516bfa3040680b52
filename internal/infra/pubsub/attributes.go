package pubsub

import (
	"strconv"

	"holocron/internal/domain/service"
)

// eventAttributes are attached to every message for subscription filtering and tracing.
func eventAttributes(event *service.FavoriteEvent) map[string]string {
	attributes := map[string]string{
		"event_id":  event.EventID,
		"type":      event.Type,
		"user_id":   strconv.FormatUint(uint64(event.UserID), 10),
		"item_type": event.ItemType,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
