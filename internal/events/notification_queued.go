package events

import (
	"encoding/json"
	"time"
)

const NotificationQueuedTopic = "barangay.notification.queued.v1"

// NotificationQueuedEvent is written to the outbox in the same transaction as the
// notification row and drives mail delivery.
type NotificationQueuedEvent struct {
	EventType        string          `json:"event_type"`
	NotificationID   string          `json:"notification_id"`
	RecipientID      string          `json:"recipient_id"`
	NotificationType string          `json:"notification_type"`
	Payload          json.RawMessage `json:"payload"`
	OccurredAt       time.Time       `json:"occurred_at"`
}
