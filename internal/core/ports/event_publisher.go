package ports

import (
	"context"

	"yolnext/internal/core/domain/model/notification"
)

// EventPublisher is the boundary to the external notification dispatcher.
// The workflow's contract ends at Publish: delivery guarantees, retries,
// and channel selection (push/email/websocket) belong to the consumer side.
type EventPublisher interface {
	// Publish hands one status-changed event to the broker.
	Publish(ctx context.Context, event *notification.StatusChangedEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
