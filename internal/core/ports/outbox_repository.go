package ports

import (
	"context"

	"yolnext/internal/core/domain/model/kernel"
	"yolnext/internal/core/domain/model/notification"
)

// OutboxRepository defines the persistence contract for the transactional
// outbox. Events are written in the same transaction as the transition they
// describe, then drained to the broker by a background job. This keeps the
// all-or-nothing guarantee: a rolled-back transition leaves no event behind.
type OutboxRepository interface {
	// Add appends one unpublished event.
	Add(ctx context.Context, event *notification.StatusChangedEvent) error

	// GetUnpublished retrieves up to limit unpublished events, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]*notification.StatusChangedEvent, error)

	// MarkPublished stamps an event as handed to the broker.
	MarkPublished(ctx context.Context, id kernel.UUID) error
}
