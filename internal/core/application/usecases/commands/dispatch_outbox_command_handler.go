package commands

import (
	"context"

	"yolnext/internal/core/ports"
)

// DispatchOutboxCommandHandler drains unpublished events from the outbox to
// the broker. Publishing to the broker and marking the row happen per event,
// so a broker failure mid-batch leaves the rest for the next run. Delivery is
// therefore at-least-once; consumers deduplicate by event ID.
type DispatchOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchOutboxCommandHandler creates a handler for outbox dispatching.
func NewDispatchOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) DispatchOutboxCommandHandler {
	return DispatchOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle drains one batch and returns the number of events published.
func (h DispatchOutboxCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchOutboxCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	events, err := uow.OutboxRepository().GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	published := 0
	for _, event := range events {
		if err = h.publisher.Publish(ctx, event); err != nil {
			// keep what was already marked, retry the rest next run
			break
		}

		if err = uow.OutboxRepository().MarkPublished(ctx, event.ID()); err != nil {
			return published, err
		}

		published++
	}

	if commitErr := uow.Commit(ctx); commitErr != nil {
		return 0, commitErr
	}

	return published, err
}
