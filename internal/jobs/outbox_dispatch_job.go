package jobs

import (
	"context"
	"log/slog"

	"yolnext/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// outboxDispatchBatchSize caps how many events a single run drains.
const outboxDispatchBatchSize = 100

// OutboxDispatchJob manages the scheduled draining of the notification outbox.
// Runs every second to push unpublished status-changed events to the broker.
type OutboxDispatchJob struct {
	handler commands.DispatchOutboxCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxDispatchJob creates a new job for dispatching outbox events.
// Uses DispatchOutboxCommandHandler to drain the outbox every second.
func NewOutboxDispatchJob(handler commands.DispatchOutboxCommandHandler, logger *slog.Logger) *OutboxDispatchJob {
	return &OutboxDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "outbox_dispatch_job"),
	}
}

// Start begins the outbox dispatch job to run every second.
func (j *OutboxDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchOutboxCommand(outboxDispatchBatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch command creation failed", "error", err)
			return
		}

		published, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch job failed",
				"published", published, "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job started (running every second)")
	return nil
}

// Stop stops the outbox dispatch job.
func (j *OutboxDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job stopped")
}
