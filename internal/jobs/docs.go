// Package jobs provides scheduled background tasks for the shipment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace workflow.
//
// # Available Jobs
//
// 1. OutboxDispatchJob - Runs every second to drain unpublished status-changed
// events from the transactional outbox to the Kafka broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchOutboxHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. This keeps notification latency low without coupling request
// handling to the broker.
//
// # Error Handling
//
// A broker failure mid-batch is logged and the remaining events stay in the
// outbox for the next run. Delivery is at-least-once; consumers deduplicate
// by event ID.
package jobs
