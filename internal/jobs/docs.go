// Package jobs provides scheduled background tasks.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// OutboxRelayJob publishes domain events stored in the outbox table
// (order.submitted, order.advanced, complaint.raised, complaint.resolved) to
// the configured broker. Its schedule comes from OUTBOX_SCHEDULE and defaults
// to every five seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, cfg.OutboxSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty outbox is expected and not logged. Publish failures are logged and
// the failed message is retried on the next run.
package jobs
