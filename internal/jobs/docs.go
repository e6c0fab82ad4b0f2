// Package jobs provides scheduled background tasks for the marketplace service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The jobs are ordinary callers of the command handlers; they hold no state of
// their own.
//
// # Available Jobs
//
// 1. InfoRequestExpiryJob - expires info requests past their due date and raises the priority of the application
// 2. OutboxRelayJob - publishes lifecycle events stored in the outbox to Kafka
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, relayHandler, jobs.Schedules{
//		InfoRequestExpiry: "0 */5 * * * *",
//		OutboxRelay:       "*/5 * * * * *",
//	}, 100, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A stale write during the sweep is counted as skipped; the next run picks the application up again
// - A failed relay leaves its messages unpublished until their lease expires, so delivery is at least once
// - A run that is still going when the next tick fires is skipped
// - Failed job starts will stop any already running jobs
package jobs
