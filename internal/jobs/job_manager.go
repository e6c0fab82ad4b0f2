package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with seconds) of every job.
type Schedules struct {
	InfoRequestExpiry string
	OutboxRelay       string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiryJob *InfoRequestExpiryJob
	relayJob  *OutboxRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireHandler ExpireInfoRequestsHandler,
	relayHandler RelayOutboxHandler,
	schedules Schedules,
	batchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expiryJob: NewInfoRequestExpiryJob(expireHandler, schedules.InfoRequestExpiry, batchSize, logger),
		relayJob:  NewOutboxRelayJob(relayHandler, schedules.OutboxRelay, batchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start info request expiry job: %w", err)
	}

	if err := jm.relayJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.expiryJob.Stop()
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.relayJob.Stop()
	jm.expiryJob.Stop()
}
