package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RelayOutboxHandler publishes one batch of outbox messages.
type RelayOutboxHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob drains the outbox to the broker. A run keeps relaying batches
// until one comes back short, so a backlog does not wait for the next tick.
type OutboxRelayJob struct {
	handler   RelayOutboxHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler RelayOutboxHandler, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Run relays until the outbox is drained or a batch fails. It returns the
// number of messages published.
func (j *OutboxRelayJob) Run(ctx context.Context) int {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid outbox relay command", "error", err)
		return 0
	}

	total := 0
	for {
		n, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Unpublished rows stay in the outbox for the next run.
			j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err, "published", total)
			return total
		}
		total += n
		if n < j.batchSize || ctx.Err() != nil {
			break
		}
	}

	if total > 0 {
		j.logger.InfoContext(ctx, "Relayed lifecycle events", "published", total)
	}
	return total
}

// Start schedules the relay.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
