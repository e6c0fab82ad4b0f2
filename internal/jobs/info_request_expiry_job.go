package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpireInfoRequestsHandler runs one expiry sweep.
type ExpireInfoRequestsHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireInfoRequestsCommand) (commands.ExpireInfoRequestsResult, error)
}

// InfoRequestExpiryJob expires overdue info requests and escalates the
// priority of the affected applications.
type InfoRequestExpiryJob struct {
	handler   ExpireInfoRequestsHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewInfoRequestExpiryJob(
	handler ExpireInfoRequestsHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *InfoRequestExpiryJob {
	return &InfoRequestExpiryJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "info_request_expiry_job"),
	}
}

// Run performs one sweep as of now.
func (j *InfoRequestExpiryJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpireInfoRequestsCommand(time.Now(), j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid expiry sweep command", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Info request expiry sweep failed", "error", err)
	}
	if result.Requests > 0 || result.Skipped > 0 {
		j.logger.InfoContext(ctx, "Expired overdue info requests",
			"applications", result.Applications,
			"requests", result.Requests,
			"skipped", result.Skipped)
	}
}

// Start schedules the sweep.
func (j *InfoRequestExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Info request expiry job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *InfoRequestExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Info request expiry job stopped")
}
