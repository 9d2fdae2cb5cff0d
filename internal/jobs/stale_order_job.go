package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob manages the scheduled cancellation of abandoned orders.
// Runs every minute to cancel orders that stayed pending past the timeout.
type StaleOrderJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	timeout time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates a new job for reaping stale orders.
// Uses CancelStaleOrdersCommandHandler to cancel every order that has been
// pending for longer than the given timeout.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	timeout time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		timeout: timeout,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(time.Now().Add(-j.timeout))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed to build command", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)",
		"timeout", j.timeout)
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
