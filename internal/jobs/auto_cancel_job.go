package jobs

import (
	"context"
	"log/slog"

	"waterdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoCancelJob periodically cancels orders that stayed unconfirmed past
// the cancellation threshold.
type AutoCancelJob struct {
	handler commands.AutoCancelStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoCancelJob creates a job that runs the auto-cancellation sweep
// every 30 minutes.
func NewAutoCancelJob(handler commands.AutoCancelStaleOrdersCommandHandler, logger *slog.Logger) *AutoCancelJob {
	return &AutoCancelJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "auto_cancel_job"),
	}
}

// Start begins the auto-cancellation schedule.
func (j *AutoCancelJob) Start() error {
	_, err := j.cron.AddFunc("@every 30m", func() {
		ctx := context.Background()
		cmd := commands.NewAutoCancelStaleOrdersCommand()

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Cancellations commit before side effects run, so a partial
			// failure may still have cancelled orders.
			j.logger.ErrorContext(ctx, "Auto-cancel sweep failed", "cancelled", cancelled, "error", err)
			return
		}
		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Auto-cancel sweep finished", "orders", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-cancel job started (running every 30 minutes)")
	return nil
}

// Stop stops the auto-cancel job.
func (j *AutoCancelJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-cancel job stopped")
}
