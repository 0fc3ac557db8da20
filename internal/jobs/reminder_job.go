package jobs

import (
	"context"
	"log/slog"

	"waterdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReminderJob periodically notifies operators about orders that stayed
// unconfirmed past the reminder threshold.
type ReminderJob struct {
	handler commands.RemindStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReminderJob creates a job that runs the stale-order reminder sweep
// every 15 minutes.
func NewReminderJob(handler commands.RemindStaleOrdersCommandHandler, logger *slog.Logger) *ReminderJob {
	return &ReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reminder_job"),
	}
}

// Start begins the reminder sweep schedule.
func (j *ReminderJob) Start() error {
	_, err := j.cron.AddFunc("@every 15m", func() {
		ctx := context.Background()
		cmd := commands.NewRemindStaleOrdersCommand()

		reminded, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reminder sweep failed", "error", err)
			return
		}
		if reminded > 0 {
			j.logger.InfoContext(ctx, "Reminder sweep finished", "orders", reminded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reminder job started (running every 15 minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *ReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reminder job stopped")
}
