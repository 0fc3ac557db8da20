package jobs

import (
	"fmt"
	"log/slog"

	"waterdelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reminderJob   *ReminderJob
	autoCancelJob *AutoCancelJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	remindHandler commands.RemindStaleOrdersCommandHandler,
	autoCancelHandler commands.AutoCancelStaleOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reminderJob:   NewReminderJob(remindHandler, logger),
		autoCancelJob: NewAutoCancelJob(autoCancelHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start reminder job: %w", err)
	}

	if err := jm.autoCancelJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.reminderJob.Stop()
		return fmt.Errorf("failed to start auto-cancel job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reminderJob.Stop()
	jm.autoCancelJob.Stop()
}
