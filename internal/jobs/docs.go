// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps over stale orders.
//
// # Available Jobs
//
// 1. ReminderJob - Notifies operators about orders that stayed unconfirmed past the reminder threshold
// 2. AutoCancelJob - Cancels orders that stayed unconfirmed past the cancellation threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindHandler, autoCancelHandler, logger)
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
// The reminder job runs every 15 minutes and the auto-cancel job every 30
// minutes. Both sweeps are idempotent: a missed or doubled run only shifts
// when an order is picked up, never what happens to it.
//
// # Error Handling
//
// Both jobs log failures and keep running; a failing sweep is retried on
// the next tick. Failed job starts will stop any already running jobs.
package jobs
