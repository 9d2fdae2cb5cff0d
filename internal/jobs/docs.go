// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel orders abandoned in pending status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, timeout, logger)
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
// The stale order job uses the cron expression "0 * * * * *" which means it
// runs at the start of every minute. Orders left pending past the configured
// timeout are cancelled in a single transaction per run.
//
// # Error Handling
//
// - The reaper logs failures and retries on the next tick
// - A run that cancels nothing is silent; successful reaps log the count
package jobs
