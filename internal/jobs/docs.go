// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the job lifecycle.
//
// # Available Jobs
//
// 1. SettlementSweepJob - Runs every minute to retry hold captures for jobs
// where both sides confirmed but settlement has not succeeded yet
// 2. UnbanSweepJob - Runs every hour to lift suspensions that have served
// their full ban duration
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(settlePendingHandler, unbanHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both sweeps are retry loops over external collaborators, so failures are
// logged and left for the next run instead of aborting the schedule.
package jobs
