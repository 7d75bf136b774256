package jobs

import (
	"fmt"
	"log/slog"

	"haul/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementSweepJob *SettlementSweepJob
	unbanSweepJob      *UnbanSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	settlePendingHandler commands.SettlePendingJobsCommandHandler,
	unbanHandler commands.UnbanAccountsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementSweepJob: NewSettlementSweepJob(settlePendingHandler, logger),
		unbanSweepJob:      NewUnbanSweepJob(unbanHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement sweep job: %w", err)
	}

	if err := jm.unbanSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.settlementSweepJob.Stop()
		return fmt.Errorf("failed to start unban sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.unbanSweepJob.Stop()
	jm.settlementSweepJob.Stop()
}
