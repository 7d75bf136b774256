package jobs

import (
	"context"
	"log/slog"

	"haul/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SettlementSweepJob retries hold captures for jobs where both sides have
// confirmed but the money has not moved yet. Runs every minute.
type SettlementSweepJob struct {
	handler commands.SettlePendingJobsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSettlementSweepJob creates the settlement retry sweep.
func NewSettlementSweepJob(handler commands.SettlePendingJobsCommandHandler, logger *slog.Logger) *SettlementSweepJob {
	return &SettlementSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "settlement_sweep_job"),
	}
}

// Start begins the settlement sweep to run every minute.
func (j *SettlementSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSettlePendingJobsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Settlement sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement sweep job started (running every minute)")
	return nil
}

// Stop stops the settlement sweep job.
func (j *SettlementSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement sweep job stopped")
}
