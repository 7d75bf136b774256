package jobs

import (
	"context"
	"log/slog"

	"haul/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// UnbanSweepJob lifts suspensions that have served the full ban duration.
// Runs every hour.
type UnbanSweepJob struct {
	handler commands.UnbanAccountsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnbanSweepJob creates the suspension-lifting sweep.
func NewUnbanSweepJob(handler commands.UnbanAccountsCommandHandler, logger *slog.Logger) *UnbanSweepJob {
	return &UnbanSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "unban_sweep_job"),
	}
}

// Start begins the unban sweep to run every hour.
func (j *UnbanSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewUnbanAccountsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Unban sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unban sweep job started (running every hour)")
	return nil
}

// Stop stops the unban sweep job.
func (j *UnbanSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unban sweep job stopped")
}
