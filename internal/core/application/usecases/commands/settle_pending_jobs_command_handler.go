package commands

import (
	"context"
	"errors"
	"log/slog"

	"haul/internal/core/domain/model/kernel"
)

// SettlePendingJobsCommandHandler retries settlement for jobs stuck in a
// confirmed-pending state after a failed capture. Each job settles in its
// own transaction, so one bad hold never blocks the rest of the batch.
type SettlePendingJobsCommandHandler struct {
	uowFactory    JobAccountUoWFactory
	settleHandler SettleJobCommandHandler
	logger        *slog.Logger
}

// NewSettlePendingJobsCommandHandler creates a handler for the settlement sweep.
func NewSettlePendingJobsCommandHandler(
	uowFactory JobAccountUoWFactory,
	settleHandler SettleJobCommandHandler,
	logger *slog.Logger,
) SettlePendingJobsCommandHandler {
	return SettlePendingJobsCommandHandler{
		uowFactory:    uowFactory,
		settleHandler: settleHandler,
		logger:        logger.With("component", "settle_pending_jobs"),
	}
}

// Handle processes the settlement sweep command. Per-job failures are
// logged and joined into the returned error; the sweep always visits
// every pending job.
func (h *SettlePendingJobsCommandHandler) Handle(ctx context.Context, cmd SettlePendingJobsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pendingIDs, err := h.pendingJobIDs(ctx)
	if err != nil {
		return err
	}

	var settleErrs []error
	for _, jobID := range pendingIDs {
		settleCmd, cmdErr := NewSettleJobCommand(jobID)
		if cmdErr != nil {
			settleErrs = append(settleErrs, cmdErr)
			continue
		}

		if settleErr := h.settleHandler.Handle(ctx, settleCmd); settleErr != nil {
			h.logger.WarnContext(ctx, "settlement retry failed",
				"job_id", jobID.String(), "error", settleErr)
			settleErrs = append(settleErrs, settleErr)
		}
	}

	return errors.Join(settleErrs...)
}

func (h *SettlePendingJobsCommandHandler) pendingJobIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.JobRepository().GetAllAwaitingSettlement(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(pending))
	for _, theJob := range pending {
		ids = append(ids, theJob.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
