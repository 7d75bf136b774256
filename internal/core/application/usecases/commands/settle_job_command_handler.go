package commands

import (
	"context"
	"fmt"
	"log/slog"

	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/services"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
	"haul/internal/pkg/metrics"
)

// SettleJobCommandHandler captures the payment hold of a fully confirmed job
// and transitions it to Completed. The platform fee is retained from the
// captured amount and the remainder routed to the mover's payee profile.
//
// Capture failures leave the job in its confirmed-pending state and surface
// as a SettlementError so the sweep can retry. Before capturing, the hold's
// processor-side state is checked: a hold that was already captured by an
// earlier attempt is finalized locally, never charged twice.
type SettleJobCommandHandler struct {
	uowFactory JobAccountUoWFactory
	gateway    ports.LedgerGateway
	calculator services.SettlementCalculator
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewSettleJobCommandHandler creates a handler for job settlement.
func NewSettleJobCommandHandler(
	uowFactory JobAccountUoWFactory,
	gateway ports.LedgerGateway,
	calculator services.SettlementCalculator,
	notifier ports.Notifier,
	logger *slog.Logger,
) SettleJobCommandHandler {
	return SettleJobCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		calculator: calculator,
		notifier:   notifier,
		logger:     logger.With("component", "settle_job"),
	}
}

// Handle processes the settlement command.
func (h *SettleJobCommandHandler) Handle(ctx context.Context, cmd SettleJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	accountRepo := uow.AccountRepository()

	theJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if theJob.IsCompleted() {
		return nil
	}

	if !theJob.BothConfirmed() {
		return errs.NewInvalidTransitionError("settle", theJob.Status().String())
	}

	if theJob.HoldRef() == "" {
		return errs.NewSettlementError("", errs.ErrValueIsRequired)
	}

	mover, err := accountRepo.Get(ctx, *theJob.MoverID())
	if err != nil {
		return err
	}

	if mover.PayeeRef() == "" {
		return errs.NewSettlementError(theJob.HoldRef(),
			errs.NewPolicyViolationError("mover has no payout profile"))
	}

	if err = h.capture(ctx, theJob, mover.PayeeRef()); err != nil {
		metrics.SettlementFailures.Inc()
		return err
	}

	if err = theJob.MarkSettled(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, theJob); err != nil {
		return err
	}

	poster, err := accountRepo.Get(ctx, theJob.PosterID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.JobsSettled.Inc()

	message := fmt.Sprintf("Your job %q is complete and payment has been released.", theJob.Title())
	if err = h.notifier.Send(ctx, poster.Phone(), message); err != nil {
		h.logger.WarnContext(ctx, "poster notification failed",
			"job_id", theJob.ID().String(), "error", err)
	}

	return nil
}

func (h *SettleJobCommandHandler) capture(ctx context.Context, theJob *job.Job, payeeRef string) error {
	state, err := h.gateway.RetrieveHold(ctx, theJob.HoldRef())
	if err != nil {
		return errs.NewSettlementError(theJob.HoldRef(), err)
	}

	switch state {
	case ports.HoldStateCaptured:
		// An earlier attempt already collected the funds; finalize locally.
		h.logger.InfoContext(ctx, "hold already captured, finalizing without charge",
			"job_id", theJob.ID().String(), "hold_ref", theJob.HoldRef())
		return nil
	case ports.HoldStateOpen:
		fee := h.calculator.Fee(theJob.Price())
		_, err = h.gateway.CaptureHold(ctx, theJob.HoldRef(), theJob.Price(), fee, payeeRef)
		if err != nil {
			return errs.NewSettlementError(theJob.HoldRef(), err)
		}
		return nil
	default:
		return errs.NewSettlementError(theJob.HoldRef(),
			fmt.Errorf("hold is not capturable: state %s", state))
	}
}
