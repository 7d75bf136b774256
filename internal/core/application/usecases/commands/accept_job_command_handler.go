package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
)

// AcceptJobCommandHandler handles the business logic for a mover accepting
// an open job. Accepting opens a payment hold for the full price against the
// poster's funding source; on hold failure the whole transition rolls back
// and the job stays Open.
type AcceptJobCommandHandler struct {
	uowFactory JobAccountUoWFactory
	gateway    ports.LedgerGateway
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAcceptJobCommandHandler creates a handler for job acceptance.
func NewAcceptJobCommandHandler(
	uowFactory JobAccountUoWFactory,
	gateway ports.LedgerGateway,
	notifier ports.Notifier,
	logger *slog.Logger,
) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
		logger:     logger.With("component", "accept_job"),
	}
}

// Handle processes the job acceptance command.
//
// A hold is only opened when the job does not carry one yet, so a retried
// accept never double-holds the poster's funds. The poster is notified after
// the transaction commits; notification failure is logged, never surfaced.
func (h *AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
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

	mover, err := accountRepo.Get(ctx, cmd.MoverID())
	if err != nil {
		return err
	}

	poster, err := accountRepo.Get(ctx, theJob.PosterID())
	if err != nil {
		return err
	}

	if err = mover.Engage(); err != nil {
		return err
	}

	if err = theJob.Assign(cmd.MoverID(), time.Now().UTC()); err != nil {
		return err
	}

	if poster.PayerRef() == "" {
		return errs.NewPolicyViolationError("poster has no funding source on file")
	}

	if theJob.HoldRef() == "" {
		holdRef, holdErr := h.gateway.OpenHold(ctx, poster.PayerRef(), theJob.Price(), theJob.Title())
		if holdErr != nil {
			return holdErr
		}

		if err = theJob.AttachHold(holdRef); err != nil {
			return err
		}
	}

	if err = jobRepo.Update(ctx, theJob); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, mover); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	message := fmt.Sprintf("%s accepted your job %q.", mover.DisplayName(), theJob.Title())
	if err = h.notifier.Send(ctx, poster.Phone(), message); err != nil {
		h.logger.WarnContext(ctx, "poster notification failed",
			"job_id", theJob.ID().String(), "error", err)
	}

	return nil
}
