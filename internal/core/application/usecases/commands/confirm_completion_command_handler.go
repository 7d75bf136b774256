package commands

import (
	"context"
	"time"

	"haul/internal/pkg/errs"
)

// ConfirmCompletionCommandHandler handles one party's completion
// confirmation. The confirming party is released from the job immediately;
// once both sides have confirmed, settlement is triggered.
//
// The confirmation is committed in its own transaction before settlement
// runs, so a failed capture never loses a recorded confirmation. The job
// then stays in its confirmed-pending state and the settlement sweep
// retries the capture.
type ConfirmCompletionCommandHandler struct {
	uowFactory    JobAccountUoWFactory
	settleHandler SettleJobCommandHandler
	minConfirmAge time.Duration
}

// NewConfirmCompletionCommandHandler creates a handler for completion
// confirmations. minConfirmAge gates premature confirmations: a job must
// have been accepted at least that long ago. Zero disables the gate.
func NewConfirmCompletionCommandHandler(
	uowFactory JobAccountUoWFactory,
	settleHandler SettleJobCommandHandler,
	minConfirmAge time.Duration,
) ConfirmCompletionCommandHandler {
	return ConfirmCompletionCommandHandler{
		uowFactory:    uowFactory,
		settleHandler: settleHandler,
		minConfirmAge: minConfirmAge,
	}
}

// Handle processes the confirmation command. Re-confirming an already
// confirmed side is a no-op success.
func (h *ConfirmCompletionCommandHandler) Handle(ctx context.Context, cmd ConfirmCompletionCommand) error {
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

	var alreadyConfirmed bool
	switch cmd.Side() {
	case SideMover:
		alreadyConfirmed = theJob.IsMoverConfirmed()
	case SidePoster:
		alreadyConfirmed = theJob.IsPosterConfirmed()
	default:
		return ErrSideIsInvalid
	}

	// The age gate only applies to a first confirmation; repeating an
	// already recorded one stays a no-op success.
	if !alreadyConfirmed && h.minConfirmAge > 0 && theJob.AcceptedAt() != nil {
		elapsed, ageErr := theJob.TimeSinceAcceptance(time.Now().UTC())
		if ageErr != nil {
			return ageErr
		}
		if elapsed < h.minConfirmAge {
			return errs.NewPolicyViolationError("job was accepted too recently to confirm completion")
		}
	}

	var changed bool
	if cmd.Side() == SideMover {
		changed, err = theJob.ConfirmByMover()
	} else {
		changed, err = theJob.ConfirmByPoster()
	}
	if err != nil {
		return err
	}

	if changed {
		confirmerID := theJob.PosterID()
		if cmd.Side() == SideMover {
			confirmerID = *theJob.MoverID()
		}

		confirmer, getErr := accountRepo.Get(ctx, confirmerID)
		if getErr != nil {
			return getErr
		}

		confirmer.Release()
		if err = accountRepo.Update(ctx, confirmer); err != nil {
			return err
		}

		if err = jobRepo.Update(ctx, theJob); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if theJob.BothConfirmed() && !theJob.IsCompleted() {
		settleCmd, settleErr := NewSettleJobCommand(cmd.JobID())
		if settleErr != nil {
			return settleErr
		}

		return h.settleHandler.Handle(ctx, settleCmd)
	}

	return nil
}
