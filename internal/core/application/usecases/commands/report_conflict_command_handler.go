package commands

import (
	"context"
	"log/slog"
	"time"

	"haul/internal/core/domain/model/account"
	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/strike"
	"haul/internal/core/domain/services"
	"haul/internal/core/ports"
	"haul/internal/pkg/errs"
)

// ReportConflictCommandHandler handles a dispute between the two parties of
// a job. The job enters the terminal Conflict state, both parties are
// released from engagement, and a strike is recorded against the named
// party. Funds held for the job are left untouched; their disposition is an
// administrative action outside this system.
//
// When the strike count crosses the policy threshold the struck account is
// suspended and its login deactivated.
type ReportConflictCommandHandler struct {
	uowFactory   UoWFactory
	policy       services.StrikePolicy
	identity     ports.IdentityService
	minReportAge time.Duration
	logger       *slog.Logger
}

// NewReportConflictCommandHandler creates a handler for conflict reports.
// minReportAge gates premature disputes the same way confirmations are
// gated; zero disables the gate.
func NewReportConflictCommandHandler(
	uowFactory UoWFactory,
	policy services.StrikePolicy,
	identity ports.IdentityService,
	minReportAge time.Duration,
	logger *slog.Logger,
) ReportConflictCommandHandler {
	return ReportConflictCommandHandler{
		uowFactory:   uowFactory,
		policy:       policy,
		identity:     identity,
		minReportAge: minReportAge,
		logger:       logger.With("component", "report_conflict"),
	}
}

// Handle processes the conflict report command.
func (h *ReportConflictCommandHandler) Handle(ctx context.Context, cmd ReportConflictCommand) error {
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
	strikeRepo := uow.StrikeRepository()

	theJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if !isParticipant(theJob, cmd.ReporterID()) {
		return errs.NewPolicyViolationError("reporter is not a party of the job")
	}
	if !isParticipant(theJob, cmd.AgainstID()) {
		return errs.NewPolicyViolationError("struck user is not a party of the job")
	}
	if cmd.ReporterID().IsEqual(cmd.AgainstID()) {
		return errs.NewPolicyViolationError("reporter cannot strike themselves")
	}

	if h.minReportAge > 0 && theJob.AcceptedAt() != nil {
		elapsed, ageErr := theJob.TimeSinceAcceptance(time.Now().UTC())
		if ageErr != nil {
			return ageErr
		}
		if elapsed < h.minReportAge {
			return errs.NewPolicyViolationError("job was accepted too recently to report a conflict")
		}
	}

	if err = theJob.MarkConflict(); err != nil {
		return err
	}

	poster, err := accountRepo.Get(ctx, theJob.PosterID())
	if err != nil {
		return err
	}
	poster.Release()

	var mover *account.Account
	if theJob.MoverID() != nil {
		if mover, err = accountRepo.Get(ctx, *theJob.MoverID()); err != nil {
			return err
		}
		mover.Release()
	}

	now := time.Now().UTC()
	record, err := strike.NewStrike(kernel.NewUUID(), cmd.AgainstID(),
		cmd.ReporterID(), cmd.JobID(), cmd.Comment(), now)
	if err != nil {
		return err
	}

	if err = strikeRepo.Add(ctx, record); err != nil {
		return err
	}

	count, err := strikeRepo.CountAgainst(ctx, cmd.AgainstID())
	if err != nil {
		return err
	}

	suspended := false
	if h.policy.ShouldSuspend(count) {
		struck := poster
		if mover != nil && cmd.AgainstID().IsEqual(mover.ID()) {
			struck = mover
		}
		struck.Suspend(now)
		suspended = true
	}

	if err = jobRepo.Update(ctx, theJob); err != nil {
		return err
	}
	if err = accountRepo.Update(ctx, poster); err != nil {
		return err
	}
	if mover != nil {
		if err = accountRepo.Update(ctx, mover); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if suspended {
		if err = h.identity.Deactivate(ctx, cmd.AgainstID()); err != nil {
			h.logger.WarnContext(ctx, "login deactivation failed",
				"account_id", cmd.AgainstID().String(), "error", err)
		}
	}

	return nil
}

func isParticipant(theJob *job.Job, id kernel.UUID) bool {
	if id.IsEqual(theJob.PosterID()) {
		return true
	}
	return theJob.MoverID() != nil && id.IsEqual(*theJob.MoverID())
}
