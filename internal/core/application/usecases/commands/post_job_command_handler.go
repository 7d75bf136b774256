package commands

import (
	"context"
	"log/slog"
	"time"

	"haul/internal/core/domain/model/job"
	"haul/internal/core/ports"
)

// PostJobCommandHandler handles the business logic for posting a job.
// Posting engages the poster: they cannot post or accept another job until
// this one settles or falls into conflict.
//
// Addresses are geocoded before the transaction opens. A geocoding failure
// aborts the post; nothing is persisted.
type PostJobCommandHandler struct {
	uowFactory JobAccountUoWFactory
	geocoder   ports.Geocoder
	logger     *slog.Logger
}

// NewPostJobCommandHandler creates a handler for job posting.
func NewPostJobCommandHandler(
	uowFactory JobAccountUoWFactory,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) PostJobCommandHandler {
	return PostJobCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger.With("component", "post_job"),
	}
}

// Handle processes the job posting command. Fails with a policy violation
// when the poster is suspended or already engaged in a job.
func (h *PostJobCommandHandler) Handle(ctx context.Context, cmd PostJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	origin, err := h.geocoder.Resolve(ctx, cmd.OriginAddress())
	if err != nil {
		h.logger.WarnContext(ctx, "origin geocoding failed",
			"job_id", cmd.JobID().String(), "error", err)
		return err
	}

	destination, err := h.geocoder.Resolve(ctx, cmd.DestinationAddress())
	if err != nil {
		h.logger.WarnContext(ctx, "destination geocoding failed",
			"job_id", cmd.JobID().String(), "error", err)
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	poster, err := accountRepo.Get(ctx, cmd.PosterID())
	if err != nil {
		return err
	}

	if err = poster.Engage(); err != nil {
		return err
	}

	newJob, err := job.NewJob(cmd.JobID(), cmd.PosterID(), cmd.Title(),
		cmd.Description(), cmd.ContactPhone(), cmd.OriginAddress(),
		cmd.DestinationAddress(), cmd.Price(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = newJob.AttachRoute(origin, destination); err != nil {
		return err
	}

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, poster); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
