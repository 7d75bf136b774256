package ports

import (
	"context"

	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such job exists.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllAwaitingSettlement retrieves jobs where both sides have
	// confirmed but the hold capture has not succeeded yet. Used by the
	// settlement retry sweep.
	GetAllAwaitingSettlement(ctx context.Context) ([]*job.Job, error)
}
