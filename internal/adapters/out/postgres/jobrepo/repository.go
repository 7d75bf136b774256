package jobrepo

import (
	"context"
	"errors"

	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces zero values through; confirmation flags start false.
	result := r.db.WithContext(ctx).Model(&JobDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID. Inside a transaction the row is read
// FOR UPDATE so concurrent lifecycle transitions on the same job
// serialize; the loser re-reads the committed state.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAwaitingSettlement retrieves jobs where both sides confirmed but the
// hold capture has not succeeded yet.
func (r *GormJobRepository) GetAllAwaitingSettlement(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "poster_confirmed AND mover_confirmed AND NOT completed AND NOT in_conflict").Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
