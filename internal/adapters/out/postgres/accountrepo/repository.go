package accountrepo

import (
	"context"
	"errors"
	"time"

	"haul/internal/core/domain/model/account"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
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

// Update saves an existing account to the database.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces zero values through; availability drops back to false on engage.
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID. Read FOR UPDATE so concurrent
// engagements of the same account serialize.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllSuspendedBefore retrieves accounts whose suspension started before the cutoff.
func (r *GormAccountRepository) GetAllSuspendedBefore(ctx context.Context, cutoff time.Time) ([]*account.Account, error) {
	var dtos []AccountDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "suspended AND suspended_at <= ?", cutoff).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		acc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}
