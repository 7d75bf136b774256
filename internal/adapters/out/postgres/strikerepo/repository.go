package strikerepo

import (
	"context"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/strike"

	"gorm.io/gorm"
)

// GormStrikeRepository implements StrikeRepository using GORM.
type GormStrikeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStrikeRepository creates a new GORM strike repository.
func NewGormStrikeRepository(db *gorm.DB, tracker aggregateTracker) *GormStrikeRepository {
	return &GormStrikeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new strike to the database.
func (r *GormStrikeRepository) Add(ctx context.Context, record *strike.Strike) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// CountAgainst returns how many strikes have been recorded against a user.
func (r *GormStrikeRepository) CountAgainst(ctx context.Context, userID kernel.UUID) (int, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&StrikeDTO{}).
		Where("against_id = ?", userID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetAllAgainst retrieves every strike recorded against a user, newest first.
func (r *GormStrikeRepository) GetAllAgainst(ctx context.Context, userID kernel.UUID) ([]*strike.Strike, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StrikeDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "against_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	strikes := make([]*strike.Strike, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		strikes = append(strikes, s)
	}

	return strikes, nil
}
