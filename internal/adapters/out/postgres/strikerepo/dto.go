// Package strikerepo provides data transfer objects and mapping functions for strike persistence.
// Strikes are append-only records, so the repository exposes no update path.
package strikerepo

import (
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/strike"

	"github.com/google/uuid"
)

// StrikeDTO represents the database structure for persisting strike records.
type StrikeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgainstID uuid.UUID `gorm:"type:uuid;index"`
	IssuedBy  uuid.UUID `gorm:"type:uuid"`
	JobID     uuid.UUID `gorm:"type:uuid"`
	Comment   string
	CreatedAt time.Time
}

// TableName specifies the database table name for strike entities.
func (StrikeDTO) TableName() string {
	return "strikes"
}

// fromDomain converts a strike record to its database representation.
func fromDomain(record *strike.Strike) StrikeDTO {
	return StrikeDTO{
		ID:        record.ID().Bytes(),
		AgainstID: record.AgainstID().Bytes(),
		IssuedBy:  record.IssuedBy().Bytes(),
		JobID:     record.JobID().Bytes(),
		Comment:   record.Comment(),
		CreatedAt: record.CreatedAt(),
	}
}

// toDomain converts a database DTO to a strike record.
func toDomain(dto StrikeDTO) (*strike.Strike, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	againstID, err := kernel.UUIDFromBytes(dto.AgainstID[:])
	if err != nil {
		return nil, err
	}

	issuedBy, err := kernel.UUIDFromBytes(dto.IssuedBy[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return strike.RestoreStrike(id, againstID, issuedBy, jobID, dto.Comment, dto.CreatedAt)
}
