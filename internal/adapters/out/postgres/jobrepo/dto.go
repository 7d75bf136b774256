// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// It implements the repository pattern for the job aggregate, handling the conversion
// between domain entities and their relational representation.
package jobrepo

import (
	"time"

	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Route coordinates are nullable so rows written before a route is
// attached still restore.
type JobDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PosterID           uuid.UUID  `gorm:"type:uuid;index"`
	MoverID            *uuid.UUID `gorm:"type:uuid;index"`
	Title              string
	Description        string
	ContactPhone       string
	OriginAddress      string
	DestinationAddress string
	OriginLat          *float64
	OriginLng          *float64
	DestinationLat     *float64
	DestinationLng     *float64
	DistanceKm         float64
	Price              int64
	HoldRef            string
	PosterConfirmed    bool
	MoverConfirmed     bool
	Completed          bool
	InConflict         bool
	CreatedAt          time.Time
	AcceptedAt         *time.Time
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var moverID *uuid.UUID
	if id := aggregate.MoverID(); id != nil {
		raw := id.Bytes()
		moverID = &raw
	}

	dto := JobDTO{
		ID:                 aggregate.ID().Bytes(),
		PosterID:           aggregate.PosterID().Bytes(),
		MoverID:            moverID,
		Title:              aggregate.Title(),
		Description:        aggregate.Description(),
		ContactPhone:       aggregate.ContactPhone(),
		OriginAddress:      aggregate.OriginAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
		DistanceKm:         aggregate.DistanceKm(),
		Price:              aggregate.Price(),
		HoldRef:            aggregate.HoldRef(),
		PosterConfirmed:    aggregate.IsPosterConfirmed(),
		MoverConfirmed:     aggregate.IsMoverConfirmed(),
		Completed:          aggregate.IsCompleted(),
		InConflict:         aggregate.IsInConflict(),
		CreatedAt:          aggregate.CreatedAt(),
		AcceptedAt:         aggregate.AcceptedAt(),
	}

	if p := aggregate.Origin(); p != nil {
		lat, lng := p.Lat(), p.Lng()
		dto.OriginLat, dto.OriginLng = &lat, &lng
	}
	if p := aggregate.Destination(); p != nil {
		lat, lng := p.Lat(), p.Lng()
		dto.DestinationLat, dto.DestinationLng = &lat, &lng
	}

	return dto
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including confirmation flags using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	posterID, err := kernel.UUIDFromBytes(dto.PosterID[:])
	if err != nil {
		return nil, err
	}

	var moverID *kernel.UUID
	if dto.MoverID != nil {
		mID, moverErr := kernel.UUIDFromBytes((*dto.MoverID)[:])
		if moverErr != nil {
			return nil, moverErr
		}

		moverID = &mID
	}

	origin, err := pointFromColumns(dto.OriginLat, dto.OriginLng)
	if err != nil {
		return nil, err
	}

	destination, err := pointFromColumns(dto.DestinationLat, dto.DestinationLng)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id,
		posterID,
		moverID,
		dto.Title,
		dto.Description,
		dto.ContactPhone,
		dto.OriginAddress,
		dto.DestinationAddress,
		origin,
		destination,
		dto.DistanceKm,
		dto.Price,
		dto.HoldRef,
		dto.PosterConfirmed,
		dto.MoverConfirmed,
		dto.Completed,
		dto.InConflict,
		dto.CreatedAt,
		dto.AcceptedAt,
	)
}

func pointFromColumns(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}

	p, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
