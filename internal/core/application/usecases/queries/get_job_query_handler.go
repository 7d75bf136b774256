package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"haul/internal/core/domain/model/job"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/errs"
)

// GetJobQueryHandler retrieves one job's detail. The row is rehydrated into
// the job aggregate so the status and label are derived by the same logic
// the lifecycle transitions use.
type GetJobQueryHandler struct {
	db            *gorm.DB
	minConfirmAge time.Duration
}

// NewGetJobQueryHandler creates a handler for job detail queries.
// minConfirmAge mirrors the confirmation gate so the response can tell the
// caller when confirming becomes possible.
func NewGetJobQueryHandler(db *gorm.DB, minConfirmAge time.Duration) GetJobQueryHandler {
	return GetJobQueryHandler{db: db, minConfirmAge: minConfirmAge}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the job
// does not exist.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (GetJobQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			poster_id,
			mover_id,
			title,
			description,
			contact_phone,
			origin_address,
			destination_address,
			origin_lat,
			origin_lng,
			destination_lat,
			destination_lng,
			distance_km,
			price,
			hold_ref,
			poster_confirmed,
			mover_confirmed,
			completed,
			in_conflict,
			created_at,
			accepted_at
		FROM jobs
		WHERE id = ?
	`, query.JobID().Bytes()).Row()

	var (
		id, posterID                 uuid.UUID
		moverID                      uuid.NullUUID
		title, description           string
		contactPhone                 string
		originAddress, destAddress   string
		originLat, originLng         sql.NullFloat64
		destLat, destLng             sql.NullFloat64
		distanceKm                   float64
		price                        int64
		holdRef                      sql.NullString
		posterConfirmed              bool
		moverConfirmed               bool
		completed, inConflict        bool
		createdAt                    time.Time
		acceptedAt                   sql.NullTime
	)

	err := row.Scan(&id, &posterID, &moverID, &title, &description,
		&contactPhone, &originAddress, &destAddress,
		&originLat, &originLng, &destLat, &destLng,
		&distanceKm, &price, &holdRef,
		&posterConfirmed, &moverConfirmed, &completed, &inConflict,
		&createdAt, &acceptedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetJobQueryResponse{}, errs.NewObjectNotFoundError("jobID", query.JobID())
		}
		return GetJobQueryResponse{}, err
	}

	theJob, err := restoreJobFromRow(id, posterID, moverID, title, description,
		contactPhone, originAddress, destAddress, originLat, originLng,
		destLat, destLng, distanceKm, price, holdRef,
		posterConfirmed, moverConfirmed, completed, inConflict,
		createdAt, acceptedAt)
	if err != nil {
		return GetJobQueryResponse{}, err
	}

	status := theJob.Status()
	resp := GetJobQueryResponse{
		ID:                 theJob.ID(),
		PosterID:           theJob.PosterID(),
		MoverID:            theJob.MoverID(),
		Title:              theJob.Title(),
		Description:        theJob.Description(),
		ContactPhone:       theJob.ContactPhone(),
		OriginAddress:      theJob.OriginAddress(),
		DestinationAddress: theJob.DestinationAddress(),
		Origin:             theJob.Origin(),
		Destination:        theJob.Destination(),
		DistanceKm:         theJob.DistanceKm(),
		Price:              theJob.Price(),
		Status:             status.String(),
		StatusLabel:        status.Label(),
		PosterConfirmed:    theJob.IsPosterConfirmed(),
		MoverConfirmed:     theJob.IsMoverConfirmed(),
		Completed:          theJob.IsCompleted(),
		InConflict:         theJob.IsInConflict(),
		CreatedAt:          theJob.CreatedAt(),
		AcceptedAt:         theJob.AcceptedAt(),
	}

	if !status.IsTerminal() && theJob.AcceptedAt() != nil {
		elapsed, ageErr := theJob.TimeSinceAcceptance(time.Now().UTC())
		if ageErr == nil && elapsed < h.minConfirmAge {
			resp.ConfirmableIn = h.minConfirmAge - elapsed
		}
	}

	return resp, nil
}

func restoreJobFromRow(
	id, posterID uuid.UUID,
	moverID uuid.NullUUID,
	title, description, contactPhone, originAddress, destAddress string,
	originLat, originLng, destLat, destLng sql.NullFloat64,
	distanceKm float64,
	price int64,
	holdRef sql.NullString,
	posterConfirmed, moverConfirmed, completed, inConflict bool,
	createdAt time.Time,
	acceptedAt sql.NullTime,
) (*job.Job, error) {
	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	posterUUID, err := kernel.UUIDFromBytes(posterID[:])
	if err != nil {
		return nil, err
	}

	var moverUUID *kernel.UUID
	if moverID.Valid {
		m, mErr := kernel.UUIDFromBytes(moverID.UUID[:])
		if mErr != nil {
			return nil, mErr
		}
		moverUUID = &m
	}

	var origin, destination *kernel.GeoPoint
	if originLat.Valid && originLng.Valid {
		p, pErr := kernel.NewGeoPoint(originLat.Float64, originLng.Float64)
		if pErr != nil {
			return nil, pErr
		}
		origin = &p
	}
	if destLat.Valid && destLng.Valid {
		p, pErr := kernel.NewGeoPoint(destLat.Float64, destLng.Float64)
		if pErr != nil {
			return nil, pErr
		}
		destination = &p
	}

	var accepted *time.Time
	if acceptedAt.Valid {
		t := acceptedAt.Time
		accepted = &t
	}

	return job.RestoreJob(jobID, posterUUID, moverUUID, title, description,
		contactPhone, originAddress, destAddress, origin, destination,
		distanceKm, price, holdRef.String,
		posterConfirmed, moverConfirmed, completed, inConflict,
		createdAt, accepted)
}
