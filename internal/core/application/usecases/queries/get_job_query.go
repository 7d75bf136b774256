package queries

import (
	"errors"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves the full detail of one job, including its derived
// lifecycle status and human-readable label.
type GetJobQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for a single job's detail.
func NewGetJobQuery(jobID kernel.UUID) (GetJobQuery, error) {
	q := GetJobQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setJobID(jobID); err != nil {
		return GetJobQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// JobID returns the requested job's identifier.
func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}

func (q *GetJobQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}

// GetJobQueryResponse is the full job detail. Status and StatusLabel are
// derived from the lifecycle flags at read time, not stored in the row.
// ConfirmableIn reports how long until completion can be confirmed; zero
// once the confirmation window has opened.
type GetJobQueryResponse struct {
	ID                 kernel.UUID
	PosterID           kernel.UUID
	MoverID            *kernel.UUID
	Title              string
	Description        string
	ContactPhone       string
	OriginAddress      string
	DestinationAddress string
	Origin             *kernel.GeoPoint
	Destination        *kernel.GeoPoint
	DistanceKm         float64
	Price              int64
	Status             string
	StatusLabel        string
	PosterConfirmed    bool
	MoverConfirmed     bool
	Completed          bool
	InConflict         bool
	ConfirmableIn      time.Duration
	CreatedAt          time.Time
	AcceptedAt         *time.Time
}
