// Package queries contains read-only operations for the query side of the
// CQRS architecture. Query handlers read the database directly and never
// mutate lifecycle state.
package queries

import (
	"errors"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/pkg/guard"
)

var ErrGetOpenJobsQueryIsNotConstructed = errors.New(
	"GetOpenJobsQuery must be created via NewGetOpenJobsQuery constructor",
)

// GetOpenJobsQuery retrieves every job still waiting for a mover. Used by
// the job board listing.
type GetOpenJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenJobsQuery creates a query for the open job board.
func NewGetOpenJobsQuery() GetOpenJobsQuery {
	return GetOpenJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenJobsQueryIsNotConstructed)
}

// GetOpenJobsQueryResponse is one open job board entry.
type GetOpenJobsQueryResponse struct {
	ID                 kernel.UUID
	Title              string
	Description        string
	OriginAddress      string
	DestinationAddress string
	DistanceKm         float64
	Price              int64
	CreatedAt          time.Time
}
