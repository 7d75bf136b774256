package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"haul/internal/core/domain/model/kernel"
)

// GetOpenJobsQueryHandler lists jobs with no mover assigned, oldest first.
type GetOpenJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenJobsQueryHandler creates a handler for open job board queries.
func NewGetOpenJobsQueryHandler(db *gorm.DB) GetOpenJobsQueryHandler {
	return GetOpenJobsQueryHandler{db: db}
}

// Handle executes the query. Completed and conflicted jobs are excluded
// even if they somehow lost their mover reference.
func (h GetOpenJobsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenJobsQuery,
) ([]GetOpenJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetOpenJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			description,
			origin_address,
			destination_address,
			distance_km,
			price,
			created_at
		FROM jobs
		WHERE mover_id IS NULL
		  AND NOT completed
		  AND NOT in_conflict
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenJobsQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.Title,
			&resp.Description,
			&resp.OriginAddress,
			&resp.DestinationAddress,
			&resp.DistanceKm,
			&resp.Price,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = jobID
		resp.CreatedAt = createdAt

		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
