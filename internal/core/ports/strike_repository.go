package ports

import (
	"context"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/domain/model/strike"
)

// StrikeRepository defines the persistence contract for strike records.
// Strikes are append-only; there is no update operation.
type StrikeRepository interface {
	// Add persists a new strike record.
	Add(ctx context.Context, record *strike.Strike) error

	// CountAgainst returns how many strikes have been recorded against a user.
	CountAgainst(ctx context.Context, userID kernel.UUID) (int, error)

	// GetAllAgainst retrieves every strike recorded against a user,
	// newest first.
	GetAllAgainst(ctx context.Context, userID kernel.UUID) ([]*strike.Strike, error)
}
