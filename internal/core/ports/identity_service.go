package ports

import (
	"context"

	"haul/internal/core/domain/model/kernel"
)

// IdentityService controls whether a user can authenticate. Suspension
// deactivates the login; lifting the suspension reactivates it.
type IdentityService interface {
	Deactivate(ctx context.Context, userID kernel.UUID) error
	Activate(ctx context.Context, userID kernel.UUID) error
}
