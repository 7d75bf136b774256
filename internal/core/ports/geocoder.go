package ports

import (
	"context"

	"haul/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (kernel.GeoPoint, error)
}
