package ports

import (
	"context"

	"fuelroute/internal/domain"
)

// Geocoder resolves a free-form location string to a coordinate,
// including the literal decimal-pair fast path and bounds validation.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (domain.Coord, error)
}
