package ports

import (
	"context"

	"fuelroute/internal/domain"
)

// StationSelector queries the spatial store for fuel stations within a
// buffer of the route polyline, annotated with their along-route
// fractional position, ordered ascending by that fraction.
type StationSelector interface {
	StationsOnRoute(ctx context.Context, line []domain.Coord) ([]domain.SelectedStation, error)
}
