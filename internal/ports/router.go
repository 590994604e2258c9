package ports

import (
	"context"

	"fuelroute/internal/domain"
)

// Router obtains a polyline and total distance between two coordinates
// from the external routing provider.
type Router interface {
	Route(ctx context.Context, start, end domain.Coord) (domain.RouteGeometry, error)
}

// RouteCache is the fingerprint -> RouteGeometry cache the router
// consults before calling the upstream provider. Implementations must
// be safe for concurrent use; single-writer-per-fingerprint races are
// tolerated (last writer wins).
type RouteCache interface {
	Get(ctx context.Context, fingerprint string) (domain.RouteGeometry, bool)
	Put(ctx context.Context, fingerprint string, geom domain.RouteGeometry)
}
