package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"fuelroute/internal/domain"
	"fuelroute/internal/ports"
)

// PlanRoute runs the full pipeline for one request: geocode -> route ->
// select -> build -> prefilter -> optimize -> assemble. Stage order is
// strict except for the two geocode calls, which have no ordering
// dependency on each other and run concurrently.
func PlanRoute(
	ctx context.Context,
	startQuery, endQuery string,
	geocoder ports.Geocoder,
	rtr ports.Router,
	selector ports.StationSelector,
) (domain.PlanResult, error) {
	var start, end domain.Coord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := geocoder.Geocode(gctx, startQuery)
		if err != nil {
			return fmt.Errorf("plan route: geocode start: %w", err)
		}
		start = c
		return nil
	})
	g.Go(func() error {
		c, err := geocoder.Geocode(gctx, endQuery)
		if err != nil {
			return fmt.Errorf("plan route: geocode end: %w", err)
		}
		end = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PlanResult{}, err
	}

	geom, err := rtr.Route(ctx, start, end)
	if err != nil {
		return domain.PlanResult{}, fmt.Errorf("plan route: route: %w", err)
	}

	selected, err := selector.StationsOnRoute(ctx, geom.Polyline)
	if err != nil {
		return domain.PlanResult{}, fmt.Errorf("plan route: select stations: %w", err)
	}

	nodes := BuildNodes(selected, geom.TotalMiles)
	nodes = Prefilter(nodes)
	nodes = withEndpoints(nodes, geom.TotalMiles, start, end)

	result, err := OptimizeRefuelDAG(nodes)
	if err != nil {
		return domain.PlanResult{}, fmt.Errorf("plan route: optimize: %w", err)
	}

	return AssemblePlan(geom, result), nil
}

// withEndpoints prepends the synthetic Start node and appends the
// synthetic Finish node around the pre-filtered station list.
func withEndpoints(nodes []domain.RouteNode, totalMiles float64, start, end domain.Coord) []domain.RouteNode {
	out := make([]domain.RouteNode, 0, len(nodes)+2)
	out = append(out, domain.RouteNode{
		Kind:    domain.NodeStart,
		Mileage: 0,
		Price:   0,
		Lat:     start.Lat,
		Lon:     start.Lon,
		Name:    "Start",
	})
	out = append(out, nodes...)
	out = append(out, domain.RouteNode{
		Kind:    domain.NodeFinish,
		Mileage: totalMiles,
		Price:   0,
		Lat:     end.Lat,
		Lon:     end.Lon,
		Name:    "Finish",
	})
	return out
}
