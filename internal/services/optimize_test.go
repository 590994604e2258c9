package services

import (
	"errors"
	"testing"

	"fuelroute/internal/apperrors"
	"fuelroute/internal/domain"
)

func withStartFinish(totalMiles float64, stations ...domain.RouteNode) []domain.RouteNode {
	nodes := make([]domain.RouteNode, 0, len(stations)+2)
	nodes = append(nodes, domain.RouteNode{Kind: domain.NodeStart, Mileage: 0, Price: 0, Name: "Start"})
	nodes = append(nodes, stations...)
	nodes = append(nodes, domain.RouteNode{Kind: domain.NodeFinish, Mileage: totalMiles, Price: 0, Name: "Finish"})
	return nodes
}

func TestOptimizeTrivialInRangeNoStations(t *testing.T) {
	nodes := withStartFinish(300)

	res, err := OptimizeRefuelDAG(nodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Stops) != 0 {
		t.Fatalf("expected no stops, got %v", res.Stops)
	}
	if !res.TotalCost.IsZero() {
		t.Fatalf("expected zero total cost, got %v", res.TotalCost)
	}
	want := "30"
	if res.TotalGallons.String() != want {
		t.Fatalf("total gallons = %v, want %v", res.TotalGallons, want)
	}
}

func TestOptimizeSingleOptimalStop(t *testing.T) {
	nodes := withStartFinish(800, node(400, 3.00))

	res, err := OptimizeRefuelDAG(nodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(res.Stops))
	}
	if res.Stops[0].Mileage != 400 {
		t.Fatalf("stop mileage = %v, want 400", res.Stops[0].Mileage)
	}
	if res.Stops[0].Gallons.String() != "40" {
		t.Fatalf("gallons = %v, want 40", res.Stops[0].Gallons)
	}
	if res.Stops[0].Cost.String() != "120" {
		t.Fatalf("cost = %v, want 120", res.Stops[0].Cost)
	}
	if res.TotalCost.String() != "120" {
		t.Fatalf("total cost = %v, want 120", res.TotalCost)
	}
}

func TestOptimizeGreedyTrap(t *testing.T) {
	nodes := withStartFinish(900, node(100, 4.00), node(450, 2.00), node(800, 3.00))

	res, err := OptimizeRefuelDAG(nodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d: %+v", len(res.Stops), res.Stops)
	}
	if res.Stops[0].Mileage != 450 || res.Stops[0].Gallons.String() != "35" || res.Stops[0].Cost.String() != "70" {
		t.Fatalf("first stop = %+v, want mileage 450 gallons 35 cost 70", res.Stops[0])
	}
	if res.Stops[1].Mileage != 800 || res.Stops[1].Gallons.String() != "10" || res.Stops[1].Cost.String() != "30" {
		t.Fatalf("second stop = %+v, want mileage 800 gallons 10 cost 30", res.Stops[1])
	}
	if res.TotalCost.String() != "100" {
		t.Fatalf("total cost = %v, want 100", res.TotalCost)
	}
}

func TestOptimizeInfeasibleGap(t *testing.T) {
	nodes := withStartFinish(1100, node(200, 3.0), node(900, 3.0))

	_, err := OptimizeRefuelDAG(nodes)
	if !errors.Is(err, apperrors.InfeasibleRoute) {
		t.Fatalf("expected InfeasibleRoute, got %v", err)
	}
}

func TestOptimizeExactlyAtRangeEdgePresent(t *testing.T) {
	nodes := withStartFinish(500)

	res, err := OptimizeRefuelDAG(nodes)
	if err != nil {
		t.Fatalf("exactly-at-range Start->Finish should be feasible: %v", err)
	}
	if len(res.Stops) != 0 {
		t.Fatalf("expected no stops, got %v", res.Stops)
	}
}

func TestOptimizeJustOverRangeInfeasible(t *testing.T) {
	nodes := withStartFinish(500.0001)

	_, err := OptimizeRefuelDAG(nodes)
	if !errors.Is(err, apperrors.InfeasibleRoute) {
		t.Fatalf("expected InfeasibleRoute just over range, got %v", err)
	}
}

func TestOptimizeStationAtMileageZero(t *testing.T) {
	nodes := withStartFinish(300, node(0, 2.5))

	res, err := OptimizeRefuelDAG(nodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A station at mileage 0 sits between Start (mileage 0) and Finish;
	// the DP may or may not route through it, but must not crash, and
	// must still produce a feasible, consistent plan.
	if res.TotalGallons.String() != "30" {
		t.Fatalf("total gallons = %v, want 30", res.TotalGallons)
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	nodes := withStartFinish(900, node(100, 4.00), node(450, 2.00), node(800, 3.00))

	r1, err1 := OptimizeRefuelDAG(nodes)
	r2, err2 := OptimizeRefuelDAG(nodes)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v %v", err1, err2)
	}
	if len(r1.Stops) != len(r2.Stops) {
		t.Fatalf("non-deterministic stop count")
	}
	for i := range r1.Stops {
		a, b := r1.Stops[i], r2.Stops[i]
		if a.Mileage != b.Mileage || a.Lat != b.Lat || a.Lon != b.Lon ||
			a.Name != b.Name || a.Address != b.Address || a.Price != b.Price ||
			a.StationID != b.StationID || !a.Gallons.Equal(b.Gallons) || !a.Cost.Equal(b.Cost) {
			t.Fatalf("non-deterministic stop at %d: %+v vs %+v", i, a, b)
		}
	}
	if !r1.TotalCost.Equal(r2.TotalCost) || !r1.TotalGallons.Equal(r2.TotalGallons) {
		t.Fatalf("non-deterministic totals")
	}
}

func TestOptimizeNoConsecutiveLegExceedsRange(t *testing.T) {
	nodes := withStartFinish(900, node(100, 4.00), node(450, 2.00), node(800, 3.00))

	res, err := OptimizeRefuelDAG(nodes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	full := make([]float64, 0, len(res.Stops)+2)
	full = append(full, 0)
	for _, s := range res.Stops {
		full = append(full, s.Mileage)
	}
	full = append(full, 900)

	for i := 1; i < len(full); i++ {
		if full[i]-full[i-1] > 500 {
			t.Fatalf("leg from %v to %v exceeds vehicle range", full[i-1], full[i])
		}
	}
}
