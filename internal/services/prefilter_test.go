package services

import (
	"testing"

	"fuelroute/internal/domain"
)

func node(mileage, price float64) domain.RouteNode {
	return domain.RouteNode{Kind: domain.NodeStation, Mileage: mileage, Price: price}
}

func TestPrefilterCollapsesToCheapestPerBucket(t *testing.T) {
	nodes := []domain.RouteNode{
		node(10, 3.5),
		node(12, 3.2),
		node(15, 3.45),
		node(40, 3.9),
		node(48, 3.1),
		node(60, 3.3),
	}

	got := Prefilter(nodes)

	if len(got) != 2 {
		t.Fatalf("expected 2 surviving nodes, got %d: %+v", len(got), got)
	}
	if got[0].Mileage != 48 || got[0].Price != 3.1 {
		t.Fatalf("bucket 0 survivor = %+v, want mileage 48 price 3.1", got[0])
	}
	if got[1].Mileage != 60 || got[1].Price != 3.3 {
		t.Fatalf("bucket 1 survivor = %+v, want mileage 60 price 3.3", got[1])
	}
}

func TestPrefilterIsIdempotent(t *testing.T) {
	nodes := []domain.RouteNode{node(10, 3.5), node(12, 3.2), node(60, 3.3)}

	once := Prefilter(nodes)
	twice := Prefilter(once)

	if len(once) != len(twice) {
		t.Fatalf("prefilter not a fixed point: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("prefilter not a fixed point at index %d: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestPrefilterTieBreaksByFirstEncountered(t *testing.T) {
	nodes := []domain.RouteNode{node(10, 3.0), node(20, 3.0)}

	got := Prefilter(nodes)
	if len(got) != 1 {
		t.Fatalf("expected both nodes to collapse into one bucket, got %d", len(got))
	}
	if got[0].Mileage != 10 {
		t.Fatalf("expected first-encountered (mileage 10) to win tie, got mileage %v", got[0].Mileage)
	}
}

func TestPrefilterEmptyInput(t *testing.T) {
	if got := Prefilter(nil); len(got) != 0 {
		t.Fatalf("expected empty output for empty input, got %v", got)
	}
}

func TestPrefilterStrictlyIncreasingMileageOutput(t *testing.T) {
	nodes := []domain.RouteNode{node(5, 3.0), node(55, 2.9), node(110, 3.1), node(60, 2.5)}

	got := Prefilter(nodes)
	for i := 1; i < len(got); i++ {
		if got[i].Mileage <= got[i-1].Mileage {
			t.Fatalf("expected strictly increasing mileage, got %v then %v", got[i-1].Mileage, got[i].Mileage)
		}
	}
}
