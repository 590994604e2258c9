package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"fuelroute/internal/domain"
)

func TestBuildNodesConvertsFractionToMileage(t *testing.T) {
	rows := []domain.SelectedStation{
		{OpisID: 1, Name: "A", Address: "1 St", RetailPrice: decimal.NewFromFloat(3.50), Location: domain.Coord{Lat: 1, Lon: 2}, Fraction: 0.25},
		{OpisID: 2, Name: "B", Address: "2 St", RetailPrice: decimal.NewFromFloat(3.00), Location: domain.Coord{Lat: 3, Lon: 4}, Fraction: 0.75},
	}

	nodes := BuildNodes(rows, 400)

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if nodes[0].Mileage != 100 {
		t.Fatalf("nodes[0].Mileage = %v, want 100", nodes[0].Mileage)
	}
	if nodes[1].Mileage != 300 {
		t.Fatalf("nodes[1].Mileage = %v, want 300", nodes[1].Mileage)
	}
	if nodes[0].Price != 3.50 || nodes[1].Price != 3.00 {
		t.Fatalf("unexpected prices: %+v", nodes)
	}
	if nodes[0].Kind != domain.NodeStation || nodes[1].Kind != domain.NodeStation {
		t.Fatalf("expected NodeStation kind, got %+v", nodes)
	}
	if nodes[0].StationID != 1 || nodes[1].StationID != 2 {
		t.Fatalf("unexpected station IDs: %+v", nodes)
	}
}

func TestBuildNodesEmptyInput(t *testing.T) {
	nodes := BuildNodes(nil, 500)
	if len(nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(nodes))
	}
}
