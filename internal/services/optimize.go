// Package services implements the route-planning pipeline stages that
// run after the selector: node construction, the mileage-bucket
// pre-filter, the minimum-cost refuel DAG optimizer, and response
// assembly.
package services

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"fuelroute/internal/apperrors"
	"fuelroute/internal/config"
	"fuelroute/internal/domain"
)

// OptimizeResult is the optimizer's output: the chosen stops (Start and
// Finish excluded) plus totals accumulated in exact decimal arithmetic.
type OptimizeResult struct {
	Stops        []domain.Stop
	TotalCost    decimal.Decimal
	TotalGallons decimal.Decimal
}

// OptimizeRefuelDAG finds the minimum-cost Start->Finish path over
// nodes using O(V+E) dynamic programming on the DAG induced by strict
// mileage ordering: an edge i->j exists iff mileage[j]-mileage[i] <=
// VEHICLE_RANGE_MI. Fuel consumed on edge i->j is purchased at node i,
// at node i's price; Start's price is always 0.
//
// nodes must already be [Start, prefiltered stations..., Finish],
// sorted strictly by mileage. Returns apperrors.InfeasibleRoute if no
// path connects Start to Finish.
func OptimizeRefuelDAG(nodes []domain.RouteNode) (OptimizeResult, error) {
	n := len(nodes)
	if n < 2 {
		return OptimizeResult{TotalCost: decimal.Zero, TotalGallons: decimal.Zero}, nil
	}

	mileage := make([]float64, n)
	price := make([]float64, n)
	for i, node := range nodes {
		mileage[i] = node.Mileage
		price[i] = node.Price
	}
	price[0] = 0 // Start never charges, even if the caller forgot to zero it.

	minCost := make([]float64, n)
	parent := make([]int, n)
	for i := range minCost {
		minCost[i] = math.Inf(1)
		parent[i] = -1
	}
	minCost[0] = 0

	for i := 0; i < n; i++ {
		if math.IsInf(minCost[i], 1) {
			continue
		}
		for j := i + 1; j < n; j++ {
			dist := mileage[j] - mileage[i]
			if dist > config.VehicleRangeMi {
				break // remaining j are strictly farther; nodes are mileage-sorted.
			}

			gallons := dist / float64(config.VehicleMPG)
			cost := gallons * price[i]

			newCost := minCost[i] + cost
			// Strict less-than: on ties, keep the earlier predecessor
			// (first assignment wins) for deterministic output.
			if newCost < minCost[j] {
				minCost[j] = newCost
				parent[j] = i
			}
		}
	}

	if math.IsInf(minCost[n-1], 1) {
		return OptimizeResult{}, fmt.Errorf("optimize refuel dag: %w", apperrors.InfeasibleRoute)
	}

	pathIndices := []int{n - 1}
	for cur := parent[n-1]; cur != -1; cur = parent[cur] {
		pathIndices = append(pathIndices, cur)
	}
	// pathIndices was built Finish -> Start; reverse to Start -> Finish.
	for i, j := 0, len(pathIndices)-1; i < j; i, j = i+1, j-1 {
		pathIndices[i], pathIndices[j] = pathIndices[j], pathIndices[i]
	}

	stops := make([]domain.Stop, 0, len(pathIndices)-1)
	totalCost := decimal.Zero
	totalGallons := decimal.Zero

	for k := 0; k < len(pathIndices)-1; k++ {
		i, j := pathIndices[k], pathIndices[k+1]

		distD := decimal.NewFromFloat(mileage[j] - mileage[i])
		gallonsD := distD.Div(decimal.NewFromInt(int64(config.VehicleMPG)))
		costD := gallonsD.Mul(decimal.NewFromFloat(price[i]))

		totalGallons = totalGallons.Add(gallonsD)
		totalCost = totalCost.Add(costD)

		if i == 0 {
			continue // Start -> first_real_stop leg produces no emitted stop.
		}

		node := nodes[i]
		stops = append(stops, domain.Stop{
			Mileage:   node.Mileage,
			Lat:       node.Lat,
			Lon:       node.Lon,
			Name:      node.Name,
			Address:   node.Address,
			Price:     node.Price,
			StationID: node.StationID,
			Gallons:   gallonsD,
			Cost:      costD,
		})
	}

	return OptimizeResult{Stops: stops, TotalCost: totalCost, TotalGallons: totalGallons}, nil
}
