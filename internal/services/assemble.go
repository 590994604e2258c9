package services

import (
	"fuelroute/internal/config"
	"fuelroute/internal/domain"
)

// AssemblePlan builds the final PlanResult: the route as a GeoJSON
// Feature, the chosen stops, and aggregate totals.
func AssemblePlan(geom domain.RouteGeometry, result OptimizeResult) domain.PlanResult {
	coords := make([][]float64, 0, len(geom.Polyline))
	for _, c := range geom.Polyline {
		coords = append(coords, []float64{c.Lon, c.Lat})
	}

	routeGeoJSON := map[string]any{
		"type": "Feature",
		"geometry": map[string]any{
			"type":        "LineString",
			"coordinates": coords,
		},
		"properties": map[string]any{},
	}

	return domain.PlanResult{
		RouteGeoJSON:  routeGeoJSON,
		Stops:         result.Stops,
		TotalFuelCost: result.TotalCost,
		TotalGallons:  result.TotalGallons,
		TotalMiles:    geom.TotalMiles,
		MPGUsed:       config.VehicleMPG,
	}
}
