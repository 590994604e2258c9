package domain

import "github.com/shopspring/decimal"

// Stop is one refuel event in the optimal path: fuel is purchased here
// to cover the leg to the next stop (or to Finish).
type Stop struct {
	Mileage   float64
	Lat       float64
	Lon       float64
	Name      string
	Address   string
	Price     float64
	StationID int
	Gallons   decimal.Decimal
	Cost      decimal.Decimal
}

// PlanResult is the assembled response for a single planning request.
type PlanResult struct {
	RouteGeoJSON   map[string]any
	Stops          []Stop
	TotalFuelCost  decimal.Decimal
	TotalGallons   decimal.Decimal
	TotalMiles     float64
	MPGUsed        int
}
