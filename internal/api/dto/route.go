package dto

// RouteRequest is the input schema for /api/route/: both fields are
// required free-form location strings, accepted via query string (GET)
// or JSON body (POST).
type RouteRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StopResponse is one refuel event in the chosen path.
type StopResponse struct {
	Mileage float64 `json:"mileage"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Price   float64 `json:"price"`
	Gallons string  `json:"gallons"`
	Cost    string  `json:"cost"`
}

// PlanResponse is the success payload for /api/route/.
type PlanResponse struct {
	RouteGeoJSON  map[string]any `json:"route_geojson"`
	Stops         []StopResponse `json:"stops"`
	TotalFuelCost string         `json:"total_fuel_cost"`
	TotalGallons  string         `json:"total_gallons"`
	TotalMiles    float64        `json:"total_miles"`
	MPGUsed       int            `json:"mpg_used"`
}

// ErrorResponse is the uniform error envelope spec §6/§7 mandates.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
