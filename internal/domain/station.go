package domain

import "github.com/shopspring/decimal"

// FuelStation is a persistent, spatially indexed station row. It is
// read-only during planning; the (out-of-scope) importer owns writes.
type FuelStation struct {
	OpisID      int
	Name        string
	Address     string
	City        string
	State       string
	RetailPrice decimal.Decimal
	Location    Coord
}

// SelectedStation is one row returned by the station selector: a station
// plus its fractional position along the route polyline. The selector
// never computes mileage — that is the node builder's job.
type SelectedStation struct {
	OpisID      int
	Name        string
	Address     string
	RetailPrice decimal.Decimal
	Location    Coord
	Fraction    float64 // in [0, 1], position along the route
}
