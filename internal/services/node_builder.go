package services

import "fuelroute/internal/domain"

// BuildNodes converts selector rows into RouteNodes with mileage =
// fraction * totalMiles. Selector order (non-decreasing fraction) is
// preserved. The decimal -> float cast on price is lossy and
// deliberate; exact arithmetic is reintroduced at aggregation time.
func BuildNodes(rows []domain.SelectedStation, totalMiles float64) []domain.RouteNode {
	nodes := make([]domain.RouteNode, 0, len(rows))
	for _, r := range rows {
		price, _ := r.RetailPrice.Float64()
		nodes = append(nodes, domain.RouteNode{
			Kind:      domain.NodeStation,
			Mileage:   r.Fraction * totalMiles,
			Price:     price,
			Lat:       r.Location.Lat,
			Lon:       r.Location.Lon,
			Name:      r.Name,
			Address:   r.Address,
			StationID: r.OpisID,
		})
	}
	return nodes
}
