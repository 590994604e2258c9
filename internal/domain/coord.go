package domain

import "fmt"

// Coord is a WGS84 geographic point, stored as (lat, lon) degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// LonLat returns the coordinate as [lon, lat], the order the routing
// provider expects — the opposite of how Coord is stored.
func (c Coord) LonLat() []float64 { return []float64{c.Lon, c.Lat} }

// InBounds reports whether the coordinate is a valid WGS84 point.
func (c Coord) InBounds() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coord) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
