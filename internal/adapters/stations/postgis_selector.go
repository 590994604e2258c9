// Package stations queries the PostGIS-backed fuel station store for
// candidates along a route polyline.
package stations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"fuelroute/internal/config"
	"fuelroute/internal/domain"
	"fuelroute/internal/platform/obs"
	"fuelroute/internal/ports"
)

// PostGISSelector issues the single dwithin + line-locate-point query
// spec §4.3/§6 describes. It never materializes a buffer polygon — the
// dwithin-style predicate lets Postgres use the GiST index directly.
type PostGISSelector struct {
	DB *sql.DB
}

var _ ports.StationSelector = (*PostGISSelector)(nil)

func New(db *sql.DB) *PostGISSelector {
	return &PostGISSelector{DB: db}
}

// StationsOnRoute returns stations within STATION_BUFFER_MI of the
// route, each annotated with its fractional position along it, ordered
// ascending by that fraction.
func (s *PostGISSelector) StationsOnRoute(ctx context.Context, line []domain.Coord) (_ []domain.SelectedStation, err error) {
	defer obs.Time(ctx, "stations.StationsOnRoute")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("station selector: db is nil")
	}
	if len(line) < 2 {
		return nil, fmt.Errorf("station selector: route polyline must have at least 2 points")
	}

	wkt := lineStringWKT(line)
	bufferDegrees := config.StationBufferMi * config.DegreesPerMile

	// dwithin uses the GiST index on location directly; no buffer
	// polygon is ever materialized.
	const q = `
	SELECT
		opis_id,
		name,
		address,
		retail_price,
		ST_Y(location) AS lat,
		ST_X(location) AS lon,
		ST_LineLocatePoint(ST_GeomFromText($1, 4326), location) AS fraction
	FROM fuel_stations
	WHERE ST_DWithin(location, ST_GeomFromText($1, 4326), $2)
	ORDER BY fraction ASC;
	`

	rows, err := s.DB.QueryContext(ctx, q, wkt, bufferDegrees)
	if err != nil {
		return nil, fmt.Errorf("station selector: query fuel_stations: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SelectedStation, 0, 64)
	for rows.Next() {
		var (
			opisID  int
			name    string
			address string
			price   string
			lat     float64
			lon     float64
			frac    float64
		)
		if err := rows.Scan(&opisID, &name, &address, &price, &lat, &lon, &frac); err != nil {
			return nil, fmt.Errorf("station selector: scan row: %w", err)
		}

		retailPrice, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("station selector: parse retail_price %q: %w", price, err)
		}

		out = append(out, domain.SelectedStation{
			OpisID:      opisID,
			Name:        name,
			Address:     address,
			RetailPrice: retailPrice,
			Location:    domain.Coord{Lat: lat, Lon: lon},
			Fraction:    frac,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("station selector: row iteration: %w", err)
	}

	return out, nil
}

func lineStringWKT(line []domain.Coord) string {
	s := "LINESTRING("
	for i, c := range line {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%f %f", c.Lon, c.Lat)
	}
	return s + ")"
}
