package stations

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// InitSchema creates the fuel_stations table and its spatial index if
// they do not already exist. PostGIS must already be enabled on the
// target database (CREATE EXTENSION postgis).
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: db is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS fuel_stations (
			opis_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			retail_price NUMERIC(10,3) NOT NULL CHECK (retail_price >= 0),
			location geometry(Point, 4326) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_fuel_stations_location
		 ON fuel_stations USING GIST (location);`,
		`CREATE INDEX IF NOT EXISTS idx_fuel_stations_retail_price
		 ON fuel_stations (retail_price);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// StationRow is one line of an OPIS-style fuel station CSV import.
type StationRow struct {
	OpisID      int
	Name        string
	Address     string
	City        string
	State       string
	RetailPrice string
	Lat         float64
	Lon         float64
}

// ImportCSV reads OPIS-style station rows from a CSV file
// (opis_id,name,address,city,state,retail_price,lat,lon) and upserts
// them into fuel_stations. This is the minimal CLI stand-in for the
// out-of-scope station ETL pipeline spec §1 names at its interface.
func ImportCSV(db *sql.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("import stations: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("import stations: read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return 0, fmt.Errorf("import stations: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("import stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO fuel_stations (opis_id, name, address, city, state, retail_price, location, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326), now())
	ON CONFLICT (opis_id) DO UPDATE
	SET name = EXCLUDED.name,
		address = EXCLUDED.address,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		retail_price = EXCLUDED.retail_price,
		location = EXCLUDED.location,
		updated_at = now();
	`)
	if err != nil {
		return 0, fmt.Errorf("import stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("import stations: read row %d: %w", count+1, err)
		}

		row, err := parseRow(rec)
		if err != nil {
			return 0, fmt.Errorf("import stations: row %d: %w", count+1, err)
		}

		if _, err := stmt.Exec(row.OpisID, row.Name, row.Address, row.City, row.State, row.RetailPrice, row.Lon, row.Lat); err != nil {
			return 0, fmt.Errorf("import stations: insert opis_id=%d: %w", row.OpisID, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import stations: commit tx: %w", err)
	}

	return count, nil
}

func validateHeader(header []string) error {
	want := []string{"opis_id", "name", "address", "city", "state", "retail_price", "lat", "lon"}
	if len(header) != len(want) {
		return fmt.Errorf("expected %d columns, got %d", len(want), len(header))
	}
	for i, w := range want {
		if strings.TrimSpace(header[i]) != w {
			return fmt.Errorf("expected column %d to be %q, got %q", i+1, w, header[i])
		}
	}
	return nil
}

func parseRow(rec []string) (StationRow, error) {
	if len(rec) != 8 {
		return StationRow{}, fmt.Errorf("expected 8 fields, got %d", len(rec))
	}

	opisID, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return StationRow{}, fmt.Errorf("parse opis_id: %w", err)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(rec[6]), 64)
	if err != nil {
		return StationRow{}, fmt.Errorf("parse lat: %w", err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(rec[7]), 64)
	if err != nil {
		return StationRow{}, fmt.Errorf("parse lon: %w", err)
	}

	return StationRow{
		OpisID:      opisID,
		Name:        strings.TrimSpace(rec[1]),
		Address:     strings.TrimSpace(rec[2]),
		City:        strings.TrimSpace(rec[3]),
		State:       strings.TrimSpace(rec[4]),
		RetailPrice: strings.TrimSpace(rec[5]),
		Lat:         lat,
		Lon:         lon,
	}, nil
}
