// Package config holds the planning constants from spec §6 and the
// environment-sourced runtime knobs (API keys, DB credentials, debug
// flag). No other runtime configuration affects the core.
package config

import "os"

// Planning constants. These are fixed properties of the problem, not
// environment-tunable — spec §6 names them as "the authoritative
// values".
const (
	VehicleRangeMi      = 500.0
	VehicleMPG          = 10
	StationBufferMi     = 10.0
	DegreesPerMile      = 1.0 / 69.0
	PrefilterSegmentMi  = 50.0
	MetersToMiles       = 0.000621371
	RouteCacheTTLSecond = 3600
)

// Env holds the environment-sourced configuration needed to wire the
// adapters: provider credentials, DB connection, and a debug flag.
type Env struct {
	ORSAPIKey        string
	ORSRouteURL      string
	NominatimURL     string
	NominatimContact string
	DatabaseURL      string
	RedisAddr        string
	Debug            bool
}

// LoadEnv reads Env from the process environment, applying the same
// fallback defaults the teacher's cmd/server used for local runs.
func LoadEnv() Env {
	return Env{
		ORSAPIKey:        os.Getenv("ORS_API_KEY"),
		ORSRouteURL:      getEnv("ORS_ROUTE_URL", "https://api.openrouteservice.org/v2/directions/driving-car/geojson"),
		NominatimURL:     getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		NominatimContact: getEnv("NOMINATIM_CONTACT", "fuelroute-ops@example.com"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		Debug:            os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
