package api

import (
	"net/http"

	"fuelroute/internal/api/handlers"
	"fuelroute/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// debug enables the verbose per-request logging spec §6's debug flag controls.
func NewRouter(geocoder ports.Geocoder, router ports.Router, selector ports.StationSelector, debug bool) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Geocoder: geocoder,
		Router:   router,
		Selector: selector,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/route/", routeHandler.Plan)

	return loggingMiddleware(mux, debug)
}
