package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"fuelroute/internal/adapters/geocode"
	"fuelroute/internal/adapters/router"
	"fuelroute/internal/adapters/stations"
	"fuelroute/internal/api"
	"fuelroute/internal/config"
	"fuelroute/internal/platform/db"
)

// main is the application composition root.
// It wires concrete adapters (PostGIS, ORS, Nominatim) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	env := config.LoadEnv()

	if env.Debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
		log.Printf("debug mode enabled")
	}

	if strings.TrimSpace(env.ORSAPIKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}
	if strings.TrimSpace(env.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(env.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	routeCache := router.NewRouteCache(time.Duration(config.RouteCacheTTLSecond) * time.Second)

	geocoder := geocode.New(env.NominatimURL, env.NominatimContact)
	rtr := router.New(env.ORSRouteURL, env.ORSAPIKey, routeCache)
	selector := stations.New(conn)

	httpHandler := api.NewRouter(geocoder, rtr, selector, env.Debug)

	port := getEnv("PORT", "8080")

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
