package main

import (
	"flag"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"fuelroute/internal/adapters/stations"
	"fuelroute/internal/config"
	"fuelroute/internal/platform/db"
)

// dbtool initializes the fuel_stations schema and optionally imports a
// CSV of OPIS-style station rows. It is the operator-facing stand-in
// for the station ETL pipeline spec §1 places outside the service.
func main() {
	importPath := flag.String("import", "", "path to a station CSV to import after schema init")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	env := config.LoadEnv()
	if strings.TrimSpace(env.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(env.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing fuel_stations schema...")
	if err := stations.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if strings.TrimSpace(*importPath) == "" {
		return
	}

	log.Printf("Importing stations from %s...", *importPath)
	count, err := stations.ImportCSV(conn, *importPath)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("Imported %d stations.", count)
}
