// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go                  # Migrate the default database
// go run cmd/migrate/main.go -db atelier.db   # Migrate a specific database file
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/atelierhq/atelier/config"
	"github.com/atelierhq/atelier/internal/db"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	dbPath := flag.String("db", "", "Database file (optional, defaults to env vars)")
	flag.Parse()

	path := config.GetEnv("ATELIER_DB_PATH", db.DefaultPath)
	if *dbPath != "" {
		path = *dbPath
	}

	// db.New runs migrations as part of opening the database
	if _, err := db.New(db.Options{Path: path}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Database %q migrated", path)
}
