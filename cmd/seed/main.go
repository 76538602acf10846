package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tripfolio/tripfolio-api/pkg/config"
	"github.com/tripfolio/tripfolio-api/pkg/db"
	"github.com/tripfolio/tripfolio-api/pkg/log"
	"github.com/tripfolio/tripfolio-api/pkg/seed"
)

// One-shot demo-data seeder. Safe to re-run: upserts by natural key,
// so repeated invocations update the same ten records.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := log.Init(&cfg.Logging); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	// Initialize database
	logger.Info("Connecting to database...")
	database, err := db.New(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.WithError(err).Error("Failed to close database connection")
		}
	}()

	// Run database migrations
	logger.Info("Running database migrations...")
	if err := database.Migrate(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Seed demo data
	logger.Info("Seeding demo data...")
	result, err := seed.Run(db.NewRepository(database), time.Now())
	if err != nil {
		logger.LogSeed(result.Trips, result.Cities, false)
		logger.WithError(err).Fatal("Failed to seed demo data")
	}

	logger.LogSeed(result.Trips, result.Cities, true)
}
