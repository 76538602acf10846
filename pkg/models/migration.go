package models

import (
	"gorm.io/gorm"
)

// Database migration function
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Trip{},
		&PopularCity{},
	)
}

func CreateIndexes(db *gorm.DB) error {
	// Composite indexes for the default listing orders
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_user_start_date ON trips(user_id, start_date DESC)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_trips_start_date_desc ON trips(start_date DESC)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_popular_cities_rating_name ON popular_cities(rating DESC, name)").Error; err != nil {
		return err
	}

	return nil
}
