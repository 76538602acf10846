package seed

import (
	"fmt"
	"time"

	"github.com/tripfolio/tripfolio-api/pkg/db"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

// DemoUserID owns every seeded trip
const DemoUserID = "demo-user"

// Result reports how many records a seeding run touched
type Result struct {
	Trips  int
	Cities int
}

// Run upserts the five demo trips and five popular cities. It only
// goes through the repository's natural-key upserts, so re-running
// updates the same ten records in place.
func Run(repo *db.Repository, now time.Time) (Result, error) {
	var result Result

	for _, trip := range demoTrips(now) {
		if _, err := repo.UpsertTripByOwnerTitle(trip.UserID, trip.Title, trip); err != nil {
			return result, fmt.Errorf("failed to seed trip %q: %w", trip.Title, err)
		}
		result.Trips++
	}

	for _, city := range demoCities() {
		if _, err := repo.UpsertPopularCityByNameCountry(city.Name, city.Country, city); err != nil {
			return result, fmt.Errorf("failed to seed city %q: %w", city.Name, err)
		}
		result.Cities++
	}

	return result, nil
}

func daysFrom(now time.Time, days int) models.Date {
	return models.DateOf(now.AddDate(0, 0, days))
}

func demoTrips(now time.Time) []models.Trip {
	return []models.Trip{
		{
			UserID:      DemoUserID,
			Title:       "Paris Adventure",
			Destination: "Paris, France",
			StartDate:   daysFrom(now, -30),
			EndDate:     daysFrom(now, -23),
			ImageURL:    "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
			Status:      "Completed",
		},
		{
			UserID:      DemoUserID,
			Title:       "Tokyo Exploration",
			Destination: "Tokyo, Japan",
			StartDate:   daysFrom(now, -60),
			EndDate:     daysFrom(now, -52),
			ImageURL:    "https://images.unsplash.com/photo-1505066829862-1c9c3c1c60cf",
			Status:      "Completed",
		},
		{
			UserID:      DemoUserID,
			Title:       "Barcelona Beach",
			Destination: "Barcelona, Spain",
			StartDate:   daysFrom(now, -15),
			EndDate:     daysFrom(now, -8),
			ImageURL:    "https://images.unsplash.com/photo-1505761671935-60b3a7427bad",
			Status:      "Completed",
		},
		{
			UserID:      DemoUserID,
			Title:       "Rome Classics",
			Destination: "Rome, Italy",
			StartDate:   daysFrom(now, 10),
			EndDate:     daysFrom(now, 16),
			ImageURL:    "https://images.unsplash.com/photo-1505761671935-60b3a7427bad",
			Status:      "Planned",
		},
		{
			UserID:      DemoUserID,
			Title:       "Dubai Skyline",
			Destination: "Dubai, UAE",
			StartDate:   daysFrom(now, 25),
			EndDate:     daysFrom(now, 32),
			ImageURL:    "https://images.unsplash.com/photo-1505761671935-60b3a7427bad",
			Status:      "Planned",
		},
	}
}

func demoCities() []models.PopularCity {
	return []models.PopularCity{
		{
			Name:     "Paris",
			Country:  "France",
			ImageURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
			Rating:   models.RatingFromTenths(48),
			Reviews:  2548,
		},
		{
			Name:     "Tokyo",
			Country:  "Japan",
			ImageURL: "https://images.unsplash.com/photo-1505066829862-1c9c3c1c60cf",
			Rating:   models.RatingFromTenths(47),
			Reviews:  1893,
		},
		{
			Name:     "Barcelona",
			Country:  "Spain",
			ImageURL: "https://images.unsplash.com/photo-1505761671935-60b3a7427bad",
			Rating:   models.RatingFromTenths(46),
			Reviews:  1642,
		},
		{
			Name:     "Rome",
			Country:  "Italy",
			ImageURL: "https://images.unsplash.com/photo-1505761671935-60b3a7427bad",
			Rating:   models.RatingFromTenths(49),
			Reviews:  3124,
		},
		{
			Name:     "Dubai",
			Country:  "UAE",
			ImageURL: "https://images.unsplash.com/photo-1505761671935-60b3a7427bad",
			Rating:   models.RatingFromTenths(45),
			Reviews:  2800,
		},
	}
}
