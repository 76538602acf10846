package seed

import (
	"testing"
	"time"

	"github.com/tripfolio/tripfolio-api/pkg/config"
	"github.com/tripfolio/tripfolio-api/pkg/db"
)

func newTestRepository(t *testing.T) *db.Repository {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:          "sqlite",
		Database:        ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 300,
	}

	database, err := db.New(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db.NewRepository(database)
}

func TestRunSeedsFixedRecords(t *testing.T) {
	repo := newTestRepository(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	result, err := Run(repo, now)
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if result.Trips != 5 || result.Cities != 5 {
		t.Fatalf("unexpected result: %+v", result)
	}

	trips, err := repo.ListTrips(DemoUserID)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(trips) != 5 {
		t.Fatalf("expected 5 seeded trips, got %d", len(trips))
	}

	cities, err := repo.ListPopularCities()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(cities) != 5 {
		t.Fatalf("expected 5 seeded cities, got %d", len(cities))
	}
	if cities[0].Name != "Rome" || cities[0].Rating.String() != "4.9" {
		t.Fatalf("unexpected best city: %s %s", cities[0].Name, cities[0].Rating)
	}
}

func TestRunComputesRelativeDates(t *testing.T) {
	repo := newTestRepository(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if _, err := Run(repo, now); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	trips, err := repo.SearchTrips(db.TripFilter{Query: "Paris Adventure"})
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("expected the Paris trip, got %d records", len(trips))
	}
	// 30 days before the seed time
	if trips[0].StartDate.String() != "2025-05-02" {
		t.Fatalf("unexpected start date: %s", trips[0].StartDate)
	}
	if trips[0].EndDate.String() != "2025-05-09" {
		t.Fatalf("unexpected end date: %s", trips[0].EndDate)
	}
	if trips[0].Status != "Completed" {
		t.Fatalf("unexpected status: %s", trips[0].Status)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if _, err := Run(repo, now); err != nil {
		t.Fatalf("first run error: %v", err)
	}

	firstTrips, err := repo.ListTrips(DemoUserID)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	// Second run a day later must update in place, not duplicate
	if _, err := Run(repo, now.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	tripCount, err := repo.CountTrips()
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if tripCount != 5 {
		t.Fatalf("expected 5 trips after re-run, got %d", tripCount)
	}

	cityCount, err := repo.CountPopularCities()
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if cityCount != 5 {
		t.Fatalf("expected 5 cities after re-run, got %d", cityCount)
	}

	secondTrips, err := repo.ListTrips(DemoUserID)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}

	ids := make(map[string]bool, len(firstTrips))
	for _, trip := range firstTrips {
		ids[trip.ID] = true
	}
	for _, trip := range secondTrips {
		if !ids[trip.ID] {
			t.Fatalf("re-run created a new record for %q", trip.Title)
		}
	}
}

func TestDemoPayloadNaturalKeys(t *testing.T) {
	now := time.Now()

	titles := make(map[string]bool)
	for _, trip := range demoTrips(now) {
		if trip.UserID != DemoUserID {
			t.Fatalf("trip %q not owned by the demo user", trip.Title)
		}
		if titles[trip.Title] {
			t.Fatalf("duplicate trip title %q", trip.Title)
		}
		titles[trip.Title] = true
	}

	keys := make(map[string]bool)
	for _, city := range demoCities() {
		key := city.Name + "/" + city.Country
		if keys[key] {
			t.Fatalf("duplicate city key %q", key)
		}
		keys[key] = true
		if city.Rating <= 0 {
			t.Fatalf("city %q has no rating", city.Name)
		}
	}
}
