package db

import (
	"errors"

	"github.com/tripfolio/tripfolio-api/pkg/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an id or natural key does not resolve
// to a stored record
var ErrNotFound = errors.New("record not found")

// TripFilter narrows an administrative trip search. Zero-valued fields
// are ignored; Query matches title or destination as a substring.
type TripFilter struct {
	UserID      string
	Status      string
	Destination string
	StartDate   *models.Date
	Query       string
}

// CityFilter narrows an administrative popular-city search
type CityFilter struct {
	Country    string
	MinRating  models.Rating
	MinReviews uint
	Query      string
}

// Repository provides database operations for specific models
type Repository struct {
	db *DB
}

// NewRepository creates a new repository instance
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *DB {
	return r.db
}

// Trip repository methods

// ListTrips returns trips ordered by start date, newest first. A
// non-empty userID restricts the result to that owner's trips.
func (r *Repository) ListTrips(userID string) ([]models.Trip, error) {
	trips := make([]models.Trip, 0)
	query := r.db.Order("start_date DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	err := query.Find(&trips).Error
	return trips, err
}

func (r *Repository) GetTrip(id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.Where("id = ?", id).First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &trip, err
}

func (r *Repository) CreateTrip(trip *models.Trip) error {
	return r.db.Create(trip).Error
}

func (r *Repository) UpdateTrip(trip *models.Trip) error {
	return r.db.Save(trip).Error
}

func (r *Repository) DeleteTrip(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Trip{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertTripByOwnerTitle finds the trip matching (user_id, title), or
// creates one, then applies defaults to the found-or-created record.
// Used only by the seeding path.
func (r *Repository) UpsertTripByOwnerTitle(userID, title string, defaults models.Trip) (*models.Trip, error) {
	var existing models.Trip
	result := r.db.Where("user_id = ? AND title = ?", userID, title).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		trip := defaults
		trip.UserID = userID
		trip.Title = title
		if err := r.db.Create(&trip).Error; err != nil {
			return nil, err
		}
		return &trip, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	existing.Destination = defaults.Destination
	existing.StartDate = defaults.StartDate
	existing.EndDate = defaults.EndDate
	existing.ImageURL = defaults.ImageURL
	existing.Status = defaults.Status
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// SearchTrips returns trips matching the filter in the default order
func (r *Repository) SearchTrips(filter TripFilter) ([]models.Trip, error) {
	trips := make([]models.Trip, 0)
	query := r.db.Model(&models.Trip{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Destination != "" {
		query = query.Where("destination = ?", filter.Destination)
	}
	if filter.StartDate != nil {
		query = query.Where("start_date = ?", *filter.StartDate)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("title LIKE ? OR destination LIKE ?", like, like)
	}

	err := query.Order("start_date DESC").Find(&trips).Error
	return trips, err
}

func (r *Repository) CountTrips() (int64, error) {
	var count int64
	err := r.db.Model(&models.Trip{}).Count(&count).Error
	return count, err
}

// TripStatusBreakdown counts trips grouped by status
func (r *Repository) TripStatusBreakdown() (map[string]int, error) {
	type StatusCount struct {
		Status string
		Count  int
	}

	var results []StatusCount
	err := r.db.Model(&models.Trip{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error

	breakdown := make(map[string]int)
	for _, result := range results {
		breakdown[result.Status] = result.Count
	}

	return breakdown, err
}

// PopularCity repository methods

// ListPopularCities returns cities ordered by rating, best first, with
// ties broken by name
func (r *Repository) ListPopularCities() ([]models.PopularCity, error) {
	cities := make([]models.PopularCity, 0)
	err := r.db.Order("rating DESC, name ASC").Find(&cities).Error
	return cities, err
}

func (r *Repository) GetPopularCity(id uint) (*models.PopularCity, error) {
	var city models.PopularCity
	err := r.db.First(&city, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &city, err
}

func (r *Repository) CreatePopularCity(city *models.PopularCity) error {
	return r.db.Create(city).Error
}

func (r *Repository) UpdatePopularCity(city *models.PopularCity) error {
	return r.db.Save(city).Error
}

func (r *Repository) DeletePopularCity(id uint) error {
	result := r.db.Delete(&models.PopularCity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertPopularCityByNameCountry finds the city matching (name,
// country), or creates one, then applies defaults. Used only by the
// seeding path.
func (r *Repository) UpsertPopularCityByNameCountry(name, country string, defaults models.PopularCity) (*models.PopularCity, error) {
	var existing models.PopularCity
	result := r.db.Where("name = ? AND country = ?", name, country).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		city := defaults
		city.Name = name
		city.Country = country
		if err := r.db.Create(&city).Error; err != nil {
			return nil, err
		}
		return &city, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	existing.ImageURL = defaults.ImageURL
	existing.Rating = defaults.Rating
	existing.Reviews = defaults.Reviews
	if err := r.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// SearchPopularCities returns cities matching the filter in the
// default order
func (r *Repository) SearchPopularCities(filter CityFilter) ([]models.PopularCity, error) {
	cities := make([]models.PopularCity, 0)
	query := r.db.Model(&models.PopularCity{})

	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if filter.MinReviews > 0 {
		query = query.Where("reviews >= ?", filter.MinReviews)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("name LIKE ? OR country LIKE ?", like, like)
	}

	err := query.Order("rating DESC, name ASC").Find(&cities).Error
	return cities, err
}

func (r *Repository) CountPopularCities() (int64, error) {
	var count int64
	err := r.db.Model(&models.PopularCity{}).Count(&count).Error
	return count, err
}

// TopRatedCities returns the best rated cities up to limit
func (r *Repository) TopRatedCities(limit int) ([]models.PopularCity, error) {
	cities := make([]models.PopularCity, 0)
	err := r.db.Order("rating DESC, name ASC").Limit(limit).Find(&cities).Error
	return cities, err
}
