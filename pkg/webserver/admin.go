package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/tripfolio-api/pkg/db"
	"github.com/tripfolio/tripfolio-api/pkg/models"
	"github.com/tripfolio/tripfolio-api/pkg/utils"
)

// adminSearchTrips lists trips with administrative filters: equality on
// user_id/status/destination/start_date and a free-text q over title
// and destination
func (s *Server) adminSearchTrips(c *gin.Context) {
	filter := db.TripFilter{
		UserID:      c.Query("user_id"),
		Status:      c.Query("status"),
		Destination: c.Query("destination"),
		Query:       c.Query("q"),
	}

	if raw := c.Query("start_date"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid start_date"))
			return
		}
		filter.StartDate = &date
	}

	trips, err := s.repo.SearchTrips(filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to search trips")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to search trips"))
		return
	}

	c.JSON(http.StatusOK, trips)
}

// adminSearchPopularCities lists cities filtered by country, minimum
// rating, minimum review count and a free-text q over name and country
func (s *Server) adminSearchPopularCities(c *gin.Context) {
	filter := db.CityFilter{
		Country: c.Query("country"),
		Query:   c.Query("q"),
	}

	if raw := c.Query("min_rating"); raw != "" {
		rating, err := models.ParseRating(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid min_rating"))
			return
		}
		filter.MinRating = rating
	}

	if raw := c.Query("min_reviews"); raw != "" {
		reviews, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid min_reviews"))
			return
		}
		filter.MinReviews = uint(reviews)
	}

	cities, err := s.repo.SearchPopularCities(filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to search popular cities")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to search popular cities"))
		return
	}

	c.JSON(http.StatusOK, cities)
}

// adminStats reports record counts, the trip status breakdown and the
// five best rated cities
func (s *Server) adminStats(c *gin.Context) {
	tripCount, err := s.repo.CountTrips()
	if err != nil {
		s.logger.WithError(err).Error("Failed to count trips")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to compute stats"))
		return
	}

	cityCount, err := s.repo.CountPopularCities()
	if err != nil {
		s.logger.WithError(err).Error("Failed to count popular cities")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to compute stats"))
		return
	}

	breakdown, err := s.repo.TripStatusBreakdown()
	if err != nil {
		s.logger.WithError(err).Error("Failed to compute trip status breakdown")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to compute stats"))
		return
	}

	topRated, err := s.repo.TopRatedCities(5)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list top rated cities")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to compute stats"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trips":            tripCount,
		"trips_by_status":  breakdown,
		"popular_cities":   cityCount,
		"top_rated_cities": topRated,
	})
}
