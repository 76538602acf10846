package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/tripfolio-api/pkg/utils"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// Trip management
	trips := s.router.Group("/trips")
	{
		trips.GET("", s.listTrips)
		trips.POST("", s.createTrip)
		trips.GET("/:id", s.getTrip)
		trips.PUT("/:id", s.replaceTrip)
		trips.PATCH("/:id", s.patchTrip)
		trips.DELETE("/:id", s.deleteTrip)
	}

	// Popular city recommendations
	cities := s.router.Group("/popular-cities")
	{
		cities.GET("", s.listPopularCities)
		cities.POST("", s.createPopularCity)
		cities.GET("/:id", s.getPopularCity)
		cities.PUT("/:id", s.replacePopularCity)
		cities.PATCH("/:id", s.patchPopularCity)
		cities.DELETE("/:id", s.deletePopularCity)
	}

	// Administrative read surface
	admin := s.router.Group("/admin")
	{
		admin.GET("/trips", s.adminSearchTrips)
		admin.GET("/popular-cities", s.adminSearchPopularCities)
		admin.GET("/stats", s.adminStats)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Route not found"))
	})
}
