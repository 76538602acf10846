package webserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/tripfolio-api/pkg/db"
	"github.com/tripfolio/tripfolio-api/pkg/models"
	"github.com/tripfolio/tripfolio-api/pkg/utils"
)

// PopularCityRequest is the body for creating or fully replacing a
// popular city
type PopularCityRequest struct {
	Name     string        `json:"name" binding:"required,max=128"`
	Country  string        `json:"country" binding:"required,max=128"`
	ImageURL string        `json:"image_url" binding:"max=500"`
	Rating   models.Rating `json:"rating"`
	Reviews  uint          `json:"reviews"`
}

// PatchPopularCityRequest is the merge-patch body
type PatchPopularCityRequest struct {
	Name     *string        `json:"name"`
	Country  *string        `json:"country"`
	ImageURL *string        `json:"image_url"`
	Rating   *models.Rating `json:"rating"`
	Reviews  *uint          `json:"reviews"`
}

func (s *Server) cityIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid city ID"))
		return 0, false
	}
	return uint(id), true
}

// listPopularCities returns all cities ordered by rating, best first
func (s *Server) listPopularCities(c *gin.Context) {
	cities, err := s.repo.ListPopularCities()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list popular cities")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to list popular cities"))
		return
	}

	c.JSON(http.StatusOK, cities)
}

// createPopularCity creates a new city recommendation
func (s *Server) createPopularCity(c *gin.Context) {
	var req PopularCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	req.Name = s.validator.SanitizeInput(req.Name)
	req.Country = s.validator.SanitizeInput(req.Country)
	if req.ImageURL != "" && !s.validator.ValidateURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid image_url"))
		return
	}

	city := &models.PopularCity{
		Name:     req.Name,
		Country:  req.Country,
		ImageURL: req.ImageURL,
		Rating:   req.Rating,
		Reviews:  req.Reviews,
	}

	if err := s.repo.CreatePopularCity(city); err != nil {
		s.logger.WithError(err).Error("Failed to create popular city")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create popular city"))
		return
	}

	s.logger.LogResource("popular_city", city.ID, "create", true)
	c.JSON(http.StatusCreated, city)
}

// getPopularCity returns a specific city by ID
func (s *Server) getPopularCity(c *gin.Context) {
	id, ok := s.cityIDParam(c)
	if !ok {
		return
	}

	city, err := s.repo.GetPopularCity(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("City not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get popular city")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get popular city"))
		return
	}

	c.JSON(http.StatusOK, city)
}

// replacePopularCity fully replaces a city's writable fields
func (s *Server) replacePopularCity(c *gin.Context) {
	id, ok := s.cityIDParam(c)
	if !ok {
		return
	}

	var req PopularCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	req.Name = s.validator.SanitizeInput(req.Name)
	req.Country = s.validator.SanitizeInput(req.Country)
	if req.ImageURL != "" && !s.validator.ValidateURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid image_url"))
		return
	}

	city, err := s.repo.GetPopularCity(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("City not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get popular city")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get popular city"))
		return
	}

	city.Name = req.Name
	city.Country = req.Country
	city.ImageURL = req.ImageURL
	city.Rating = req.Rating
	city.Reviews = req.Reviews

	if err := s.repo.UpdatePopularCity(city); err != nil {
		s.logger.WithError(err).Error("Failed to update popular city")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update popular city"))
		return
	}

	s.logger.LogResource("popular_city", city.ID, "replace", true)
	c.JSON(http.StatusOK, city)
}

// patchPopularCity merges only the supplied fields into a city
func (s *Server) patchPopularCity(c *gin.Context) {
	id, ok := s.cityIDParam(c)
	if !ok {
		return
	}

	var req PatchPopularCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	if req.ImageURL != nil && *req.ImageURL != "" && !s.validator.ValidateURL(*req.ImageURL) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid image_url"))
		return
	}

	city, err := s.repo.GetPopularCity(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("City not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get popular city")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get popular city"))
		return
	}

	// Required fields may be re-supplied but never blanked
	if req.Name != nil {
		if v := s.validator.SanitizeInput(*req.Name); v != "" {
			city.Name = v
		} else {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("name must not be empty"))
			return
		}
	}
	if req.Country != nil {
		if v := s.validator.SanitizeInput(*req.Country); v != "" {
			city.Country = v
		} else {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("country must not be empty"))
			return
		}
	}
	if req.ImageURL != nil {
		city.ImageURL = *req.ImageURL
	}
	if req.Rating != nil {
		city.Rating = *req.Rating
	}
	if req.Reviews != nil {
		city.Reviews = *req.Reviews
	}

	if err := s.repo.UpdatePopularCity(city); err != nil {
		s.logger.WithError(err).Error("Failed to update popular city")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update popular city"))
		return
	}

	s.logger.LogResource("popular_city", city.ID, "patch", true)
	c.JSON(http.StatusOK, city)
}

// deletePopularCity permanently removes a city
func (s *Server) deletePopularCity(c *gin.Context) {
	id, ok := s.cityIDParam(c)
	if !ok {
		return
	}

	if err := s.repo.DeletePopularCity(id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("City not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to delete popular city")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete popular city"))
		return
	}

	s.logger.LogResource("popular_city", id, "delete", true)
	c.Status(http.StatusNoContent)
}
