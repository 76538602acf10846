package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tripfolio/tripfolio-api/pkg/db"
	"github.com/tripfolio/tripfolio-api/pkg/models"
	"github.com/tripfolio/tripfolio-api/pkg/utils"
)

// TripRequest is the body for creating or fully replacing a trip. A
// replace overwrites every writable field, so omitted optional fields
// fall back to their defaults.
type TripRequest struct {
	UserID      string      `json:"user_id" binding:"required,max=128"`
	Title       string      `json:"title" binding:"required,max=255"`
	Destination string      `json:"destination" binding:"required,max=255"`
	StartDate   models.Date `json:"start_date" binding:"required"`
	EndDate     models.Date `json:"end_date" binding:"required"`
	ImageURL    string      `json:"image_url" binding:"max=500"`
	Status      string      `json:"status" binding:"max=64"`
}

// PatchTripRequest is the merge-patch body: only supplied fields change
type PatchTripRequest struct {
	UserID      *string      `json:"user_id"`
	Title       *string      `json:"title"`
	Destination *string      `json:"destination"`
	StartDate   *models.Date `json:"start_date"`
	EndDate     *models.Date `json:"end_date"`
	ImageURL    *string      `json:"image_url"`
	Status      *string      `json:"status"`
}

func (s *Server) sanitizeTripRequest(req *TripRequest) {
	req.UserID = s.validator.SanitizeInput(req.UserID)
	req.Title = s.validator.SanitizeInput(req.Title)
	req.Destination = s.validator.SanitizeInput(req.Destination)
	req.Status = s.validator.SanitizeInput(req.Status)
}

// listTrips returns all trips, optionally restricted to one owner via
// the userId query parameter. No owner scoping is enforced.
func (s *Server) listTrips(c *gin.Context) {
	trips, err := s.repo.ListTrips(c.Query("userId"))
	if err != nil {
		s.logger.WithError(err).Error("Failed to list trips")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to list trips"))
		return
	}

	c.JSON(http.StatusOK, trips)
}

// createTrip creates a new trip
func (s *Server) createTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	s.sanitizeTripRequest(&req)
	if req.ImageURL != "" && !s.validator.ValidateURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid image_url"))
		return
	}

	trip := &models.Trip{
		UserID:      req.UserID,
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	}

	if err := s.repo.CreateTrip(trip); err != nil {
		s.logger.WithError(err).Error("Failed to create trip")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create trip"))
		return
	}

	s.logger.LogResource("trip", trip.ID, "create", true)
	c.JSON(http.StatusCreated, trip)
}

// getTrip returns a specific trip by ID
func (s *Server) getTrip(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trip ID"))
		return
	}

	trip, err := s.repo.GetTrip(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trip not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get trip")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get trip"))
		return
	}

	c.JSON(http.StatusOK, trip)
}

// replaceTrip fully replaces a trip's writable fields
func (s *Server) replaceTrip(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trip ID"))
		return
	}

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	s.sanitizeTripRequest(&req)
	if req.ImageURL != "" && !s.validator.ValidateURL(req.ImageURL) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid image_url"))
		return
	}

	trip, err := s.repo.GetTrip(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trip not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get trip")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get trip"))
		return
	}

	trip.UserID = req.UserID
	trip.Title = req.Title
	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.ImageURL = req.ImageURL
	trip.Status = req.Status
	if trip.Status == "" {
		trip.Status = models.DefaultTripStatus
	}

	if err := s.repo.UpdateTrip(trip); err != nil {
		s.logger.WithError(err).Error("Failed to update trip")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update trip"))
		return
	}

	s.logger.LogResource("trip", trip.ID, "replace", true)
	c.JSON(http.StatusOK, trip)
}

// patchTrip merges only the supplied fields into a trip
func (s *Server) patchTrip(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trip ID"))
		return
	}

	var req PatchTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	if req.ImageURL != nil && *req.ImageURL != "" && !s.validator.ValidateURL(*req.ImageURL) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid image_url"))
		return
	}

	trip, err := s.repo.GetTrip(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trip not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get trip")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get trip"))
		return
	}

	// Required fields may be re-supplied but never blanked
	if req.UserID != nil {
		if v := s.validator.SanitizeInput(*req.UserID); v != "" {
			trip.UserID = v
		} else {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("user_id must not be empty"))
			return
		}
	}
	if req.Title != nil {
		if v := s.validator.SanitizeInput(*req.Title); v != "" {
			trip.Title = v
		} else {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("title must not be empty"))
			return
		}
	}
	if req.Destination != nil {
		if v := s.validator.SanitizeInput(*req.Destination); v != "" {
			trip.Destination = v
		} else {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("destination must not be empty"))
			return
		}
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.ImageURL != nil {
		trip.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		trip.Status = s.validator.SanitizeInput(*req.Status)
	}

	if err := s.repo.UpdateTrip(trip); err != nil {
		s.logger.WithError(err).Error("Failed to update trip")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update trip"))
		return
	}

	s.logger.LogResource("trip", trip.ID, "patch", true)
	c.JSON(http.StatusOK, trip)
}

// deleteTrip permanently removes a trip
func (s *Server) deleteTrip(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid trip ID"))
		return
	}

	if err := s.repo.DeleteTrip(id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Trip not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to delete trip")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete trip"))
		return
	}

	s.logger.LogResource("trip", id, "delete", true)
	c.Status(http.StatusNoContent)
}
