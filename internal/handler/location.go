package handler

import (
	"context"
	"errors"
	"net/http"

	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles location reports and lookups
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	Report(ctx context.Context, key string, loc models.Location) error
	Current(ctx context.Context, key string) (models.Location, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required" example:"43.24"`
	Longitude *float64 `json:"longitude" binding:"required" example:"-79.89"`
}

// ReportLocation handles POST /location requests
//
//	@Summary	Store the caller's current location
//	@Tags		location
//	@Accept		json
//	@Produce	plain
//	@Param		X-Session-ID	header		string			false	"session key"
//	@Param		location		body		locationRequest	true	"coordinates"
//	@Success	200				{string}	string			"Location received and stored"
//	@Failure	400				{object}	ErrorResponse
//	@Router		/location [post]
func (h *LocationHandler) ReportLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "body must contain numeric 'latitude' and 'longitude'"})
		return
	}

	loc := models.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := h.service.Report(c.Request.Context(), middleware.SessionKey(c), loc); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Location received and stored")
}

// GetLocation handles GET /location requests
//
//	@Summary	Return the caller's stored location
//	@Tags		location
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"session key"
//	@Success	200				{object}	models.Location
//	@Router		/location [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	loc, err := h.service.Current(c.Request.Context(), middleware.SessionKey(c))
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			c.JSON(http.StatusOK, ErrorResponse{Error: models.ErrLocationNotFound.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}
