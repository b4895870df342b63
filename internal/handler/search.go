package handler

import (
	"context"
	"net/http"

	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/models"
	"restaurant-finder-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles restaurant search requests
type SearchHandler struct {
	service       SearchService
	defaultRadius int
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(ctx context.Context, req service.SearchRequest) (*models.RestaurantCandidate, error)
}

// NewSearchHandler creates a new search handler. defaultRadius applies when a request
// does not carry a distance.
func NewSearchHandler(svc SearchService, defaultRadius int) *SearchHandler {
	return &SearchHandler{service: svc, defaultRadius: defaultRadius}
}

type searchFilters struct {
	CuisineType string  `json:"cuisineType" example:"Mexican"`
	Distance    *int    `json:"distance" example:"5000"`
	Rating      float64 `json:"rating" example:"4"`
	PriceLevel  int     `json:"priceLevel" example:"2"`
}

type searchRequest struct {
	Location  string         `json:"location" example:"1280 Main St W, Hamilton, ON"`
	Latitude  *float64       `json:"latitude"`
	Longitude *float64       `json:"longitude"`
	Filters   *searchFilters `json:"filters"`
}

// Search handles POST /search requests
//
//	@Summary		Pick one random restaurant near an address or the stored location
//	@Description	Returns [name, address, placeId, rating, priceLevel], or [] when nothing matches.
//	@Tags			search
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"session key"
//	@Param			search			body		searchRequest	true	"location and filters"
//	@Success		200				{array}		any
//	@Failure		400				{object}	ErrorResponse
//	@Failure		422				{object}	ErrorResponse
//	@Failure		502				{object}	ErrorResponse
//	@Failure		504				{object}	ErrorResponse
//	@Router			/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "latitude and longitude must be provided together"})
		return
	}

	searchReq := service.SearchRequest{
		SessionKey: middleware.SessionKey(c),
		Address:    req.Location,
		Filters:    h.filters(req.Filters),
	}
	if req.Latitude != nil {
		searchReq.Coordinates = &models.Location{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	candidate, err := h.service.Search(c.Request.Context(), searchReq)
	if err != nil {
		respondError(c, err)
		return
	}

	if candidate == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}

	c.JSON(http.StatusOK, candidate.Tuple())
}

func (h *SearchHandler) filters(f *searchFilters) models.SearchFilters {
	filters := models.SearchFilters{RadiusMeters: h.defaultRadius}
	if f == nil {
		return filters
	}

	filters.CuisineType = f.CuisineType
	filters.MinRating = f.Rating
	filters.PriceLevel = f.PriceLevel
	if f.Distance != nil {
		filters.RadiusMeters = *f.Distance
	}
	return filters
}
