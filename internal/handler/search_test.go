package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-finder-api/internal/models"
	"restaurant-finder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearchService is a mock implementation of the SearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, req service.SearchRequest) (*models.RestaurantCandidate, error) {
	args := m.Called(ctx, req)
	candidate, _ := args.Get(0).(*models.RestaurantCandidate)
	return candidate, args.Error(1)
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func TestSearchHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		expectedReq    *service.SearchRequest
		mockCandidate  *models.RestaurantCandidate
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name: "address search with filters",
			body: `{"location":"1280 Main St W","filters":{"cuisineType":"mexican","distance":2000,"rating":4,"priceLevel":2}}`,
			expectedReq: &service.SearchRequest{
				SessionKey: "sess-1",
				Address:    "1280 Main St W",
				Filters:    models.SearchFilters{CuisineType: "mexican", RadiusMeters: 2000, MinRating: 4, PriceLevel: 2},
			},
			mockCandidate: &models.RestaurantCandidate{
				Name:       "Taco Place",
				Address:    "1 King St",
				PlaceID:    "p1",
				Rating:     floatPtr(4.5),
				PriceLevel: intPtr(2),
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []interface{}{"Taco Place", "1 King St", "p1", 4.5, float64(2)},
		},
		{
			name: "default radius and stored location",
			body: `{}`,
			expectedReq: &service.SearchRequest{
				SessionKey: "sess-1",
				Filters:    models.SearchFilters{RadiusMeters: 5000},
			},
			mockCandidate: &models.RestaurantCandidate{
				Name:    "Unrated Diner",
				Address: "2 Queen St",
				PlaceID: "p2",
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []interface{}{"Unrated Diner", "2 Queen St", "p2", nil, nil},
		},
		{
			name: "explicit coordinates",
			body: `{"latitude":43.24,"longitude":-79.89,"filters":{"distance":1000}}`,
			expectedReq: &service.SearchRequest{
				SessionKey:  "sess-1",
				Coordinates: &models.Location{Latitude: 43.24, Longitude: -79.89},
				Filters:     models.SearchFilters{RadiusMeters: 1000},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []interface{}{},
		},
		{
			name:           "only one coordinate",
			body:           `{"latitude":43.24}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "latitude and longitude must be provided together"},
		},
		{
			name:           "malformed body",
			body:           `{"filters":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid request body"},
		},
		{
			name: "no location available",
			body: `{}`,
			expectedReq: &service.SearchRequest{
				SessionKey: "sess-1",
				Filters:    models.SearchFilters{RadiusMeters: 5000},
			},
			mockError: &service.Error{
				Kind:    service.KindInput,
				Message: "no location data available",
				Err:     models.ErrLocationNotFound,
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "no location data available"},
		},
		{
			name: "unresolvable address",
			body: `{"location":"nowhere"}`,
			expectedReq: &service.SearchRequest{
				SessionKey: "sess-1",
				Address:    "nowhere",
				Filters:    models.SearchFilters{RadiusMeters: 5000},
			},
			mockError: &service.Error{
				Kind:    service.KindResolution,
				Message: "no results found for the given address",
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   map[string]interface{}{"error": "no results found for the given address"},
		},
		{
			name: "provider unavailable",
			body: `{"location":"Hamilton"}`,
			expectedReq: &service.SearchRequest{
				SessionKey: "sess-1",
				Address:    "Hamilton",
				Filters:    models.SearchFilters{RadiusMeters: 5000},
			},
			mockError: &service.Error{
				Kind:    service.KindGateway,
				Message: "the places provider is unavailable",
				Err:     assert.AnError,
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   map[string]interface{}{"error": "the places provider is unavailable"},
		},
		{
			name: "deadline exceeded",
			body: `{"location":"Hamilton"}`,
			expectedReq: &service.SearchRequest{
				SessionKey: "sess-1",
				Address:    "Hamilton",
				Filters:    models.SearchFilters{RadiusMeters: 5000},
			},
			mockError:      context.DeadlineExceeded,
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   map[string]interface{}{"error": "request timed out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockSearchService)
			handler := NewSearchHandler(mockSvc, 5000)

			if tt.expectedReq != nil {
				mockSvc.On("Search", mock.Anything, *tt.expectedReq).Return(tt.mockCandidate, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			c := newTestContext(w, req, "sess-1")

			handler.Search(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
			if tt.expectedReq == nil {
				mockSvc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodOptions, "/search", nil)

	Preflight(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
