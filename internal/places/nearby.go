package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant-finder-api/internal/models"

	"github.com/rs/zerolog"
)

// FieldMask lists the only place fields requested from the provider.
var FieldMask = strings.Join([]string{
	"places.displayName",
	"places.id",
	"places.shortFormattedAddress",
	"places.types",
	"places.rating",
	"places.priceLevel",
}, ",")

// Client issues nearby searches against the places v1 API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
}

// NewClient creates a new nearby-search client
func NewClient(httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
	}
}

// SearchNearby returns the places of the cuisine's category within radiusMeters of loc,
// in the order the provider returned them. A single attempt is made.
func (c *Client) SearchNearby(ctx context.Context, loc models.Location, radiusMeters int, cuisine string) ([]models.RestaurantCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(nearbyRequest{
		IncludedTypes: []string{CuisineCategory(cuisine)},
		LocationRestriction: locationRestriction{
			Circle: circle{
				Center: latLng{Latitude: loc.Latitude, Longitude: loc.Longitude},
				Radius: radiusMeters,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal nearby request: %v", ErrGateway, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create nearby request: %v", ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", FieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: nearby request failed: %w", ErrGateway, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		detail := readErrorBody(resp.Body)
		if isUnsupportedTypes(detail) {
			return nil, fmt.Errorf("%w: %s", ErrRejected, detail)
		}
		// The provider also answers 400 for a bad API key.
		return nil, fmt.Errorf("%w: nearby search returned status 400: %s", ErrGateway, detail)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: nearby search returned status %d: %s", ErrGateway, resp.StatusCode, readErrorBody(resp.Body))
	}

	var result nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: could not decode nearby response: %v", ErrParse, err)
	}

	candidates := make([]models.RestaurantCandidate, 0, len(result.Places))
	for i, p := range result.Places {
		if p.ID == "" || p.DisplayName == nil || p.DisplayName.Text == "" {
			return nil, fmt.Errorf("%w: place %d is missing id or displayName", ErrParse, i)
		}

		candidate := models.RestaurantCandidate{
			Name:    p.DisplayName.Text,
			Address: p.ShortFormattedAddress,
			PlaceID: p.ID,
			Rating:  p.Rating,
		}
		if p.PriceLevel.Valid {
			level := p.PriceLevel.Level
			candidate.PriceLevel = &level
		} else if p.PriceLevel.Unknown != "" {
			zerolog.Ctx(ctx).Debug().
				Str("place_id", p.ID).
				Str("price_level", p.PriceLevel.Unknown).
				Msg("ignoring unknown price level")
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// isUnsupportedTypes reports whether a 400 body rejects the requested place type, which is the
// only provider 400 caused by the caller's search criteria.
func isUnsupportedTypes(body string) bool {
	return strings.Contains(strings.ToLower(body), "unsupported types")
}
