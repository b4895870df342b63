package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restaurant-finder-api/internal/models"

	"github.com/mmcloughlin/geohash"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Geocoder resolves free-text addresses with the provider's text-search endpoint
type Geocoder struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	group      singleflight.Group
}

// NewGeocoder creates a new text-search geocoder
func NewGeocoder(httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *Geocoder {
	return &Geocoder{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
	}
}

// Resolve returns the coordinates of the first text-search match for address.
// Concurrent lookups of the same address share one outbound request.
func (g *Geocoder) Resolve(ctx context.Context, address string) (models.Location, error) {
	query := strings.TrimSpace(address)
	if query == "" {
		return models.Location{}, ErrEmptyQuery
	}

	ch := g.group.DoChan(query, func() (any, error) {
		return g.lookup(context.WithoutCancel(ctx), query)
	})

	select {
	case <-ctx.Done():
		return models.Location{}, fmt.Errorf("%w: %w", ErrGateway, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return models.Location{}, res.Err
		}
		return res.Val.(models.Location), nil
	}
}

func (g *Geocoder) lookup(ctx context.Context, query string) (models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: failed to create text search request: %v", ErrGateway, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: text search request failed: %w", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("%w: text search returned status %d: %s", ErrGateway, resp.StatusCode, readErrorBody(resp.Body))
	}

	var result textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.Location{}, fmt.Errorf("%w: could not decode text search response: %v", ErrParse, err)
	}

	switch result.Status {
	case "", "OK":
	case "ZERO_RESULTS":
		return models.Location{}, ErrNoResults
	default:
		return models.Location{}, fmt.Errorf("%w: text search status %s: %s", ErrGateway, result.Status, result.ErrorMessage)
	}

	if len(result.Results) == 0 {
		return models.Location{}, ErrNoResults
	}

	first := result.Results[0]
	if first.Geometry.Location.Lat == nil || first.Geometry.Location.Lng == nil {
		return models.Location{}, fmt.Errorf("%w: first text search result has no coordinates", ErrParse)
	}

	loc := models.Location{Latitude: *first.Geometry.Location.Lat, Longitude: *first.Geometry.Location.Lng}
	zerolog.Ctx(ctx).Debug().
		Str("name", first.Name).
		Str("formatted_address", first.FormattedAddress).
		Str("geohash", geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, 7)).
		Msg("address resolved")

	return loc, nil
}
