// Package places talks to the external places provider: a legacy text-search endpoint used to
// geocode free-text addresses and the v1 nearby-search endpoint used to find restaurants.
package places

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrEmptyQuery is returned when an address lookup is attempted with no text.
	ErrEmptyQuery = errors.New("places: empty query")
	// ErrNoResults means the provider answered successfully with nothing.
	ErrNoResults = errors.New("places: no results")
	// ErrGateway covers transport, authentication and provider-side failures.
	ErrGateway = errors.New("places: gateway error")
	// ErrRejected means the provider refused the request parameters (HTTP 400).
	ErrRejected = errors.New("places: request rejected")
	// ErrParse means the provider response could not be understood.
	ErrParse = errors.New("places: malformed response")
)

const maxErrorBody = 1 << 10

// NewHTTPClient returns the client shared by the geocoder and the nearby-search client.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// CuisineCategory maps a human cuisine name to a provider place type:
// "Fast Food" becomes "fast_food_restaurant" and an empty cuisine becomes "restaurant".
// Values that already name a restaurant type are kept as they are.
func CuisineCategory(cuisine string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cuisine)), " ", "_")
	switch {
	case normalized == "", normalized == "restaurant":
		return "restaurant"
	case strings.HasSuffix(normalized, "_restaurant"):
		return normalized
	default:
		return normalized + "_restaurant"
	}
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(body))
}
