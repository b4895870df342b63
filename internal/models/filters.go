package models

import "fmt"

const (
	// MaxRadiusMeters is the largest circle the places provider accepts.
	MaxRadiusMeters = 50000
	// MaxPriceLevel is the most expensive provider price level.
	MaxPriceLevel = 4
)

// SearchFilters holds the criteria of a single search request.
// A PriceLevel of 0 disables price filtering.
type SearchFilters struct {
	CuisineType  string
	RadiusMeters int
	MinRating    float64
	PriceLevel   int
}

// Validate rejects filters that must never reach the provider.
func (f SearchFilters) Validate() error {
	if f.RadiusMeters <= 0 {
		return &ValidationError{Field: "distance", Message: "distance must be a positive number of meters"}
	}
	if f.RadiusMeters > MaxRadiusMeters {
		return &ValidationError{Field: "distance", Message: fmt.Sprintf("distance must not exceed %d meters", MaxRadiusMeters)}
	}
	if f.MinRating < 0 {
		return &ValidationError{Field: "rating", Message: "rating must not be negative"}
	}
	if f.PriceLevel < 0 || f.PriceLevel > MaxPriceLevel {
		return &ValidationError{Field: "priceLevel", Message: fmt.Sprintf("priceLevel must be between 0 and %d", MaxPriceLevel)}
	}
	return nil
}
