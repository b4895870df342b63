package service

import "restaurant-finder-api/internal/models"

// ApplyFilters keeps the candidates matching the price level and minimum rating of filters,
// preserving their order. A candidate without a rating is never excluded by MinRating; a
// candidate without a price level is excluded whenever a specific PriceLevel is requested.
func ApplyFilters(candidates []models.RestaurantCandidate, filters models.SearchFilters) []models.RestaurantCandidate {
	filtered := make([]models.RestaurantCandidate, 0, len(candidates))
	for _, c := range candidates {
		if filters.PriceLevel != 0 && (c.PriceLevel == nil || *c.PriceLevel != filters.PriceLevel) {
			continue
		}
		if c.Rating != nil && *c.Rating < filters.MinRating {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}
