package service

import (
	"math/rand/v2"

	"restaurant-finder-api/internal/models"
)

// RandomSource yields integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// globalSource draws from the goroutine-safe top-level math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Pick selects one candidate uniformly at random. It reports false when candidates is empty.
func Pick(candidates []models.RestaurantCandidate, src RandomSource) (models.RestaurantCandidate, bool) {
	if len(candidates) == 0 {
		return models.RestaurantCandidate{}, false
	}
	return candidates[src.IntN(len(candidates))], true
}
