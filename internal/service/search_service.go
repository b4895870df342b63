package service

import (
	"context"
	"errors"
	"strings"

	"restaurant-finder-api/internal/models"
	"restaurant-finder-api/internal/places"

	"github.com/mmcloughlin/geohash"
	"github.com/rs/zerolog"
)

// AddressResolver turns a free-text address into coordinates
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (models.Location, error)
}

// PlacesGateway queries the places provider for restaurants around a location
type PlacesGateway interface {
	SearchNearby(ctx context.Context, loc models.Location, radiusMeters int, cuisine string) ([]models.RestaurantCandidate, error)
}

// SearchRequest is one restaurant search. The location is taken from Address when it is not
// blank, otherwise from Coordinates, otherwise from the location stored for SessionKey.
type SearchRequest struct {
	SessionKey  string
	Address     string
	Coordinates *models.Location
	Filters     models.SearchFilters
}

// SearchService runs the search pipeline: resolve location, query the provider, filter, pick
type SearchService struct {
	locations LocationStore
	resolver  AddressResolver
	gateway   PlacesGateway
	random    RandomSource
}

// NewSearchService creates a new search service. A nil random source selects from the
// process-wide math/rand/v2 generator.
func NewSearchService(locations LocationStore, resolver AddressResolver, gateway PlacesGateway, random RandomSource) *SearchService {
	if random == nil {
		random = globalSource{}
	}
	return &SearchService{
		locations: locations,
		resolver:  resolver,
		gateway:   gateway,
		random:    random,
	}
}

// Search returns one randomly chosen restaurant matching req, or nil when nothing matched.
// Failures are returned as *Error.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*models.RestaurantCandidate, error) {
	if err := req.Filters.Validate(); err != nil {
		return nil, newError(KindInput, err.Error(), err)
	}

	loc, err := s.resolveLocation(ctx, req)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)

	candidates, err := s.gateway.SearchNearby(ctx, loc, req.Filters.RadiusMeters, req.Filters.CuisineType)
	if err != nil {
		return nil, classifyGatewayError(err)
	}

	filtered := ApplyFilters(candidates, req.Filters)
	logger.Debug().
		Str("geohash", geohash.EncodeWithPrecision(loc.Latitude, loc.Longitude, 7)).
		Str("category", places.CuisineCategory(req.Filters.CuisineType)).
		Int("radius", req.Filters.RadiusMeters).
		Int("candidates", len(candidates)).
		Int("filtered", len(filtered)).
		Msg("places search completed")

	choice, ok := Pick(filtered, s.random)
	if !ok {
		return nil, nil
	}
	return &choice, nil
}

func (s *SearchService) resolveLocation(ctx context.Context, req SearchRequest) (models.Location, error) {
	if address := strings.TrimSpace(req.Address); address != "" {
		loc, err := s.resolver.Resolve(ctx, address)
		switch {
		case err == nil:
			return loc, nil
		case errors.Is(err, places.ErrNoResults):
			return models.Location{}, newError(KindResolution, "no results found for the given address", err)
		default:
			return models.Location{}, newError(KindResolution, "could not resolve the given address", err)
		}
	}

	if req.Coordinates != nil {
		if err := req.Coordinates.Validate(); err != nil {
			return models.Location{}, newError(KindInput, err.Error(), err)
		}
		return *req.Coordinates, nil
	}

	if req.SessionKey == "" {
		return models.Location{}, newError(KindInput, models.ErrLocationNotFound.Error(), models.ErrLocationNotFound)
	}
	loc, err := s.locations.GetLocation(ctx, req.SessionKey)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			return models.Location{}, newError(KindInput, models.ErrLocationNotFound.Error(), err)
		}
		return models.Location{}, newError(KindInternal, "could not load stored location", err)
	}
	return loc, nil
}

func classifyGatewayError(err error) *Error {
	switch {
	case errors.Is(err, places.ErrRejected):
		return newError(KindInput, "the places provider rejected the search criteria", err)
	case errors.Is(err, places.ErrParse):
		return newError(KindParse, "unexpected response from the places provider", err)
	case errors.Is(err, places.ErrGateway):
		return newError(KindGateway, "the places provider is unavailable", err)
	default:
		return newError(KindInternal, "internal server error", err)
	}
}
