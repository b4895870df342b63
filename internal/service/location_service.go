package service

import (
	"context"
	"errors"

	"restaurant-finder-api/internal/models"
)

// LocationStore holds the latest reported location per session key
type LocationStore interface {
	SetLocation(ctx context.Context, key string, loc models.Location) error
	GetLocation(ctx context.Context, key string) (models.Location, error)
}

// LocationService records and returns client reported locations
type LocationService struct {
	store LocationStore
}

// NewLocationService creates a new location service
func NewLocationService(store LocationStore) *LocationService {
	return &LocationService{store: store}
}

// Report validates loc and stores it as the latest location for key
func (s *LocationService) Report(ctx context.Context, key string, loc models.Location) error {
	if key == "" {
		return newError(KindInput, "missing session key", nil)
	}
	if err := loc.Validate(); err != nil {
		return newError(KindInput, err.Error(), err)
	}
	if err := s.store.SetLocation(ctx, key, loc); err != nil {
		return newError(KindInternal, "could not store location", err)
	}
	return nil
}

// Current returns the latest location for key. The error wraps models.ErrLocationNotFound
// when nothing has been reported.
func (s *LocationService) Current(ctx context.Context, key string) (models.Location, error) {
	if key == "" {
		return models.Location{}, newError(KindInput, models.ErrLocationNotFound.Error(), models.ErrLocationNotFound)
	}
	loc, err := s.store.GetLocation(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			return models.Location{}, newError(KindInput, models.ErrLocationNotFound.Error(), err)
		}
		return models.Location{}, newError(KindInternal, "could not load location", err)
	}
	return loc, nil
}
