package service

import (
	"context"

	"restaurant-finder-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockLocationStore is a mock implementation of the LocationStore interface
type MockLocationStore struct {
	mock.Mock
}

func (m *MockLocationStore) SetLocation(ctx context.Context, key string, loc models.Location) error {
	args := m.Called(ctx, key, loc)
	return args.Error(0)
}

func (m *MockLocationStore) GetLocation(ctx context.Context, key string) (models.Location, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(models.Location), args.Error(1)
}

// MockAddressResolver is a mock implementation of the AddressResolver interface
type MockAddressResolver struct {
	mock.Mock
}

func (m *MockAddressResolver) Resolve(ctx context.Context, address string) (models.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.Location), args.Error(1)
}

// MockPlacesGateway is a mock implementation of the PlacesGateway interface
type MockPlacesGateway struct {
	mock.Mock
}

func (m *MockPlacesGateway) SearchNearby(ctx context.Context, loc models.Location, radiusMeters int, cuisine string) ([]models.RestaurantCandidate, error) {
	args := m.Called(ctx, loc, radiusMeters, cuisine)
	candidates, _ := args.Get(0).([]models.RestaurantCandidate)
	return candidates, args.Error(1)
}
