package mocks

import (
	"context"

	"github.com/omxqn/api-application/domain"
)

// MockLocationStore implements domain.LocationStore interface for testing
type MockLocationStore struct {
	SetFunc func(ctx context.Context, loc *domain.BusLocation) error
	GetFunc func(ctx context.Context, busID uint) (*domain.BusLocation, error)
}

// NewMockLocationStore creates a new MockLocationStore with default behaviors
func NewMockLocationStore() *MockLocationStore {
	return &MockLocationStore{}
}

// Set stores the latest position for a bus
func (m *MockLocationStore) Set(ctx context.Context, loc *domain.BusLocation) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, loc)
	}
	// Default behavior: success
	return nil
}

// Get returns the latest position for a bus
func (m *MockLocationStore) Get(ctx context.Context, busID uint) (*domain.BusLocation, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, busID)
	}
	// Default behavior: no report yet
	return nil, domain.ErrBusNotFound
}

// Compile-time interface compliance verification
var _ domain.LocationStore = (*MockLocationStore)(nil)
