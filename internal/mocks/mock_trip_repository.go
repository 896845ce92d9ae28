package mocks

import (
	"context"
	"time"

	"github.com/omxqn/api-application/domain"
)

// MockTripRepository implements domain.TripRepository interface for testing
type MockTripRepository struct {
	CreateFunc        func(ctx context.Context, trip *domain.Trip) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Trip, error)
	PreviousTripsFunc func(ctx context.Context, driverID uint, before time.Time) ([]domain.Trip, error)
	UpcomingTripsFunc func(ctx context.Context, driverID uint, after time.Time) ([]domain.Trip, error)
	AddStopFunc       func(ctx context.Context, stop *domain.StopPoint) error
	StopsByTripFunc   func(ctx context.Context, tripID uint) ([]domain.StopPoint, error)
}

// NewMockTripRepository creates a new MockTripRepository with default behaviors
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{}
}

// Create creates a new trip
func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, trip)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a trip by ID
func (m *MockTripRepository) FindByID(ctx context.Context, id uint) (*domain.Trip, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTripNotFound
}

// PreviousTrips lists trips that ended before the cutoff
func (m *MockTripRepository) PreviousTrips(ctx context.Context, driverID uint, before time.Time) ([]domain.Trip, error) {
	if m.PreviousTripsFunc != nil {
		return m.PreviousTripsFunc(ctx, driverID, before)
	}
	// Default behavior: no trips
	return nil, nil
}

// UpcomingTrips lists trips that end after the cutoff
func (m *MockTripRepository) UpcomingTrips(ctx context.Context, driverID uint, after time.Time) ([]domain.Trip, error) {
	if m.UpcomingTripsFunc != nil {
		return m.UpcomingTripsFunc(ctx, driverID, after)
	}
	// Default behavior: no trips
	return nil, nil
}

// AddStop adds a stop point to a trip
func (m *MockTripRepository) AddStop(ctx context.Context, stop *domain.StopPoint) error {
	if m.AddStopFunc != nil {
		return m.AddStopFunc(ctx, stop)
	}
	// Default behavior: success
	return nil
}

// StopsByTrip lists the stop points of a trip
func (m *MockTripRepository) StopsByTrip(ctx context.Context, tripID uint) ([]domain.StopPoint, error) {
	if m.StopsByTripFunc != nil {
		return m.StopsByTripFunc(ctx, tripID)
	}
	// Default behavior: no stops
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.TripRepository = (*MockTripRepository)(nil)
