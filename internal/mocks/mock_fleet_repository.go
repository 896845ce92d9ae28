package mocks

import (
	"context"

	"github.com/omxqn/api-application/domain"
)

// MockFleetRepository implements domain.FleetRepository interface for testing
type MockFleetRepository struct {
	CreateBusFunc           func(ctx context.Context, bus *domain.Bus) error
	FindBusFunc             func(ctx context.Context, id uint) (*domain.Bus, error)
	ListBusesByOwnerFunc    func(ctx context.Context, ownerID uint) ([]domain.Bus, error)
	AssignDriverFunc        func(ctx context.Context, busID, driverID uint) error
	IsDriverAssignedFunc    func(ctx context.Context, busID, driverID uint) (bool, error)
	ListAssignedDriversFunc func(ctx context.Context, busID uint) ([]uint, error)
}

// NewMockFleetRepository creates a new MockFleetRepository with default behaviors
func NewMockFleetRepository() *MockFleetRepository {
	return &MockFleetRepository{}
}

// CreateBus creates a new bus
func (m *MockFleetRepository) CreateBus(ctx context.Context, bus *domain.Bus) error {
	if m.CreateBusFunc != nil {
		return m.CreateBusFunc(ctx, bus)
	}
	// Default behavior: success
	return nil
}

// FindBus finds a bus by ID
func (m *MockFleetRepository) FindBus(ctx context.Context, id uint) (*domain.Bus, error) {
	if m.FindBusFunc != nil {
		return m.FindBusFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrBusNotFound
}

// ListBusesByOwner lists an owner's buses
func (m *MockFleetRepository) ListBusesByOwner(ctx context.Context, ownerID uint) ([]domain.Bus, error) {
	if m.ListBusesByOwnerFunc != nil {
		return m.ListBusesByOwnerFunc(ctx, ownerID)
	}
	// Default behavior: no buses
	return nil, nil
}

// AssignDriver links a driver to a bus
func (m *MockFleetRepository) AssignDriver(ctx context.Context, busID, driverID uint) error {
	if m.AssignDriverFunc != nil {
		return m.AssignDriverFunc(ctx, busID, driverID)
	}
	// Default behavior: success
	return nil
}

// IsDriverAssigned checks a bus-driver assignment
func (m *MockFleetRepository) IsDriverAssigned(ctx context.Context, busID, driverID uint) (bool, error) {
	if m.IsDriverAssignedFunc != nil {
		return m.IsDriverAssignedFunc(ctx, busID, driverID)
	}
	// Default behavior: not assigned
	return false, nil
}

// ListAssignedDrivers lists driver IDs assigned to a bus
func (m *MockFleetRepository) ListAssignedDrivers(ctx context.Context, busID uint) ([]uint, error) {
	if m.ListAssignedDriversFunc != nil {
		return m.ListAssignedDriversFunc(ctx, busID)
	}
	// Default behavior: none assigned
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.FleetRepository = (*MockFleetRepository)(nil)
