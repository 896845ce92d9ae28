package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/omxqn/api-application/domain"
)

// FleetServiceImpl implements domain.FleetService
type FleetServiceImpl struct {
	fleet     domain.FleetRepository
	trips     domain.TripRepository
	locations domain.LocationStore
	publisher domain.LocationPublisher
	log       *zap.Logger
}

// NewFleetService creates a new fleet service. publisher may be nil when
// no live subscribers exist (tests, batch tooling).
func NewFleetService(
	fleet domain.FleetRepository,
	trips domain.TripRepository,
	locations domain.LocationStore,
	publisher domain.LocationPublisher,
	log *zap.Logger,
) domain.FleetService {
	return &FleetServiceImpl{
		fleet:     fleet,
		trips:     trips,
		locations: locations,
		publisher: publisher,
		log:       log,
	}
}

// RegisterBus implements domain.FleetService
func (s *FleetServiceImpl) RegisterBus(ctx context.Context, bus *domain.Bus) (*domain.Bus, error) {
	if err := s.fleet.CreateBus(ctx, bus); err != nil {
		return nil, err
	}
	s.log.Info("bus registered", zap.Uint("bus_id", bus.ID), zap.Uint("owner_id", bus.OwnerID))
	return bus, nil
}

// ListOwnerBuses implements domain.FleetService
func (s *FleetServiceImpl) ListOwnerBuses(ctx context.Context, ownerID uint) ([]domain.Bus, error) {
	return s.fleet.ListBusesByOwner(ctx, ownerID)
}

// CreateTrip implements domain.FleetService. The bus must exist and the
// driver must be on its assignment list.
func (s *FleetServiceImpl) CreateTrip(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if _, err := s.fleet.FindBus(ctx, trip.BusID); err != nil {
		return nil, err
	}
	assigned, err := s.fleet.IsDriverAssigned(ctx, trip.BusID, trip.DriverID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.ErrDriverNotAssigned
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// PreviousTrips implements domain.FleetService
func (s *FleetServiceImpl) PreviousTrips(ctx context.Context, driverID uint) ([]domain.Trip, error) {
	return s.trips.PreviousTrips(ctx, driverID, time.Now())
}

// UpcomingTrips implements domain.FleetService
func (s *FleetServiceImpl) UpcomingTrips(ctx context.Context, driverID uint) ([]domain.Trip, error) {
	return s.trips.UpcomingTrips(ctx, driverID, time.Now())
}

// AddStop implements domain.FleetService
func (s *FleetServiceImpl) AddStop(ctx context.Context, stop *domain.StopPoint) (*domain.StopPoint, error) {
	if _, err := s.trips.FindByID(ctx, stop.TripID); err != nil {
		return nil, err
	}
	if err := s.trips.AddStop(ctx, stop); err != nil {
		return nil, err
	}
	return stop, nil
}

// TripStops implements domain.FleetService
func (s *FleetServiceImpl) TripStops(ctx context.Context, tripID uint) ([]domain.StopPoint, error) {
	if _, err := s.trips.FindByID(ctx, tripID); err != nil {
		return nil, err
	}
	return s.trips.StopsByTrip(ctx, tripID)
}

// ReportLocation implements domain.FleetService. Only a captain assigned
// to the bus may report its position.
func (s *FleetServiceImpl) ReportLocation(ctx context.Context, driverID uint, loc *domain.BusLocation) error {
	assigned, err := s.fleet.IsDriverAssigned(ctx, loc.BusID, driverID)
	if err != nil {
		return err
	}
	if !assigned {
		return domain.ErrDriverNotAssigned
	}

	if loc.ReportedAt.IsZero() {
		loc.ReportedAt = time.Now()
	}
	if err := s.locations.Set(ctx, loc); err != nil {
		return err
	}

	if s.publisher != nil {
		s.publisher.Publish(loc)
	}
	return nil
}

// Location implements domain.FleetService
func (s *FleetServiceImpl) Location(ctx context.Context, busID uint) (*domain.BusLocation, error) {
	return s.locations.Get(ctx, busID)
}

// AssignedDrivers implements domain.FleetService
func (s *FleetServiceImpl) AssignedDrivers(ctx context.Context, ownerID, busID uint) ([]uint, error) {
	bus, err := s.fleet.FindBus(ctx, busID)
	if err != nil {
		return nil, err
	}
	if bus.OwnerID != ownerID {
		return nil, domain.ErrNotBusOwner
	}
	return s.fleet.ListAssignedDrivers(ctx, busID)
}
