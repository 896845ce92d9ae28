package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/omxqn/api-application/domain"
)

// TripRepositoryImpl implements domain.TripRepository using GORM
type TripRepositoryImpl struct {
	db *gorm.DB
}

// DBTrip represents the database model for a trip
type DBTrip struct {
	ID               uint   `gorm:"primaryKey"`
	BusID            uint   `gorm:"index"`
	DriverID         uint   `gorm:"index"`
	Date             string `gorm:"size:10;index"`
	StartTime        string `gorm:"size:8"`
	EndTime          string `gorm:"size:8"`
	PassengerType    string `gorm:"size:16"`
	SubscriptionType string `gorm:"size:32"`
	StartAddress     string `gorm:"size:255"`
	EndAddress       string `gorm:"size:255"`
	CreatedAt        time.Time
}

func (DBTrip) TableName() string { return "trips" }

// DBStopPoint represents the database model for a stop point
type DBStopPoint struct {
	ID        uint   `gorm:"primaryKey"`
	TripID    uint   `gorm:"index"`
	Name      string `gorm:"size:255"`
	Latitude  float64
	Longitude float64
}

func (DBStopPoint) TableName() string { return "stop_points" }

// NewTripRepository creates a new trip repository
func NewTripRepository(db *gorm.DB) domain.TripRepository {
	return &TripRepositoryImpl{db: db}
}

// Create implements domain.TripRepository
func (r *TripRepositoryImpl) Create(ctx context.Context, trip *domain.Trip) error {
	row := r.domainToDB(trip)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	trip.ID = row.ID
	trip.CreatedAt = row.CreatedAt
	return nil
}

// FindByID implements domain.TripRepository
func (r *TripRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Trip, error) {
	var row DBTrip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&row), nil
}

// PreviousTrips implements domain.TripRepository: trips whose end lies
// before the cut-off, most recent first.
func (r *TripRepositoryImpl) PreviousTrips(ctx context.Context, driverID uint, before time.Time) ([]domain.Trip, error) {
	cutoff := before.Format("2006-01-02 15:04:05")
	var rows []DBTrip
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND (date || ' ' || end_time) < ?", driverID, cutoff).
		Order("date DESC, end_time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.rowsToDomain(rows), nil
}

// UpcomingTrips implements domain.TripRepository: trips starting at or
// after the cut-off, soonest first.
func (r *TripRepositoryImpl) UpcomingTrips(ctx context.Context, driverID uint, after time.Time) ([]domain.Trip, error) {
	cutoff := after.Format("2006-01-02 15:04:05")
	var rows []DBTrip
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND (date || ' ' || start_time) >= ?", driverID, cutoff).
		Order("date ASC, start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.rowsToDomain(rows), nil
}

// AddStop implements domain.TripRepository
func (r *TripRepositoryImpl) AddStop(ctx context.Context, stop *domain.StopPoint) error {
	row := &DBStopPoint{
		TripID:    stop.TripID,
		Name:      stop.Name,
		Latitude:  stop.Latitude,
		Longitude: stop.Longitude,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	stop.ID = row.ID
	return nil
}

// StopsByTrip implements domain.TripRepository
func (r *TripRepositoryImpl) StopsByTrip(ctx context.Context, tripID uint) ([]domain.StopPoint, error) {
	var rows []DBStopPoint
	err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	stops := make([]domain.StopPoint, 0, len(rows))
	for _, row := range rows {
		stops = append(stops, domain.StopPoint{
			ID:        row.ID,
			TripID:    row.TripID,
			Name:      row.Name,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
	}
	return stops, nil
}

func (r *TripRepositoryImpl) rowsToDomain(rows []DBTrip) []domain.Trip {
	trips := make([]domain.Trip, 0, len(rows))
	for i := range rows {
		trips = append(trips, *r.dbToDomain(&rows[i]))
	}
	return trips
}

func (r *TripRepositoryImpl) domainToDB(trip *domain.Trip) *DBTrip {
	return &DBTrip{
		ID:               trip.ID,
		BusID:            trip.BusID,
		DriverID:         trip.DriverID,
		Date:             trip.Date,
		StartTime:        trip.StartTime,
		EndTime:          trip.EndTime,
		PassengerType:    trip.PassengerType,
		SubscriptionType: trip.SubscriptionType,
		StartAddress:     trip.StartAddress,
		EndAddress:       trip.EndAddress,
	}
}

func (r *TripRepositoryImpl) dbToDomain(row *DBTrip) *domain.Trip {
	return &domain.Trip{
		ID:               row.ID,
		BusID:            row.BusID,
		DriverID:         row.DriverID,
		Date:             row.Date,
		StartTime:        row.StartTime,
		EndTime:          row.EndTime,
		PassengerType:    row.PassengerType,
		SubscriptionType: row.SubscriptionType,
		StartAddress:     row.StartAddress,
		EndAddress:       row.EndAddress,
		CreatedAt:        row.CreatedAt,
	}
}
