package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/omxqn/api-application/domain"
)

// FleetRepositoryImpl implements domain.FleetRepository using GORM.
// Bus-driver assignment is a join table, one row per (bus, driver) pair.
type FleetRepositoryImpl struct {
	db *gorm.DB
}

// DBBus represents the database model for a bus
type DBBus struct {
	ID                   uint   `gorm:"primaryKey"`
	OwnerID              uint   `gorm:"index"`
	BusNumber            int    `gorm:"index"`
	BoardSymbol          string `gorm:"size:32"`
	DrivingLicenseNumber int
	Specification        string `gorm:"size:255"`
	AirConditioner       bool
	ImageRef             string `gorm:"size:255"`
	CreatedAt            time.Time
}

func (DBBus) TableName() string { return "buses" }

// DBBusDriver is the bus-to-driver assignment join table.
type DBBusDriver struct {
	BusID     uint `gorm:"primaryKey;autoIncrement:false"`
	DriverID  uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (DBBusDriver) TableName() string { return "bus_drivers" }

// NewFleetRepository creates a new fleet repository
func NewFleetRepository(db *gorm.DB) domain.FleetRepository {
	return &FleetRepositoryImpl{db: db}
}

// CreateBus implements domain.FleetRepository
func (r *FleetRepositoryImpl) CreateBus(ctx context.Context, bus *domain.Bus) error {
	row := &DBBus{
		OwnerID:              bus.OwnerID,
		BusNumber:            bus.BusNumber,
		BoardSymbol:          bus.BoardSymbol,
		DrivingLicenseNumber: bus.DrivingLicenseNumber,
		Specification:        bus.Specification,
		AirConditioner:       bus.AirConditioner,
		ImageRef:             bus.ImageRef,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	bus.ID = row.ID
	bus.CreatedAt = row.CreatedAt
	return nil
}

// FindBus implements domain.FleetRepository
func (r *FleetRepositoryImpl) FindBus(ctx context.Context, id uint) (*domain.Bus, error) {
	var row DBBus
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBusNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&row), nil
}

// ListBusesByOwner implements domain.FleetRepository
func (r *FleetRepositoryImpl) ListBusesByOwner(ctx context.Context, ownerID uint) ([]domain.Bus, error) {
	var rows []DBBus
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	buses := make([]domain.Bus, 0, len(rows))
	for i := range rows {
		buses = append(buses, *r.dbToDomain(&rows[i]))
	}
	return buses, nil
}

// AssignDriver implements domain.FleetRepository. Re-assigning an already
// assigned driver is a no-op.
func (r *FleetRepositoryImpl) AssignDriver(ctx context.Context, busID, driverID uint) error {
	err := r.db.WithContext(ctx).Create(&DBBusDriver{BusID: busID, DriverID: driverID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// IsDriverAssigned implements domain.FleetRepository
func (r *FleetRepositoryImpl) IsDriverAssigned(ctx context.Context, busID, driverID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBBusDriver{}).
		Where("bus_id = ? AND driver_id = ?", busID, driverID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAssignedDrivers implements domain.FleetRepository
func (r *FleetRepositoryImpl) ListAssignedDrivers(ctx context.Context, busID uint) ([]uint, error) {
	var rows []DBBusDriver
	err := r.db.WithContext(ctx).Where("bus_id = ?", busID).Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.DriverID)
	}
	return ids, nil
}

func (r *FleetRepositoryImpl) dbToDomain(row *DBBus) *domain.Bus {
	return &domain.Bus{
		ID:                   row.ID,
		OwnerID:              row.OwnerID,
		BusNumber:            row.BusNumber,
		BoardSymbol:          row.BoardSymbol,
		DrivingLicenseNumber: row.DrivingLicenseNumber,
		Specification:        row.Specification,
		AirConditioner:       row.AirConditioner,
		ImageRef:             row.ImageRef,
		CreatedAt:            row.CreatedAt,
	}
}
