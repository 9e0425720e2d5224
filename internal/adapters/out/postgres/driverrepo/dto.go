// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence. Drivers are stored together with their registered
// vehicle in a one-to-one relation.
package driverrepo

import (
	"time"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. Indexed by status so the available-driver scan stays cheap.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	FCMToken  string `gorm:"column:fcm_token"`
	Verified  bool
	Status    int         `gorm:"index"`
	Vehicle   *VehicleDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// VehicleDTO represents the driver's registered vehicle.
type VehicleDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID      uuid.UUID `gorm:"type:uuid;index"`
	VehicleTypeID uuid.UUID `gorm:"type:uuid"`
	PlateNumber   string
	MaxWeightKg   float64
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a driver domain aggregate to its database
// representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var vehicle *VehicleDTO
	if v := aggregate.Vehicle(); v != nil {
		vehicle = &VehicleDTO{
			ID:            v.ID().Bytes(),
			DriverID:      aggregate.ID().Bytes(),
			VehicleTypeID: v.VehicleTypeID().Bytes(),
			PlateNumber:   v.PlateNumber(),
			MaxWeightKg:   v.MaxWeightKg(),
		}
	}

	return DriverDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		FCMToken: aggregate.FCMToken(),
		Verified: aggregate.IsVerified(),
		Status:   int(aggregate.Status()),
		Vehicle:  vehicle,
	}
}

// toDomain converts a database DTO to a driver domain aggregate using
// RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var vehicle *driver.Vehicle
	if dto.Vehicle != nil {
		vehicleID, vErr := kernel.UUIDFromBytes(dto.Vehicle.ID[:])
		if vErr != nil {
			return nil, vErr
		}

		vehicleTypeID, vErr := kernel.UUIDFromBytes(dto.Vehicle.VehicleTypeID[:])
		if vErr != nil {
			return nil, vErr
		}

		v, vErr := driver.NewVehicle(vehicleID, vehicleTypeID,
			dto.Vehicle.PlateNumber, dto.Vehicle.MaxWeightKg)
		if vErr != nil {
			return nil, vErr
		}

		vehicle = &v
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.FCMToken,
		dto.Verified,
		driver.Status(dto.Status),
		vehicle,
	)
}
