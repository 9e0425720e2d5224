// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment domain aggregate, handling the conversion between domain entities
// and database representations.
package shipmentrepo

import (
	"time"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed by status for the rebroadcast scan and by customer and
// driver for the role-scoped listings.
type ShipmentDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;index"`
	DriverID           *uuid.UUID `gorm:"type:uuid;index"`
	VehicleTypeID      uuid.UUID  `gorm:"type:uuid"`
	OriginLat          float64
	OriginLng          float64
	DestinationLat     float64
	DestinationLng     float64
	OriginAddress      string
	DestinationAddress string
	WeightKg           float64
	DistanceKm         float64
	Price              float64
	Status             int `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation. Maps all shipment attributes including the optional
// driver assignment.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		DriverID:           driverID,
		VehicleTypeID:      aggregate.VehicleTypeID().Bytes(),
		OriginLat:          aggregate.Origin().Lat(),
		OriginLng:          aggregate.Origin().Lng(),
		DestinationLat:     aggregate.Destination().Lat(),
		DestinationLng:     aggregate.Destination().Lng(),
		OriginAddress:      aggregate.OriginAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
		WeightKg:           aggregate.WeightKg(),
		DistanceKm:         aggregate.DistanceKm(),
		Price:              aggregate.Price().Amount(),
		Status:             int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status and driver
// assignment using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	vehicleTypeID, err := kernel.UUIDFromBytes(dto.VehicleTypeID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewGeoPoint(dto.OriginLat, dto.OriginLng)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(dto.DestinationLat, dto.DestinationLng)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		customerID,
		driverID,
		vehicleTypeID,
		origin,
		destination,
		dto.OriginAddress,
		dto.DestinationAddress,
		dto.WeightKg,
		dto.DistanceKm,
		price,
		shipment.Status(dto.Status),
	)
}

// mutableColumns returns the columns a shipment update may change. The
// remaining columns are immutable after creation, so updates never touch
// them. driver_id appears even when nil so cancellation can clear the
// assignment.
func mutableColumns(dto ShipmentDTO) map[string]any {
	return map[string]any{
		"driver_id": dto.DriverID,
		"status":    dto.Status,
	}
}
