package commands

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a customer's request to create a new
// freight shipment. Encapsulates the route, cargo weight and the requested
// vehicle type; the price is computed by the handler, never supplied by the
// caller.
//
// Example:
//
//	origin, _ := kernel.NewGeoPoint(25.2048, 55.2708)
//	destination, _ := kernel.NewGeoPoint(24.4539, 54.3773)
//	cmd, err := NewCreateShipmentCommand(
//	    kernel.NewUUID(), customerID, vehicleTypeID,
//	    origin, destination,
//	    "Dubai Marina", "Corniche Road, Abu Dhabi",
//	    250, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID         kernel.UUID
	customerID         kernel.UUID
	vehicleTypeID      kernel.UUID
	origin             kernel.GeoPoint
	destination        kernel.GeoPoint
	originAddress      string
	destinationAddress string
	weightKg           float64
	radiusKm           float64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates identifiers and coordinates, requires non-empty addresses and a
// positive weight. The radius is optional (zero means no preference) and is
// currently not applied to the driver broadcast.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	customerID kernel.UUID,
	vehicleTypeID kernel.UUID,
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	originAddress string,
	destinationAddress string,
	weightKg float64,
	radiusKm float64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCustomerID(customerID),
		cmd.setVehicleTypeID(vehicleTypeID),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setOriginAddress(originAddress),
		cmd.setDestinationAddress(destinationAddress),
		cmd.setWeightKg(weightKg),
		cmd.setRadiusKm(radiusKm),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier the new shipment will carry.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CustomerID returns the owning customer's identifier.
func (c CreateShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleTypeID returns the requested vehicle type's identifier.
func (c CreateShipmentCommand) VehicleTypeID() kernel.UUID {
	return c.vehicleTypeID
}

// Origin returns the pickup coordinates.
func (c CreateShipmentCommand) Origin() kernel.GeoPoint {
	return c.origin
}

// Destination returns the dropoff coordinates.
func (c CreateShipmentCommand) Destination() kernel.GeoPoint {
	return c.destination
}

// OriginAddress returns the pickup address text.
func (c CreateShipmentCommand) OriginAddress() string {
	return c.originAddress
}

// DestinationAddress returns the dropoff address text.
func (c CreateShipmentCommand) DestinationAddress() string {
	return c.destinationAddress
}

// WeightKg returns the cargo weight in kilograms.
func (c CreateShipmentCommand) WeightKg() float64 {
	return c.weightKg
}

// RadiusKm returns the requested broadcast radius. Zero means unbounded.
func (c CreateShipmentCommand) RadiusKm() float64 {
	return c.radiusKm
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerId: %w", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateShipmentCommand) setVehicleTypeID(vehicleTypeID kernel.UUID) error {
	if err := vehicleTypeID.Validate(); err != nil {
		return fmt.Errorf("vehicleTypeId: %w", err)
	}
	c.vehicleTypeID = vehicleTypeID
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setOriginAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("originAddress")
	}
	c.originAddress = address
	return nil
}

func (c *CreateShipmentCommand) setDestinationAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	c.destinationAddress = address
	return nil
}

func (c *CreateShipmentCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}

func (c *CreateShipmentCommand) setRadiusKm(radiusKm float64) error {
	if radiusKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("radiusKm",
			fmt.Errorf("%g is negative", radiusKm))
	}
	c.radiusKm = radiusKm
	return nil
}
