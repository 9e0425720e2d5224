package commands

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var (
	ErrRejectShipmentCommandIsNotConstructed = errors.New(
		"RejectShipmentCommand must be created via NewRejectShipmentCommand constructor",
	)
)

// RejectShipmentCommand represents a driver declining an offered shipment.
// Rejection is free: it changes no state and the shipment stays open for
// every other driver. It exists so rejections can be logged for offer
// analytics.
type RejectShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectShipmentCommand creates a command for a driver rejection.
func NewRejectShipmentCommand(shipmentID kernel.UUID, driverID kernel.UUID) (RejectShipmentCommand, error) {
	cmd := RejectShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDriverID(driverID),
	); err != nil {
		return RejectShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectShipmentCommandIsNotConstructed)
}

// ShipmentID returns the rejected shipment.
func (c RejectShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the rejecting driver.
func (c RejectShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *RejectShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return fmt.Errorf("shipmentId: %w", err)
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *RejectShipmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return fmt.Errorf("driverId: %w", err)
	}
	c.driverID = driverID
	return nil
}
