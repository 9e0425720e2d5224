package commands

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var (
	ErrAcceptShipmentCommandIsNotConstructed = errors.New(
		"AcceptShipmentCommand must be created via NewAcceptShipmentCommand constructor",
	)
)

// AcceptShipmentCommand represents a driver's attempt to take a pending
// shipment. Many drivers may race with the same shipment ID; the handler
// guarantees at most one of them wins.
type AcceptShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptShipmentCommand creates a command for a driver accepting a shipment.
func NewAcceptShipmentCommand(shipmentID kernel.UUID, driverID kernel.UUID) (AcceptShipmentCommand, error) {
	cmd := AcceptShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being accepted.
func (c AcceptShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the accepting driver.
func (c AcceptShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AcceptShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return fmt.Errorf("shipmentId: %w", err)
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AcceptShipmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return fmt.Errorf("driverId: %w", err)
	}
	c.driverID = driverID
	return nil
}
