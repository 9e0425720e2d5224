package commands

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var (
	ErrCancelShipmentCommandIsNotConstructed = errors.New(
		"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
	)
)

// CancelShipmentCommand represents the owning customer cancelling a
// shipment before delivery.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command for a customer cancellation.
func NewCancelShipmentCommand(shipmentID kernel.UUID, customerID kernel.UUID) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being cancelled.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CustomerID returns the customer requesting the cancellation.
func (c CancelShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CancelShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return fmt.Errorf("shipmentId: %w", err)
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CancelShipmentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerId: %w", err)
	}
	c.customerID = customerID
	return nil
}
