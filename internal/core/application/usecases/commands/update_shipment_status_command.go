package commands

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents the assigned driver reporting
// delivery progress: picked up, in transit, or delivered.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	driverID   kernel.UUID
	next       shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command for a driver status report.
// The target status must be a valid shipment status; whether the transition
// is allowed from the current status is decided by the handler against the
// stored shipment.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	driverID kernel.UUID,
	next shipment.Status,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDriverID(driverID),
		cmd.setNext(next),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment being updated.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the reporting driver.
func (c UpdateShipmentStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Next returns the reported target status.
func (c UpdateShipmentStatusCommand) Next() shipment.Status {
	return c.next
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return fmt.Errorf("shipmentId: %w", err)
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return fmt.Errorf("driverId: %w", err)
	}
	c.driverID = driverID
	return nil
}

func (c *UpdateShipmentStatusCommand) setNext(next shipment.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next != shipment.StatusPickedUp && next != shipment.StatusInTransit && next != shipment.StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be reported by a driver", next))
	}
	c.next = next
	return nil
}
