package commands

import (
	"context"
	"errors"
	"log/slog"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/ports"
)

// ErrNotShipmentOwner is returned when somebody other than the owning
// customer tries to cancel a shipment.
var ErrNotShipmentOwner = errors.New("shipment is not owned by this customer")

// CancelShipmentCommandHandler cancels a shipment on behalf of its owner.
//
// Cancellation clears the driver assignment and, when the driver is
// currently busy, releases them back to available. A driver who is busy
// with something else (status already flipped by another flow) is never
// touched. Delivered shipments cannot be cancelled, and a second cancel of
// the same shipment fails with a conflict rather than succeeding silently.
type CancelShipmentCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewCancelShipmentCommandHandler creates a handler for customer cancellations.
func NewCancelShipmentCommandHandler(
	uowFactory UoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "cancel_shipment"),
	}
}

// Handle processes the cancellation and returns the cancelled shipment.
//
// Returns ErrNotShipmentOwner when the requester does not own the
// shipment, and shipment.ErrInvalidStatusTransition when the shipment is
// already delivered or cancelled. The released driver, if any, is notified
// after commit.
func (h CancelShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CancelShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if !s.IsOwnedBy(cmd.CustomerID()) {
		return nil, ErrNotShipmentOwner
	}

	previous := s.Status()
	releasedID, err := s.Cancel()
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.UpdateInStatus(ctx, s, previous); err != nil {
		return nil, err
	}

	var releasedDriver *driver.Driver
	if releasedID != nil {
		releasedDriver, err = h.releaseDriver(ctx, uow, *releasedID)
		if err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if releasedDriver != nil {
		if err = h.gateway.Send(ctx, shipmentCancelledNotice(s, releasedDriver)); err != nil {
			h.logger.Warn("driver notification failed",
				"shipmentId", s.ID().String(),
				"driverId", releasedDriver.ID().String(),
				"error", err)
		}
	}

	h.logger.Info("shipment cancelled",
		"shipmentId", s.ID().String(),
		"previousStatus", previous.String())

	return s, nil
}

// releaseDriver frees the previously assigned driver if they are still
// busy, and returns the driver for post-commit notification.
func (h CancelShipmentCommandHandler) releaseDriver(
	ctx context.Context,
	uow UoW,
	driverID kernel.UUID,
) (*driver.Driver, error) {
	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if d.ReleaseIfBusy() {
		if err = driverRepo.Update(ctx, d); err != nil {
			return nil, err
		}
	}

	return d, nil
}
