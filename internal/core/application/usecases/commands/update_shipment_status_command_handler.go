package commands

import (
	"context"
	"errors"
	"log/slog"

	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/ports"
)

// ErrNotShipmentDriver is returned when a driver reports progress on a
// shipment assigned to somebody else (or to nobody).
var ErrNotShipmentDriver = errors.New("shipment is not assigned to this driver")

// UpdateShipmentStatusCommandHandler applies a driver's progress report to
// the shipment lifecycle.
//
// StrictProgression selects the transition policy: when false (the
// default) the driver may jump forward over intermediate statuses, e.g.
// report in_transit straight from accepted; when true every intermediate
// status must be reported in order. Both modes forbid moving backward and
// leaving terminal states.
//
// Delivering a shipment also releases the driver back to available, in the
// same transaction as the shipment update.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory        UoWFactory
	gateway           ports.NotificationGateway
	strictProgression bool
	logger            *slog.Logger
}

// NewUpdateShipmentStatusCommandHandler creates a handler for driver status reports.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory UoWFactory,
	gateway ports.NotificationGateway,
	strictProgression bool,
	logger *slog.Logger,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory:        uowFactory,
		gateway:           gateway,
		strictProgression: strictProgression,
		logger:            logger.With("component", "update_shipment_status"),
	}
}

// Handle processes the status report and returns the updated shipment.
//
// Returns ErrNotShipmentDriver when the reporting driver is not the
// assigned one, shipment.ErrInvalidStatusTransition when the lifecycle
// forbids the move, and ports.ErrConcurrentModification when another
// update committed in between.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
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

	if !s.IsAssignedTo(cmd.DriverID()) {
		return nil, ErrNotShipmentDriver
	}

	previous := s.Status()
	if err = s.AdvanceStatus(cmd.Next(), h.strictProgression); err != nil {
		return nil, err
	}

	if err = shipmentRepo.UpdateInStatus(ctx, s, previous); err != nil {
		return nil, err
	}

	if s.Status() == shipment.StatusDelivered {
		if err = h.releaseDriver(ctx, uow, cmd); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.gateway.Send(ctx, shipmentStatusNotice(s)); err != nil {
		h.logger.Warn("customer notification failed",
			"shipmentId", s.ID().String(),
			"error", err)
	}

	h.logger.Info("shipment status updated",
		"shipmentId", s.ID().String(),
		"from", previous.String(),
		"to", s.Status().String())

	return s, nil
}

// releaseDriver frees the delivering driver for new assignments. A driver
// who is not busy (e.g. already freed by support tooling) is left as is.
func (h UpdateShipmentStatusCommandHandler) releaseDriver(
	ctx context.Context,
	uow UoW,
	cmd UpdateShipmentStatusCommand,
) error {
	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if !d.ReleaseIfBusy() {
		return nil
	}

	return driverRepo.Update(ctx, d)
}
