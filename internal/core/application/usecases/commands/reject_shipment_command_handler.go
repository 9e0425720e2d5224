package commands

import (
	"context"
	"log/slog"
)

// RejectShipmentCommandHandler records a driver's rejection of an offered
// shipment.
//
// Rejection never mutates the shipment or the driver: the shipment stays
// in its current status and remains offered to everybody else. The only
// effect is a structured log line feeding offer analytics.
type RejectShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	logger     *slog.Logger
}

// NewRejectShipmentCommandHandler creates a handler for driver rejections.
func NewRejectShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	logger *slog.Logger,
) RejectShipmentCommandHandler {
	return RejectShipmentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reject_shipment"),
	}
}

// Handle verifies the shipment exists and logs the rejection.
// Returns an errs.ObjectNotFoundError for unknown shipments.
func (h RejectShipmentCommandHandler) Handle(ctx context.Context, cmd RejectShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	h.logger.Info("shipment rejected by driver",
		"shipmentId", s.ID().String(),
		"driverId", cmd.DriverID().String(),
		"status", s.Status().String())

	return nil
}
