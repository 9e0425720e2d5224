package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/ports"
)

// ErrDriverNotEligible is returned when the accepting driver cannot carry
// the shipment's weight. Eligibility is re-checked at accept time because
// the broadcast set is advisory, not a grant.
var ErrDriverNotEligible = errors.New("driver is not eligible for this shipment")

// AcceptShipmentCommandHandler decides the accept race.
//
// The whole decision runs inside one transaction with two status-guarded
// updates: the shipment row flips pending to accepted with the driver
// assigned, and the driver row flips available to busy. Either guard
// failing aborts the transaction with ports.ErrConcurrentModification, so
// of N concurrent accepts exactly one commits and every loser observes a
// conflict. The customer is notified only after the winning commit.
type AcceptShipmentCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewAcceptShipmentCommandHandler creates a handler for shipment acceptance.
func NewAcceptShipmentCommandHandler(
	uowFactory UoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) AcceptShipmentCommandHandler {
	return AcceptShipmentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "accept_shipment"),
	}
}

// Handle processes a driver's accept attempt and returns the accepted
// shipment on success.
//
// Conflict outcomes, all mapped to the same HTTP status:
//   - shipment.ErrInvalidStatusTransition: the shipment already left pending
//   - driver.ErrDriverNotAvailable: the driver is not verified+available
//   - ErrDriverNotEligible: the driver's vehicle cannot carry the weight
//   - ports.ErrConcurrentModification: a concurrent accept committed first
func (h AcceptShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptShipmentCommand,
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
	driverRepo := uow.DriverRepository()

	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if !d.IsVerified() {
		return nil, fmt.Errorf("%w: driver is not verified", driver.ErrDriverNotAvailable)
	}

	if !d.IsAvailable() {
		return nil, fmt.Errorf("%w: status is %s", driver.ErrDriverNotAvailable, d.Status())
	}

	if !d.CanCarry(s.WeightKg()) {
		return nil, fmt.Errorf("%w: vehicle capacity is below %g kg",
			ErrDriverNotEligible, s.WeightKg())
	}

	// All preconditions hold before either aggregate mutates: a rejected
	// accept must leave both the shipment and the driver untouched.
	if err = s.Accept(cmd.DriverID()); err != nil {
		return nil, err
	}

	if err = d.MarkBusy(); err != nil {
		return nil, err
	}

	if err = shipmentRepo.UpdateInStatus(ctx, s, shipment.StatusPending); err != nil {
		return nil, err
	}

	if err = driverRepo.UpdateInStatus(ctx, d, driver.StatusAvailable); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.gateway.Send(ctx, shipmentAcceptedNotice(s, d)); err != nil {
		h.logger.Warn("customer notification failed",
			"shipmentId", s.ID().String(),
			"error", err)
	}

	h.logger.Info("shipment accepted",
		"shipmentId", s.ID().String(),
		"driverId", d.ID().String())

	return s, nil
}
