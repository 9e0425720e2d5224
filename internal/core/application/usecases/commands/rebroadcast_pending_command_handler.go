package commands

import (
	"context"
	"errors"
	"log/slog"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/domain/services"
	"trix/internal/core/ports"
)

// RebroadcastPendingCommandHandler re-offers stalled pending shipments to
// the currently available drivers.
//
// A shipment can sit pending because every notified driver declined or
// went offline; drivers who came online since creation never saw the
// offer. The rebroadcast closes that gap. Shipments with no eligible
// drivers right now are simply skipped and retried on the next run.
type RebroadcastPendingCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.NotificationGateway
	dispatcher services.Dispatcher
	logger     *slog.Logger
}

// NewRebroadcastPendingCommandHandler creates a handler for pending rebroadcasts.
func NewRebroadcastPendingCommandHandler(
	uowFactory UoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) RebroadcastPendingCommandHandler {
	return RebroadcastPendingCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		dispatcher: services.NewDispatcher(),
		logger:     logger.With("component", "rebroadcast_pending"),
	}
}

// Handle loads all pending shipments and the available driver pool, then
// re-sends offers per shipment to its eligible subset. Reads run in one
// transaction; notifications go out after it ends.
func (h RebroadcastPendingCommandHandler) Handle(ctx context.Context, cmd RebroadcastPendingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	pending, candidates, err := h.loadWork(ctx, uow)
	if err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, s := range pending {
		eligible, err := h.dispatcher.EligibleDrivers(s, candidates, 0)
		if errors.Is(err, services.ErrNoEligibleDrivers) {
			continue
		}
		if err != nil {
			return err
		}

		notified := 0
		for _, d := range eligible {
			if sendErr := h.gateway.Send(ctx, newShipmentOffer(s, d)); sendErr != nil {
				h.logger.Warn("driver notification failed",
					"shipmentId", s.ID().String(),
					"driverId", d.ID().String(),
					"error", sendErr)
				continue
			}
			notified++
		}

		h.logger.Info("pending shipment rebroadcast",
			"shipmentId", s.ID().String(),
			"notified", notified)
	}

	return nil
}

func (h RebroadcastPendingCommandHandler) loadWork(
	ctx context.Context,
	uow UoW,
) ([]*shipment.Shipment, []*driver.Driver, error) {
	pending, err := uow.ShipmentRepository().GetAllInStatus(ctx, shipment.StatusPending)
	if err != nil {
		return nil, nil, err
	}

	candidates, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return nil, nil, err
	}

	return pending, candidates, nil
}
