package commands

import (
	"context"
	"errors"
	"log/slog"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/domain/services"
	"trix/internal/core/ports"
	"trix/internal/pkg/errs"
)

// CreateShipmentResult is returned after a successful shipment creation:
// the persisted aggregate and how many eligible drivers were notified.
type CreateShipmentResult struct {
	Shipment        *shipment.Shipment
	NotifiedDrivers int
}

// CreateShipmentCommandHandler handles the business logic for shipment
// creation: pricing the route, persisting the pending shipment, and
// broadcasting the offer to every eligible driver.
//
// Creation fails when no driver is eligible: a shipment nobody can carry
// would stay pending forever. Notification delivery, by contrast, never
// fails the command; the shipment is committed before the first push is
// sent and delivery failures are only logged.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.PricingCatalog
	gateway    ports.NotificationGateway
	engine     services.GeoPricingEngine
	dispatcher services.Dispatcher
	logger     *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	catalog ports.PricingCatalog,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		gateway:    gateway,
		engine:     services.NewGeoPricingEngine(),
		dispatcher: services.NewDispatcher(),
		logger:     logger.With("component", "create_shipment"),
	}
}

// Handle processes the shipment creation command.
//
// The shipment is priced from the catalog, persisted in pending status and
// committed together with nothing else; only then are the eligible drivers
// notified. Returns services.ErrNoEligibleDrivers when no driver can take
// the shipment, and pricing configuration errors verbatim.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (CreateShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShipmentResult{}, err
	}

	vehicleType, err := h.catalog.GetVehicleType(ctx, cmd.VehicleTypeID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreateShipmentResult{}, errs.NewValueIsInvalidErrorWithCause("vehicleTypeId", err)
		}
		return CreateShipmentResult{}, err
	}

	cities, err := h.catalog.GetAllCities(ctx)
	if err != nil {
		return CreateShipmentResult{}, err
	}

	quote, err := h.engine.PriceShipment(cmd.Origin(), cmd.Destination(), cities, vehicleType)
	if err != nil {
		return CreateShipmentResult{}, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.CustomerID(),
		cmd.VehicleTypeID(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.OriginAddress(),
		cmd.DestinationAddress(),
		cmd.WeightKg(),
		quote.DistanceKm,
		quote.Price,
	)
	if err != nil {
		return CreateShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return CreateShipmentResult{}, err
	}

	eligible, err := h.dispatcher.EligibleDrivers(newShipment, candidates, cmd.RadiusKm())
	if err != nil {
		return CreateShipmentResult{}, err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return CreateShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	notified := h.broadcast(ctx, newShipment, eligible)

	return CreateShipmentResult{
		Shipment:        newShipment,
		NotifiedDrivers: notified,
	}, nil
}

// broadcast offers the shipment to each eligible driver. Runs strictly
// after commit; failures are logged and counted, never propagated.
func (h CreateShipmentCommandHandler) broadcast(
	ctx context.Context,
	s *shipment.Shipment,
	eligible []*driver.Driver,
) int {
	notified := 0
	for _, d := range eligible {
		err := h.gateway.Send(ctx, newShipmentOffer(s, d))
		if err != nil {
			h.logger.Warn("driver notification failed",
				"shipmentId", s.ID().String(),
				"driverId", d.ID().String(),
				"error", err)
			continue
		}
		notified++
	}

	h.logger.Info("shipment broadcast",
		"shipmentId", s.ID().String(),
		"eligible", len(eligible),
		"notified", notified)

	return notified
}
