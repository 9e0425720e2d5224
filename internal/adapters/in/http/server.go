// Package http exposes the dispatch use cases over a REST API built on
// Echo. The server coordinates between HTTP handlers and application use
// cases; all business rules live below it.
//
// Every authenticated route reads the acting party from the X-Actor-Id and
// X-Actor-Role headers. Authentication itself happens upstream at the API
// gateway, which strips any client-supplied actor headers and injects the
// verified identity.
package http

import (
	"fmt"
	"net/http"

	"trix/internal/core/application/usecases/commands"
	"trix/internal/core/application/usecases/queries"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

// Server handles HTTP requests for the dispatch API.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	acceptHandler         commands.AcceptShipmentCommandHandler
	rejectHandler         commands.RejectShipmentCommandHandler
	updateStatusHandler   commands.UpdateShipmentStatusCommandHandler
	cancelHandler         commands.CancelShipmentCommandHandler

	// Query handlers
	quoteHandler        queries.GetQuoteQueryHandler
	listHandler         queries.ListShipmentsQueryHandler
	getHandler          queries.GetShipmentQueryHandler
	vehicleTypesHandler queries.GetVehicleTypesQueryHandler
	citiesHandler       queries.GetCitiesQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	acceptHandler commands.AcceptShipmentCommandHandler,
	rejectHandler commands.RejectShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	cancelHandler commands.CancelShipmentCommandHandler,
	quoteHandler queries.GetQuoteQueryHandler,
	listHandler queries.ListShipmentsQueryHandler,
	getHandler queries.GetShipmentQueryHandler,
	vehicleTypesHandler queries.GetVehicleTypesQueryHandler,
	citiesHandler queries.GetCitiesQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler: createShipmentHandler,
		acceptHandler:         acceptHandler,
		rejectHandler:         rejectHandler,
		updateStatusHandler:   updateStatusHandler,
		cancelHandler:         cancelHandler,
		quoteHandler:          quoteHandler,
		listHandler:           listHandler,
		getHandler:            getHandler,
		vehicleTypesHandler:   vehicleTypesHandler,
		citiesHandler:         citiesHandler,
	}
}

// RegisterRoutes mounts all API routes on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/vehicle-types", s.GetVehicleTypes)
	v1.GET("/cities", s.GetCities)
	v1.POST("/shipments/quote", s.QuoteShipment)
	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments", s.ListShipments)
	v1.GET("/shipments/:id", s.GetShipment)
	v1.DELETE("/shipments/:id", s.CancelShipment)
	v1.POST("/shipments/:id/accept", s.AcceptShipment)
	v1.POST("/shipments/:id/reject", s.RejectShipment)
	v1.PUT("/shipments/:id/status", s.UpdateShipmentStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// QuoteShipment handles POST /api/v1/shipments/quote - prices a route
// without creating anything.
func (s *Server) QuoteShipment(ctx echo.Context) error {
	var req quoteRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	query, err := buildQuoteQuery(req)
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.quoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quoteResponse{
		DistanceKm: quote.DistanceKm,
		Internal:   quote.Internal,
		City:       quote.City,
		Zone:       quote.Zone,
		Price:      quote.Price,
	})
}

// CreateShipment handles POST /api/v1/shipments - creates a pending
// shipment for the acting customer and broadcasts it to eligible drivers.
func (s *Server) CreateShipment(ctx echo.Context) error {
	customerID, err := actorInRole(ctx, queries.RoleCustomer)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := buildCreateCommand(customerID, req)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createShipmentResponse{
		shipmentResponse: shipmentFromAggregate(result.Shipment),
		NotifiedDrivers:  result.NotifiedDrivers,
	})
}

// AcceptShipment handles POST /api/v1/shipments/:id/accept - the acting
// driver claims a pending shipment. First committed accept wins; later
// ones receive a conflict.
func (s *Server) AcceptShipment(ctx echo.Context) error {
	shipmentID, driverID, err := shipmentAndActor(ctx, queries.RoleDriver)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptShipmentCommand(shipmentID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	accepted, err := s.acceptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromAggregate(accepted))
}

// RejectShipment handles POST /api/v1/shipments/:id/reject - the acting
// driver declines an offer. Purely informational; the shipment stays
// available to everyone else.
func (s *Server) RejectShipment(ctx echo.Context) error {
	shipmentID, driverID, err := shipmentAndActor(ctx, queries.RoleDriver)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectShipmentCommand(shipmentID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentStatus handles PUT /api/v1/shipments/:id/status - the
// assigned driver reports progress.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, driverID, err := shipmentAndActor(ctx, queries.RoleDriver)
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	next, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, driverID, next)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromAggregate(updated))
}

// CancelShipment handles DELETE /api/v1/shipments/:id - the owning
// customer cancels a shipment in any non-terminal state.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentID, customerID, err := shipmentAndActor(ctx, queries.RoleCustomer)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(shipmentID, customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromAggregate(cancelled))
}

// ListShipments handles GET /api/v1/shipments - lists the shipments
// visible to the acting party.
func (s *Server) ListShipments(ctx echo.Context) error {
	id, role, err := actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListShipmentsQuery(id, role)
	if err != nil {
		return writeError(ctx, err)
	}

	shipments, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]shipmentResponse, 0, len(shipments))
	for _, sh := range shipments {
		response = append(response, shipmentFromReadModel(sh))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := pathShipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, role, err := actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, id, role)
	if err != nil {
		return writeError(ctx, err)
	}

	sh, err := s.getHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromReadModel(sh))
}

// GetVehicleTypes handles GET /api/v1/vehicle-types.
func (s *Server) GetVehicleTypes(ctx echo.Context) error {
	vehicleTypes, err := s.vehicleTypesHandler.Handle(
		ctx.Request().Context(), queries.NewGetVehicleTypesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]vehicleTypeResponse, 0, len(vehicleTypes))
	for _, vt := range vehicleTypes {
		response = append(response, vehicleTypeResponse{
			ID:                vt.ID.String(),
			Name:              vt.Name,
			WeightMinKg:       vt.WeightMinKg,
			WeightMaxKg:       vt.WeightMaxKg,
			PricingMultiplier: vt.PricingMultiplier,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCities handles GET /api/v1/cities - the public pricing reference of
// cities, zones and tiers.
func (s *Server) GetCities(ctx echo.Context) error {
	cities, err := s.citiesHandler.Handle(
		ctx.Request().Context(), queries.NewGetCitiesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]cityResponse, 0, len(cities))
	for _, city := range cities {
		response = append(response, cityFromReadModel(city))
	}

	return ctx.JSON(http.StatusOK, response)
}

func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorIDHeader)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(actorIDHeader, err)
	}

	return id, nil
}

func actor(ctx echo.Context) (kernel.UUID, queries.Role, error) {
	id, err := actorID(ctx)
	if err != nil {
		return kernel.UUID{}, queries.RoleUnknown, err
	}

	role, err := queries.RoleFromString(ctx.Request().Header.Get(actorRoleHeader))
	if err != nil {
		return kernel.UUID{}, queries.RoleUnknown, errs.NewValueIsInvalidErrorWithCause(actorRoleHeader, err)
	}

	return id, role, nil
}

func pathShipmentID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return id, nil
}

// actorInRole resolves the acting party and rejects any role other than
// required. Admins get no shortcut on write routes; commands are strictly
// customer or driver scoped.
func actorInRole(ctx echo.Context, required queries.Role) (kernel.UUID, error) {
	id, role, err := actor(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	if role != required {
		return kernel.UUID{}, fmt.Errorf("%w: %s required", ErrWrongActorRole, required)
	}

	return id, nil
}

func shipmentAndActor(ctx echo.Context, required queries.Role) (kernel.UUID, kernel.UUID, error) {
	shipmentID, err := pathShipmentID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	id, err := actorInRole(ctx, required)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return shipmentID, id, nil
}

func buildQuoteQuery(req quoteRequest) (queries.GetQuoteQuery, error) {
	origin, err := kernel.NewGeoPoint(req.Origin.Lat, req.Origin.Lng)
	if err != nil {
		return queries.GetQuoteQuery{}, err
	}

	destination, err := kernel.NewGeoPoint(req.Destination.Lat, req.Destination.Lng)
	if err != nil {
		return queries.GetQuoteQuery{}, err
	}

	vehicleTypeID, err := kernel.UUIDFromString(req.VehicleTypeID)
	if err != nil {
		return queries.GetQuoteQuery{}, errs.NewValueIsInvalidErrorWithCause("vehicleTypeId", err)
	}

	return queries.NewGetQuoteQuery(origin, destination, vehicleTypeID)
}

func buildCreateCommand(customerID kernel.UUID, req createShipmentRequest) (commands.CreateShipmentCommand, error) {
	origin, err := kernel.NewGeoPoint(req.Origin.Lat, req.Origin.Lng)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	destination, err := kernel.NewGeoPoint(req.Destination.Lat, req.Destination.Lng)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	vehicleTypeID, err := kernel.UUIDFromString(req.VehicleTypeID)
	if err != nil {
		return commands.CreateShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("vehicleTypeId", err)
	}

	return commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		customerID,
		vehicleTypeID,
		origin,
		destination,
		req.OriginAddress,
		req.DestinationAddress,
		req.WeightKg,
		req.RadiusKm,
	)
}
