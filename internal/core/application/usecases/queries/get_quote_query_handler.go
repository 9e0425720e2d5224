package queries

import (
	"context"
	"errors"

	"trix/internal/core/domain/services"
	"trix/internal/core/ports"
	"trix/internal/pkg/errs"
)

// GetQuoteQueryHandler prices a prospective route without persisting
// anything. It runs the same pricing algorithm the shipment creation flow
// uses, so the returned price matches the price a shipment created from the
// same inputs would carry.
//
// Example:
//
//	handler := NewGetQuoteQueryHandler(catalog)
//	query, _ := NewGetQuoteQuery(origin, destination, vehicleTypeID)
//
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to quote route: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%.2f km for %.2f\n", quote.DistanceKm, quote.Price)
type GetQuoteQueryHandler struct {
	catalog ports.PricingCatalog
	engine  services.GeoPricingEngine
}

// NewGetQuoteQueryHandler creates a handler for quote queries.
// Requires the pricing catalog for city and vehicle type lookups.
func NewGetQuoteQueryHandler(catalog ports.PricingCatalog) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{
		catalog: catalog,
		engine:  services.NewGeoPricingEngine(),
	}
}

// Handle prices the requested route.
//
// Returns errs.ErrValueIsInvalid when the vehicle type does not exist, or a
// pricing configuration error when the catalog cannot cover the route.
func (h GetQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetQuoteQuery,
) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	vehicleType, err := h.catalog.GetVehicleType(ctx, query.VehicleTypeID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return GetQuoteQueryResponse{}, errs.NewValueIsInvalidErrorWithCause("vehicleTypeId", err)
		}

		return GetQuoteQueryResponse{}, err
	}

	cities, err := h.catalog.GetAllCities(ctx)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	quote, err := h.engine.PriceShipment(query.Origin(), query.Destination(), cities, vehicleType)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return GetQuoteQueryResponse{
		DistanceKm: quote.DistanceKm,
		Internal:   quote.Internal,
		City:       quote.City.Name(),
		Zone:       quote.Zone.Name(),
		Price:      quote.Price.Amount(),
	}, nil
}
