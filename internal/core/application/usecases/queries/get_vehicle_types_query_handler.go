package queries

import (
	"context"

	"trix/internal/core/ports"
)

// GetVehicleTypesQueryHandler lists the configured vehicle types.
// Reads through the pricing catalog so the cache layer, when present,
// serves the list without touching the database.
type GetVehicleTypesQueryHandler struct {
	catalog ports.PricingCatalog
}

// NewGetVehicleTypesQueryHandler creates a handler for vehicle type queries.
func NewGetVehicleTypesQueryHandler(catalog ports.PricingCatalog) GetVehicleTypesQueryHandler {
	return GetVehicleTypesQueryHandler{catalog: catalog}
}

// Handle returns every configured vehicle type in catalog order.
func (h GetVehicleTypesQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleTypesQuery,
) ([]GetVehicleTypesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicleTypes, err := h.catalog.GetAllVehicleTypes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetVehicleTypesQueryResponse, 0, len(vehicleTypes))
	for _, vt := range vehicleTypes {
		responses = append(responses, GetVehicleTypesQueryResponse{
			ID:                vt.ID(),
			Name:              vt.Name(),
			WeightMinKg:       vt.WeightMinKg(),
			WeightMaxKg:       vt.WeightMaxKg(),
			PricingMultiplier: vt.PricingMultiplier(),
		})
	}

	return responses, nil
}
