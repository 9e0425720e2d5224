package queries

import (
	"errors"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var ErrGetVehicleTypesQueryIsNotConstructed = errors.New(
	"GetVehicleTypesQuery must be created via NewGetVehicleTypesQuery constructor",
)

// GetVehicleTypesQuery requests the list of configured vehicle types.
type GetVehicleTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVehicleTypesQuery creates a vehicle type listing request.
func NewGetVehicleTypesQuery() GetVehicleTypesQuery {
	return GetVehicleTypesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleTypesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleTypesQueryIsNotConstructed)
}

// GetVehicleTypesQueryResponse is a single vehicle type read model.
type GetVehicleTypesQueryResponse struct {
	ID                kernel.UUID
	Name              string
	WeightMinKg       float64
	WeightMaxKg       float64
	PricingMultiplier float64
}
