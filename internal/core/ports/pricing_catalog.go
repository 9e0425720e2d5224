package ports

import (
	"context"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"
)

// PricingCatalog provides read access to the pricing reference data: the
// city/zone/tier tables and the vehicle type list. The data is read-mostly,
// so implementations may layer caching in front of the database; the redis
// adapter decorates the postgres implementation behind this same interface.
type PricingCatalog interface {
	// GetAllCities returns every configured city with its zones and
	// ordered tiers.
	GetAllCities(ctx context.Context) ([]pricing.City, error)

	// GetAllVehicleTypes returns every configured vehicle type.
	GetAllVehicleTypes(ctx context.Context) ([]pricing.VehicleType, error)

	// GetVehicleType returns the vehicle type with the given ID.
	// Returns an errs.ObjectNotFoundError when no such type exists.
	GetVehicleType(ctx context.Context, id kernel.UUID) (pricing.VehicleType, error)
}
