package pricingrepo

import (
	"context"
	"errors"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"
	"trix/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingCatalog implements the PricingCatalog port using GORM.
type GormPricingCatalog struct {
	db *gorm.DB
}

// NewGormPricingCatalog creates a new GORM pricing catalog.
func NewGormPricingCatalog(db *gorm.DB) *GormPricingCatalog {
	return &GormPricingCatalog{db: db}
}

// GetAllCities retrieves every configured city with its zones and tiers.
// Tiers come back ordered by position within each zone, which is the order
// the pricing engine matches them in.
func (r *GormPricingCatalog) GetAllCities(ctx context.Context) ([]pricing.City, error) {
	var dtos []CityDTO
	err := r.db.WithContext(ctx).
		Preload("Zones").
		Preload("Zones.Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cities := make([]pricing.City, 0, len(dtos))
	for _, dto := range dtos {
		city, cityErr := cityToDomain(dto)
		if cityErr != nil {
			return nil, cityErr
		}
		cities = append(cities, city)
	}

	return cities, nil
}

// GetAllVehicleTypes retrieves every configured vehicle type.
func (r *GormPricingCatalog) GetAllVehicleTypes(ctx context.Context) ([]pricing.VehicleType, error) {
	var dtos []VehicleTypeDTO
	err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	vehicleTypes := make([]pricing.VehicleType, 0, len(dtos))
	for _, dto := range dtos {
		vt, vtErr := vehicleTypeToDomain(dto)
		if vtErr != nil {
			return nil, vtErr
		}
		vehicleTypes = append(vehicleTypes, vt)
	}

	return vehicleTypes, nil
}

// GetVehicleType retrieves a vehicle type by ID.
func (r *GormPricingCatalog) GetVehicleType(ctx context.Context, id kernel.UUID) (pricing.VehicleType, error) {
	if err := id.Validate(); err != nil {
		return pricing.VehicleType{}, err
	}

	var dto VehicleTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.VehicleType{}, errs.NewObjectNotFoundError("vehicle type", id.String())
		}
		return pricing.VehicleType{}, err
	}

	return vehicleTypeToDomain(dto)
}
