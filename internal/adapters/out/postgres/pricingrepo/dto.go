// Package pricingrepo provides read access to the pricing reference data:
// the city, zone and tier tables plus the vehicle type list. The catalog is
// read-mostly; writes happen out of band through migrations or admin
// tooling, so the repository only implements the PricingCatalog port.
package pricingrepo

import (
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// CityDTO represents a configured city with its pricing zones.
type CityDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	CenterLat float64
	CenterLng float64
	Zones     []ZoneDTO `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for city entities.
func (CityDTO) TableName() string {
	return "cities"
}

// ZoneDTO represents a pricing zone of a city with its ordered tiers.
type ZoneDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CityID uuid.UUID `gorm:"type:uuid;index"`
	Kind   int
	Name   string
	Tiers  []TierDTO `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

// TierDTO represents one distance tier of a zone. Position fixes the tier
// order within the zone; the pricing engine picks the first covering tier
// in this order.
type TierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ZoneID    uuid.UUID `gorm:"type:uuid;index"`
	Position  int
	MinKm     float64
	MaxKm     float64
	BasePrice float64
}

// TableName specifies the database table name for tier entities.
func (TierDTO) TableName() string {
	return "tiers"
}

// VehicleTypeDTO represents a configured vehicle type.
type VehicleTypeDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	WeightMinKg       float64
	WeightMaxKg       float64
	PricingMultiplier float64
}

// TableName specifies the database table name for vehicle type entities.
func (VehicleTypeDTO) TableName() string {
	return "vehicle_types"
}

// cityToDomain converts a city DTO with its zones and tiers to the domain
// model.
func cityToDomain(dto CityDTO) (pricing.City, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.City{}, err
	}

	center, err := kernel.NewGeoPoint(dto.CenterLat, dto.CenterLng)
	if err != nil {
		return pricing.City{}, err
	}

	zones := make([]pricing.Zone, 0, len(dto.Zones))
	for _, zoneDTO := range dto.Zones {
		zone, zoneErr := zoneToDomain(zoneDTO)
		if zoneErr != nil {
			return pricing.City{}, zoneErr
		}
		zones = append(zones, zone)
	}

	return pricing.NewCity(id, dto.Name, center, zones)
}

func zoneToDomain(dto ZoneDTO) (pricing.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.Zone{}, err
	}

	cityID, err := kernel.UUIDFromBytes(dto.CityID[:])
	if err != nil {
		return pricing.Zone{}, err
	}

	tiers := make([]pricing.Tier, 0, len(dto.Tiers))
	for _, tierDTO := range dto.Tiers {
		tier, tierErr := tierToDomain(tierDTO)
		if tierErr != nil {
			return pricing.Zone{}, tierErr
		}
		tiers = append(tiers, tier)
	}

	return pricing.NewZone(id, cityID, pricing.ZoneKind(dto.Kind), dto.Name, tiers)
}

func tierToDomain(dto TierDTO) (pricing.Tier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.Tier{}, err
	}

	basePrice, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return pricing.Tier{}, err
	}

	return pricing.NewTier(id, dto.MinKm, dto.MaxKm, basePrice)
}

func vehicleTypeToDomain(dto VehicleTypeDTO) (pricing.VehicleType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.VehicleType{}, err
	}

	return pricing.NewVehicleType(id, dto.Name, dto.WeightMinKg, dto.WeightMaxKg, dto.PricingMultiplier)
}
