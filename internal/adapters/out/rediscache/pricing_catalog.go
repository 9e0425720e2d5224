// Package rediscache decorates the pricing catalog with a Redis cache.
// The catalog tables change rarely and are read on every quote and
// shipment creation, so cached reads take most of the load off postgres.
//
// The cache is strictly an optimization: any Redis failure falls through
// to the underlying catalog and is logged, never surfaced to the caller.
package rediscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"
	"trix/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	citiesKey       = "pricing:cities"
	vehicleTypesKey = "pricing:vehicle_types"

	defaultTTL = 5 * time.Minute
)

// cityCacheDTO is the JSON representation of a city in the cache.
// Domain aggregates keep their fields private, so the cache carries flat
// DTOs and rebuilds aggregates through the domain constructors on read.
type cityCacheDTO struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CenterLat float64        `json:"centerLat"`
	CenterLng float64        `json:"centerLng"`
	Zones     []zoneCacheDTO `json:"zones"`
}

type zoneCacheDTO struct {
	ID    string         `json:"id"`
	Kind  int            `json:"kind"`
	Name  string         `json:"name"`
	Tiers []tierCacheDTO `json:"tiers"`
}

type tierCacheDTO struct {
	ID        string  `json:"id"`
	MinKm     float64 `json:"minKm"`
	MaxKm     float64 `json:"maxKm"`
	BasePrice float64 `json:"basePrice"`
}

type vehicleTypeCacheDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	WeightMinKg       float64 `json:"weightMinKg"`
	WeightMaxKg       float64 `json:"weightMaxKg"`
	PricingMultiplier float64 `json:"pricingMultiplier"`
}

// CachingPricingCatalog is a read-through cache in front of another
// PricingCatalog implementation.
type CachingPricingCatalog struct {
	inner  ports.PricingCatalog
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachingPricingCatalog wraps inner with a Redis read-through cache.
func NewCachingPricingCatalog(
	inner ports.PricingCatalog,
	client *redis.Client,
	logger *slog.Logger,
) *CachingPricingCatalog {
	return &CachingPricingCatalog{
		inner:  inner,
		client: client,
		ttl:    defaultTTL,
		logger: logger.With("component", "pricing_cache"),
	}
}

// GetAllCities returns the city catalog, from cache when possible.
func (c *CachingPricingCatalog) GetAllCities(ctx context.Context) ([]pricing.City, error) {
	if cached, ok := c.readCities(ctx); ok {
		return cached, nil
	}

	cities, err := c.inner.GetAllCities(ctx)
	if err != nil {
		return nil, err
	}

	c.writeCities(ctx, cities)
	return cities, nil
}

// GetAllVehicleTypes returns the vehicle type list, from cache when possible.
func (c *CachingPricingCatalog) GetAllVehicleTypes(ctx context.Context) ([]pricing.VehicleType, error) {
	if cached, ok := c.readVehicleTypes(ctx); ok {
		return cached, nil
	}

	vehicleTypes, err := c.inner.GetAllVehicleTypes(ctx)
	if err != nil {
		return nil, err
	}

	c.writeVehicleTypes(ctx, vehicleTypes)
	return vehicleTypes, nil
}

// GetVehicleType returns one vehicle type. It reads through the cached
// list: the list is small and already hot for the quote flow.
func (c *CachingPricingCatalog) GetVehicleType(ctx context.Context, id kernel.UUID) (pricing.VehicleType, error) {
	if cached, ok := c.readVehicleTypes(ctx); ok {
		for _, vt := range cached {
			if vt.ID().IsEqual(id) {
				return vt, nil
			}
		}
	}

	return c.inner.GetVehicleType(ctx, id)
}

// Invalidate drops the cached catalog. Called after out-of-band catalog
// changes.
func (c *CachingPricingCatalog) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, citiesKey, vehicleTypesKey).Err()
}

func (c *CachingPricingCatalog) readCities(ctx context.Context) ([]pricing.City, bool) {
	raw, err := c.client.Get(ctx, citiesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "cache read failed", "key", citiesKey, "error", err)
		}
		return nil, false
	}

	var dtos []cityCacheDTO
	if err = json.Unmarshal(raw, &dtos); err != nil {
		c.logger.WarnContext(ctx, "cache entry corrupt", "key", citiesKey, "error", err)
		return nil, false
	}

	cities := make([]pricing.City, 0, len(dtos))
	for _, dto := range dtos {
		city, cityErr := cityFromCache(dto)
		if cityErr != nil {
			c.logger.WarnContext(ctx, "cache entry corrupt", "key", citiesKey, "error", cityErr)
			return nil, false
		}
		cities = append(cities, city)
	}

	return cities, true
}

func (c *CachingPricingCatalog) writeCities(ctx context.Context, cities []pricing.City) {
	dtos := make([]cityCacheDTO, 0, len(cities))
	for _, city := range cities {
		dtos = append(dtos, cityToCache(city))
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		c.logger.WarnContext(ctx, "cache marshal failed", "key", citiesKey, "error", err)
		return
	}

	if err = c.client.Set(ctx, citiesKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", citiesKey, "error", err)
	}
}

func (c *CachingPricingCatalog) readVehicleTypes(ctx context.Context) ([]pricing.VehicleType, bool) {
	raw, err := c.client.Get(ctx, vehicleTypesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "cache read failed", "key", vehicleTypesKey, "error", err)
		}
		return nil, false
	}

	var dtos []vehicleTypeCacheDTO
	if err = json.Unmarshal(raw, &dtos); err != nil {
		c.logger.WarnContext(ctx, "cache entry corrupt", "key", vehicleTypesKey, "error", err)
		return nil, false
	}

	vehicleTypes := make([]pricing.VehicleType, 0, len(dtos))
	for _, dto := range dtos {
		vt, vtErr := vehicleTypeFromCache(dto)
		if vtErr != nil {
			c.logger.WarnContext(ctx, "cache entry corrupt", "key", vehicleTypesKey, "error", vtErr)
			return nil, false
		}
		vehicleTypes = append(vehicleTypes, vt)
	}

	return vehicleTypes, true
}

func (c *CachingPricingCatalog) writeVehicleTypes(ctx context.Context, vehicleTypes []pricing.VehicleType) {
	dtos := make([]vehicleTypeCacheDTO, 0, len(vehicleTypes))
	for _, vt := range vehicleTypes {
		dtos = append(dtos, vehicleTypeCacheDTO{
			ID:                vt.ID().String(),
			Name:              vt.Name(),
			WeightMinKg:       vt.WeightMinKg(),
			WeightMaxKg:       vt.WeightMaxKg(),
			PricingMultiplier: vt.PricingMultiplier(),
		})
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		c.logger.WarnContext(ctx, "cache marshal failed", "key", vehicleTypesKey, "error", err)
		return
	}

	if err = c.client.Set(ctx, vehicleTypesKey, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", vehicleTypesKey, "error", err)
	}
}

func cityToCache(city pricing.City) cityCacheDTO {
	zones := make([]zoneCacheDTO, 0, len(city.Zones()))
	for _, zone := range city.Zones() {
		tiers := make([]tierCacheDTO, 0, len(zone.Tiers()))
		for _, tier := range zone.Tiers() {
			tiers = append(tiers, tierCacheDTO{
				ID:        tier.ID().String(),
				MinKm:     tier.MinKm(),
				MaxKm:     tier.MaxKm(),
				BasePrice: tier.BasePrice().Amount(),
			})
		}

		zones = append(zones, zoneCacheDTO{
			ID:    zone.ID().String(),
			Kind:  int(zone.Kind()),
			Name:  zone.Name(),
			Tiers: tiers,
		})
	}

	return cityCacheDTO{
		ID:        city.ID().String(),
		Name:      city.Name(),
		CenterLat: city.Center().Lat(),
		CenterLng: city.Center().Lng(),
		Zones:     zones,
	}
}

func cityFromCache(dto cityCacheDTO) (pricing.City, error) {
	cityID, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return pricing.City{}, err
	}

	center, err := kernel.NewGeoPoint(dto.CenterLat, dto.CenterLng)
	if err != nil {
		return pricing.City{}, err
	}

	zones := make([]pricing.Zone, 0, len(dto.Zones))
	for _, zoneDTO := range dto.Zones {
		zoneID, zoneErr := kernel.UUIDFromString(zoneDTO.ID)
		if zoneErr != nil {
			return pricing.City{}, zoneErr
		}

		tiers := make([]pricing.Tier, 0, len(zoneDTO.Tiers))
		for _, tierDTO := range zoneDTO.Tiers {
			tierID, tierErr := kernel.UUIDFromString(tierDTO.ID)
			if tierErr != nil {
				return pricing.City{}, tierErr
			}

			basePrice, tierErr := kernel.NewMoney(tierDTO.BasePrice)
			if tierErr != nil {
				return pricing.City{}, tierErr
			}

			tier, tierErr := pricing.NewTier(tierID, tierDTO.MinKm, tierDTO.MaxKm, basePrice)
			if tierErr != nil {
				return pricing.City{}, tierErr
			}
			tiers = append(tiers, tier)
		}

		zone, zoneErr := pricing.NewZone(zoneID, cityID, pricing.ZoneKind(zoneDTO.Kind), zoneDTO.Name, tiers)
		if zoneErr != nil {
			return pricing.City{}, zoneErr
		}
		zones = append(zones, zone)
	}

	return pricing.NewCity(cityID, dto.Name, center, zones)
}

func vehicleTypeFromCache(dto vehicleTypeCacheDTO) (pricing.VehicleType, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return pricing.VehicleType{}, err
	}

	return pricing.NewVehicleType(id, dto.Name, dto.WeightMinKg, dto.WeightMaxKg, dto.PricingMultiplier)
}
