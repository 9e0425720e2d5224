package services

import (
	"errors"
	"fmt"
	"math"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"
)

// Configuration errors of the pricing catalog. They indicate incomplete
// reference data (a missing city, zone or tier), never bad user input, so
// the HTTP boundary reports them as server-side failures.
var (
	// ErrNoCityConfigured is returned when the city catalog is empty.
	ErrNoCityConfigured = errors.New("no city configured")

	// ErrZoneNotConfigured is returned when a city lacks the zone kind the
	// shipment resolves to.
	ErrZoneNotConfigured = errors.New("zone not configured")

	// ErrTierNotFound is returned when no tier of the resolved zone covers
	// the shipment's distance.
	ErrTierNotFound = errors.New("no pricing tier covers distance")
)

// GeoPricingEngine is a pure domain service that prices a shipment from its
// origin and destination coordinates.
//
// Pricing algorithm:
//  1. Compute the great-circle distance between origin and destination.
//  2. Find the city whose center is nearest to the origin.
//  3. Classify the shipment: internal when the destination resolves to the
//     same city, external otherwise.
//  4. Pick the first tier of the matching zone that covers the distance.
//  5. Price = tier base price * vehicle type multiplier, rounded half-up
//     to two decimals.
//
// The engine holds no state and performs no I/O; callers load the city
// catalog and vehicle type and pass them in. Identical inputs always yield
// the identical quote.
type GeoPricingEngine struct{}

// NewGeoPricingEngine creates a new GeoPricingEngine instance.
func NewGeoPricingEngine() GeoPricingEngine {
	return GeoPricingEngine{}
}

// Quote is the result of pricing a shipment: the resolved catalog entries
// and the computed distance and price.
type Quote struct {
	City       pricing.City
	Zone       pricing.Zone
	Tier       pricing.Tier
	DistanceKm float64
	Internal   bool
	Price      kernel.Money
}

// Distance returns the great-circle distance between two points in
// kilometers. It is symmetric and zero for identical points.
func (e GeoPricingEngine) Distance(a kernel.GeoPoint, b kernel.GeoPoint) (float64, error) {
	return a.DistanceTo(b)
}

// NearestCity returns the city whose center is closest to point.
//
// The scan is linear over the catalog in stored order; when two cities are
// exactly equidistant the earlier one wins. An empty catalog returns
// ErrNoCityConfigured.
func (e GeoPricingEngine) NearestCity(point kernel.GeoPoint, cities []pricing.City) (pricing.City, error) {
	if len(cities) == 0 {
		return pricing.City{}, ErrNoCityConfigured
	}

	var (
		nearest pricing.City
		best    = math.MaxFloat64
	)

	for _, city := range cities {
		if err := city.Validate(); err != nil {
			return pricing.City{}, err
		}

		d, err := point.DistanceTo(city.Center())
		if err != nil {
			return pricing.City{}, err
		}

		if d < best {
			best = d
			nearest = city
		}
	}

	return nearest, nil
}

// ResolveZone returns the city's zone of the given kind, or
// ErrZoneNotConfigured when the city has none.
func (e GeoPricingEngine) ResolveZone(city pricing.City, kind pricing.ZoneKind) (pricing.Zone, error) {
	zone, ok := city.ZoneOf(kind)
	if !ok {
		return pricing.Zone{}, fmt.Errorf("%w: city %s has no %s zone",
			ErrZoneNotConfigured, city.Name(), kind)
	}

	return zone, nil
}

// SelectTier returns the first tier of the zone, in stored order, whose
// inclusive [MinKm, MaxKm] range covers distanceKm. On a shared boundary
// (one tier's max equals the next tier's min) the earlier tier wins.
// Returns ErrTierNotFound when no tier covers the distance.
func (e GeoPricingEngine) SelectTier(zone pricing.Zone, distanceKm float64) (pricing.Tier, error) {
	for _, tier := range zone.Tiers() {
		if tier.Covers(distanceKm) {
			return tier, nil
		}
	}

	return pricing.Tier{}, fmt.Errorf("%w: %.2f km in zone %s",
		ErrTierNotFound, distanceKm, zone.Name())
}

// Price computes the final price for a shipment of the given distance in
// the given zone: the covering tier's base price multiplied by the vehicle
// type's multiplier, rounded half-up to two decimals.
func (e GeoPricingEngine) Price(
	zone pricing.Zone,
	distanceKm float64,
	vehicleType pricing.VehicleType,
) (kernel.Money, error) {
	if err := vehicleType.Validate(); err != nil {
		return kernel.Money{}, err
	}

	tier, err := e.SelectTier(zone, distanceKm)
	if err != nil {
		return kernel.Money{}, err
	}

	return tier.BasePrice().Multiply(vehicleType.PricingMultiplier())
}

// IsInternal reports whether origin and destination resolve to the same
// nearest city.
func (e GeoPricingEngine) IsInternal(
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	cities []pricing.City,
) (bool, error) {
	originCity, err := e.NearestCity(origin, cities)
	if err != nil {
		return false, err
	}

	destinationCity, err := e.NearestCity(destination, cities)
	if err != nil {
		return false, err
	}

	return originCity.IsEqual(destinationCity), nil
}

// PriceShipment runs the full pricing algorithm and returns the resolved
// quote. This is the single entry point the quote and create flows share,
// so a quote and the shipment created from the same inputs always carry
// the same price.
func (e GeoPricingEngine) PriceShipment(
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	cities []pricing.City,
	vehicleType pricing.VehicleType,
) (Quote, error) {
	distanceKm, err := e.Distance(origin, destination)
	if err != nil {
		return Quote{}, err
	}

	originCity, err := e.NearestCity(origin, cities)
	if err != nil {
		return Quote{}, err
	}

	internal, err := e.IsInternal(origin, destination, cities)
	if err != nil {
		return Quote{}, err
	}

	kind := pricing.ZoneKindExternal
	if internal {
		kind = pricing.ZoneKindInternal
	}

	zone, err := e.ResolveZone(originCity, kind)
	if err != nil {
		return Quote{}, err
	}

	tier, err := e.SelectTier(zone, distanceKm)
	if err != nil {
		return Quote{}, err
	}

	price, err := tier.BasePrice().Multiply(vehicleType.PricingMultiplier())
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		City:       originCity,
		Zone:       zone,
		Tier:       tier,
		DistanceKm: distanceKm,
		Internal:   internal,
		Price:      price,
	}, nil
}
