package pricing

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// ErrCityIsNotConstructed is returned when using an improperly initialized City.
var ErrCityIsNotConstructed = errors.New("City must be created via NewCity constructor")

// City is immutable reference data: a named geographic center that anchors
// nearest-city resolution, owning at most one pricing zone of each kind.
type City struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	name   string
	center kernel.GeoPoint
	zones  []Zone

	guard guard.ConstructorGuard
}

// NewCity creates a city with its geographic center and pricing zones.
// A city may carry at most one zone per kind; duplicates are a configuration
// error rejected at construction.
func NewCity(id kernel.UUID, name string, center kernel.GeoPoint, zones []Zone) (City, error) {
	city := City{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		city.setID(id),
		city.setName(name),
		city.setCenter(center),
		city.setZones(zones),
	); err != nil {
		return City{}, err
	}

	return city, nil
}

// Validate checks that the City was created through its constructor.
func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}

// ID returns the city's unique identifier.
func (c City) ID() kernel.UUID {
	return c.id
}

// Name returns the city name.
func (c City) Name() string {
	return c.name
}

// Center returns the geographic center used for nearest-city resolution.
func (c City) Center() kernel.GeoPoint {
	return c.center
}

// Zones returns the city's pricing zones.
func (c City) Zones() []Zone {
	return c.zones
}

// ZoneOf returns the city's zone of the requested kind, if configured.
func (c City) ZoneOf(kind ZoneKind) (Zone, bool) {
	for _, zone := range c.zones {
		if zone.Kind() == kind {
			return zone, true
		}
	}
	return Zone{}, false
}

// IsEqual compares two cities by their unique identifiers.
func (c City) IsEqual(other City) bool {
	return c.id.IsEqual(other.id)
}

func (c *City) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *City) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("city name")
	}
	c.name = name
	return nil
}

func (c *City) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}
	c.center = center
	return nil
}

func (c *City) setZones(zones []Zone) error {
	seen := make(map[ZoneKind]bool, len(zones))
	for _, zone := range zones {
		if err := zone.Validate(); err != nil {
			return err
		}
		if seen[zone.Kind()] {
			return errs.NewValueIsInvalidErrorWithCause("zones",
				fmt.Errorf("city has more than one %s zone", zone.Kind()))
		}
		seen[zone.Kind()] = true
	}
	c.zones = zones
	return nil
}
