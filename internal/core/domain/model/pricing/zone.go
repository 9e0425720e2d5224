package pricing

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// ZoneKind distinguishes the two pricing partitions of a city: Internal for
// same-city deliveries and External for inter-city deliveries.
type ZoneKind int

const (
	// ZoneKindUnknown represents an invalid or undefined zone kind.
	ZoneKindUnknown ZoneKind = iota

	// ZoneKindInternal prices deliveries whose origin and destination resolve
	// to the same nearest city.
	ZoneKindInternal

	// ZoneKindExternal prices deliveries crossing city boundaries.
	ZoneKindExternal
)

// getZoneKindStrings returns the string representation of every zone kind.
func getZoneKindStrings() map[ZoneKind]string {
	return map[ZoneKind]string{
		ZoneKindUnknown:  "Unknown",
		ZoneKindInternal: "Internal",
		ZoneKindExternal: "External",
	}
}

// Validate checks that the zone kind is Internal or External.
func (k ZoneKind) Validate() error {
	if k != ZoneKindInternal && k != ZoneKindExternal {
		return errs.NewValueIsInvalidErrorWithCause("zone kind",
			fmt.Errorf("%d is not a valid zone kind", k))
	}
	return nil
}

// String implements fmt.Stringer. Returns "Unknown" for invalid kinds.
func (k ZoneKind) String() string {
	if s, ok := getZoneKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a city-scoped pricing partition holding an ordered list of distance
// tiers. Tier order is significant: the pricing engine selects the first tier
// in stored order covering a distance, which resolves shared-boundary
// ambiguity deterministically.
type Zone struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	cityID kernel.UUID
	kind   ZoneKind
	name   string
	tiers  []Tier

	guard guard.ConstructorGuard
}

// NewZone creates a pricing zone belonging to a city.
// Every tier must be properly constructed; the tier slice may be empty for a
// zone whose tiers are loaded separately, but pricing through such a zone
// fails with a configuration error.
func NewZone(id kernel.UUID, cityID kernel.UUID, kind ZoneKind, name string, tiers []Tier) (Zone, error) {
	zone := Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		zone.setID(id),
		zone.setCityID(cityID),
		zone.setKind(kind),
		zone.setName(name),
		zone.setTiers(tiers),
	); err != nil {
		return Zone{}, err
	}

	return zone, nil
}

// Validate checks that the Zone was created through its constructor.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// ID returns the zone's unique identifier.
func (z Zone) ID() kernel.UUID {
	return z.id
}

// CityID returns the identifier of the owning city.
func (z Zone) CityID() kernel.UUID {
	return z.cityID
}

// Kind returns whether the zone prices internal or external deliveries.
func (z Zone) Kind() ZoneKind {
	return z.kind
}

// Name returns the human-readable zone name.
func (z Zone) Name() string {
	return z.name
}

// Tiers returns the zone's distance tiers in stored order.
func (z Zone) Tiers() []Tier {
	return z.tiers
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setCityID(cityID kernel.UUID) error {
	if err := cityID.Validate(); err != nil {
		return err
	}
	z.cityID = cityID
	return nil
}

func (z *Zone) setKind(kind ZoneKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	z.kind = kind
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("zone name")
	}
	z.name = name
	return nil
}

func (z *Zone) setTiers(tiers []Tier) error {
	for _, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return err
		}
	}
	z.tiers = tiers
	return nil
}
