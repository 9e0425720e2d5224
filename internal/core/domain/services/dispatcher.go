package services

import (
	"errors"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/shipment"
)

// ErrNoEligibleDrivers is returned when no driver can take a shipment.
// This occurs when either no drivers are provided or none of the provided
// drivers is verified, available and able to carry the shipment's weight.
var ErrNoEligibleDrivers = errors.New("no eligible drivers")

// Dispatcher is a domain service that selects the drivers a new shipment
// should be offered to.
//
// Eligibility rules:
//   - The driver is verified
//   - The driver's status is available
//   - The driver's vehicle capacity covers the shipment weight
//
// Eligibility only gates the broadcast. It grants nothing: the actual
// assignment is decided later by the accept race, where the first eligible
// driver to commit wins.
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// EligibleDrivers filters candidates down to the drivers the shipment may
// be offered to, preserving candidate order.
//
// The radiusKm parameter is accepted for interface stability but not yet
// applied: driver positions are not tracked, so every candidate passes the
// proximity check regardless of radius. Callers must not rely on it
// narrowing the result.
//
// Returns ErrNoEligibleDrivers when the filter leaves nobody.
func (d Dispatcher) EligibleDrivers(
	s *shipment.Shipment,
	candidates []*driver.Driver,
	radiusKm float64,
) ([]*driver.Driver, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	_ = radiusKm

	eligible := make([]*driver.Driver, 0, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() {
			continue
		}

		if !candidate.CanCarry(s.WeightKg()) {
			continue
		}

		eligible = append(eligible, candidate)
	}

	if len(eligible) == 0 {
		return nil, ErrNoEligibleDrivers
	}

	return eligible, nil
}
