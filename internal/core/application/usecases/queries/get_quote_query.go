// Package queries contains read-only operations over the dispatch state.
// Implements the Query side of the CQRS architecture: handlers read from
// the database or the pricing catalog and return plain response structs,
// never domain aggregates.
package queries

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var (
	ErrGetQuoteQueryIsNotConstructed = errors.New(
		"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
	)
)

// GetQuoteQuery asks for the price of a prospective shipment without
// creating anything. The same pricing path serves shipment creation, so a
// quote is exact, not an estimate.
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	origin        kernel.GeoPoint
	destination   kernel.GeoPoint
	vehicleTypeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a quote request for a route and vehicle type.
func NewGetQuoteQuery(
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	vehicleTypeID kernel.UUID,
) (GetQuoteQuery, error) {
	q := GetQuoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOrigin(origin),
		q.setDestination(destination),
		q.setVehicleTypeID(vehicleTypeID),
	); err != nil {
		return GetQuoteQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// Origin returns the pickup coordinates.
func (q GetQuoteQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// Destination returns the dropoff coordinates.
func (q GetQuoteQuery) Destination() kernel.GeoPoint {
	return q.destination
}

// VehicleTypeID returns the requested vehicle type.
func (q GetQuoteQuery) VehicleTypeID() kernel.UUID {
	return q.vehicleTypeID
}

func (q *GetQuoteQuery) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	q.origin = origin
	return nil
}

func (q *GetQuoteQuery) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	q.destination = destination
	return nil
}

func (q *GetQuoteQuery) setVehicleTypeID(vehicleTypeID kernel.UUID) error {
	if err := vehicleTypeID.Validate(); err != nil {
		return fmt.Errorf("vehicleTypeId: %w", err)
	}
	q.vehicleTypeID = vehicleTypeID
	return nil
}

// GetQuoteQueryResponse is the priced quote for a prospective shipment.
type GetQuoteQueryResponse struct {
	DistanceKm float64
	Internal   bool
	City       string
	Zone       string
	Price      float64
}
