package shipment

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment constructors.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment constructor")

// Shipment represents a freight shipment in the dispatch system. It is the
// aggregate root that manages the shipment lifecycle from creation through
// driver assignment to delivery or cancellation.
//
// Shipment follows these invariants:
//   - Must have valid identifiers for itself, the owning customer and the
//     requested vehicle type
//   - Origin and destination must be valid coordinates with address text
//   - Weight must be positive; distance must be non-negative
//   - Price and distance are fixed at creation and never change afterwards
//   - A driver is assigned if and only if the shipment progressed past
//     Pending and has not been cancelled
//   - Status transitions follow the Status state machine
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Shipment struct { //nolint:recvcheck //using for validation
	id                 kernel.UUID
	customerID         kernel.UUID
	driverID           *kernel.UUID
	vehicleTypeID      kernel.UUID
	origin             kernel.GeoPoint
	destination        kernel.GeoPoint
	originAddress      string
	destinationAddress string
	weightKg           float64
	distanceKm         float64
	price              kernel.Money
	status             Status

	guard guard.ConstructorGuard
}

// NewShipment creates a new Shipment in Pending status with no driver.
// Distance and price are computed by the pricing engine before construction
// and are immutable for the shipment's lifetime.
//
// Parameters:
//   - id: unique identifier for the shipment
//   - customerID: the owning customer
//   - vehicleTypeID: the requested vehicle type
//   - origin, destination: validated pickup and dropoff coordinates
//   - originAddress, destinationAddress: human-readable address text
//   - weightKg: cargo weight, must be positive
//   - distanceKm: computed route distance, must be non-negative
//   - price: final quoted price
//
// Returns the created shipment, or a joined validation error naming every
// invalid field.
func NewShipment(
	id kernel.UUID,
	customerID kernel.UUID,
	vehicleTypeID kernel.UUID,
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	originAddress string,
	destinationAddress string,
	weightKg float64,
	distanceKm float64,
	price kernel.Money,
) (*Shipment, error) {
	return RestoreShipment(id, customerID, nil, vehicleTypeID,
		origin, destination, originAddress, destinationAddress,
		weightKg, distanceKm, price, StatusPending)
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage
// with an explicit status and optional assigned driver. The restored
// shipment behaves identically to one created through normal domain
// operations.
func RestoreShipment(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	vehicleTypeID kernel.UUID,
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	originAddress string,
	destinationAddress string,
	weightKg float64,
	distanceKm float64,
	price kernel.Money,
	status Status,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		s.setDriverID(driverID),
		s.setVehicleTypeID(vehicleTypeID),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setOriginAddress(originAddress),
		s.setDestinationAddress(destinationAddress),
		s.setWeightKg(weightKg),
		s.setDistanceKm(distanceKm),
		s.setPrice(price),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// CustomerID returns the owning customer's identifier.
func (s *Shipment) CustomerID() kernel.UUID {
	return s.customerID
}

// DriverID returns the assigned driver's identifier.
// Returns nil if no driver is assigned.
func (s *Shipment) DriverID() *kernel.UUID {
	return s.driverID
}

// VehicleTypeID returns the requested vehicle type's identifier.
func (s *Shipment) VehicleTypeID() kernel.UUID {
	return s.vehicleTypeID
}

// Origin returns the pickup coordinates.
func (s *Shipment) Origin() kernel.GeoPoint {
	return s.origin
}

// Destination returns the dropoff coordinates.
func (s *Shipment) Destination() kernel.GeoPoint {
	return s.destination
}

// OriginAddress returns the pickup address text.
func (s *Shipment) OriginAddress() string {
	return s.originAddress
}

// DestinationAddress returns the dropoff address text.
func (s *Shipment) DestinationAddress() string {
	return s.destinationAddress
}

// WeightKg returns the cargo weight in kilograms.
func (s *Shipment) WeightKg() float64 {
	return s.weightKg
}

// DistanceKm returns the route distance fixed at creation.
func (s *Shipment) DistanceKm() float64 {
	return s.distanceKm
}

// Price returns the final price fixed at creation.
func (s *Shipment) Price() kernel.Money {
	return s.price
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// IsOwnedBy reports whether customerID owns this shipment.
func (s *Shipment) IsOwnedBy(customerID kernel.UUID) bool {
	return s.customerID.IsEqual(customerID)
}

// IsAssignedTo reports whether driverID is the assigned driver.
// A shipment without a driver is assigned to nobody.
func (s *Shipment) IsAssignedTo(driverID kernel.UUID) bool {
	return s.driverID != nil && s.driverID.IsEqual(driverID)
}

// Accept assigns the shipment to the driver who won the accept race and
// moves the status from Pending to Accepted.
//
// This method enforces the following business rules:
//   - The driver ID must be valid
//   - The shipment must still be Pending
//
// In-memory enforcement alone does not close the concurrent accept race:
// the repository commit must also guard on the stored Pending status so
// that of N simultaneous accepts exactly one wins.
func (s *Shipment) Accept(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Accept()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.driverID = &driverID
	return nil
}

// AdvanceStatus moves the shipment forward along the delivery progression
// (Accepted -> PickedUp -> InTransit -> Delivered). See Status.Advance for
// the loose versus strict semantics.
func (s *Shipment) AdvanceStatus(next Status, strict bool) error {
	newStatus, err := s.status.Advance(next, strict)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Cancel moves the shipment to Cancelled and clears the assigned driver.
// Returns the previously assigned driver's ID so the caller can release
// the driver and notify them, or nil if the shipment was still unassigned.
//
// Cancelling a delivered or already cancelled shipment fails with
// ErrInvalidStatusTransition.
func (s *Shipment) Cancel() (*kernel.UUID, error) {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return nil, err
	}

	released := s.driverID
	s.status = newStatus
	s.driverID = nil
	return released, nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerId: %w", err)
	}
	s.customerID = customerID
	return nil
}

func (s *Shipment) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return fmt.Errorf("driverId: %w", err)
		}
	}
	s.driverID = driverID
	return nil
}

func (s *Shipment) setVehicleTypeID(vehicleTypeID kernel.UUID) error {
	if err := vehicleTypeID.Validate(); err != nil {
		return fmt.Errorf("vehicleTypeId: %w", err)
	}
	s.vehicleTypeID = vehicleTypeID
	return nil
}

func (s *Shipment) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setOriginAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("originAddress")
	}
	s.originAddress = address
	return nil
}

func (s *Shipment) setDestinationAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	s.destinationAddress = address
	return nil
}

func (s *Shipment) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	s.weightKg = weightKg
	return nil
}

func (s *Shipment) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%g is negative", distanceKm))
	}
	s.distanceKm = distanceKm
	return nil
}

func (s *Shipment) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.price = price
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
