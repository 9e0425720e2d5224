package driver

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
	// ErrDriverNotAvailable is returned when a status transition requires
	// the driver to be available and they are not.
	ErrDriverNotAvailable = errors.New("driver is not available")
)

// Driver represents a delivery driver in the dispatch system.
// It is an aggregate root managing the driver's verification state,
// availability status, and registered vehicle.
//
// Business rules:
//   - A driver owns at most one vehicle; a driver without a vehicle is never
//     eligible for shipments.
//   - Only a verified, available driver with sufficient vehicle capacity is
//     eligible for a shipment.
//   - MarkBusy succeeds only from Available; the accept race relies on this
//     transition being committed atomically with the shipment assignment.
//   - ReleaseIfBusy moves Busy back to Available and leaves any other status
//     untouched, so cancelling one shipment never frees a driver who is
//     occupied elsewhere.
type Driver struct { //nolint:recvcheck //using for validation
	id       kernel.UUID
	name     string
	fcmToken string
	verified bool
	status   Status
	vehicle  *Vehicle

	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver in Offline status.
// The FCM token may be empty: notifications to such a driver are dropped as
// best-effort no-ops. The vehicle is optional at registration time.
func NewDriver(id kernel.UUID, name string, fcmToken string, verified bool, vehicle *Vehicle) (*Driver, error) {
	return RestoreDriver(id, name, fcmToken, verified, StatusOffline, vehicle)
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage with
// an explicit status. The restored driver behaves identically to one created
// through normal domain operations.
func RestoreDriver(
	id kernel.UUID,
	name string,
	fcmToken string,
	verified bool,
	status Status,
	vehicle *Vehicle,
) (*Driver, error) {
	d := &Driver{
		fcmToken: fcmToken,
		verified: verified,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setStatus(status),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// FCMToken returns the driver's push-notification handle. May be empty.
func (d *Driver) FCMToken() string {
	return d.fcmToken
}

// IsVerified reports whether the driver passed verification.
func (d *Driver) IsVerified() bool {
	return d.verified
}

// Status returns the driver's current availability status.
func (d *Driver) Status() Status {
	return d.status
}

// Vehicle returns the driver's registered vehicle, or nil if none.
func (d *Driver) Vehicle() *Vehicle {
	return d.vehicle
}

// IsAvailable reports whether the driver can take new assignments:
// verified and currently in Available status.
func (d *Driver) IsAvailable() bool {
	return d.verified && d.status == StatusAvailable
}

// CanCarry reports whether the driver's vehicle capacity covers weightKg.
// A driver without a vehicle can carry nothing.
func (d *Driver) CanCarry(weightKg float64) bool {
	return d.vehicle != nil && d.vehicle.CanCarryWeight(weightKg)
}

// MarkBusy transitions the driver from Available to Busy when winning a
// shipment. Returns ErrDriverNotAvailable for any other starting status.
func (d *Driver) MarkBusy() error {
	if d.status != StatusAvailable {
		return fmt.Errorf("%w: status is %s", ErrDriverNotAvailable, d.status)
	}

	d.status = StatusBusy
	return nil
}

// ReleaseIfBusy transitions the driver from Busy back to Available and
// reports whether a transition happened. A driver in any other status is
// left untouched: busy-elsewhere drivers must not be freed by cancelling an
// unrelated shipment.
func (d *Driver) ReleaseIfBusy() bool {
	if d.status != StatusBusy {
		return false
	}

	d.status = StatusAvailable
	return true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setVehicle(vehicle *Vehicle) error {
	if vehicle != nil {
		if err := vehicle.Validate(); err != nil {
			return err
		}
	}
	d.vehicle = vehicle
	return nil
}
