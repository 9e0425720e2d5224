package driver

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is the single vehicle registered to a driver. Its max weight is a
// per-unit override of the vehicle type's advertised range and is the value
// eligibility checks use.
type Vehicle struct { //nolint:recvcheck //using for validation
	id            kernel.UUID
	vehicleTypeID kernel.UUID
	plateNumber   string
	maxWeightKg   float64

	guard guard.ConstructorGuard
}

// NewVehicle creates a driver's vehicle.
// The plate number must be non-empty and the max weight positive.
func NewVehicle(id kernel.UUID, vehicleTypeID kernel.UUID, plateNumber string, maxWeightKg float64) (Vehicle, error) {
	vehicle := Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setVehicleTypeID(vehicleTypeID),
		vehicle.setPlateNumber(plateNumber),
		vehicle.setMaxWeightKg(maxWeightKg),
	); err != nil {
		return Vehicle{}, err
	}

	return vehicle, nil
}

// Validate checks that the Vehicle was created through its constructor.
func (v Vehicle) Validate() error {
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v Vehicle) ID() kernel.UUID {
	return v.id
}

// VehicleTypeID returns the identifier of the vehicle's type.
func (v Vehicle) VehicleTypeID() kernel.UUID {
	return v.vehicleTypeID
}

// PlateNumber returns the registration plate.
func (v Vehicle) PlateNumber() string {
	return v.plateNumber
}

// MaxWeightKg returns the effective carrying capacity in kilograms.
func (v Vehicle) MaxWeightKg() float64 {
	return v.maxWeightKg
}

// CanCarryWeight reports whether the vehicle can carry weightKg.
func (v Vehicle) CanCarryWeight(weightKg float64) bool {
	return weightKg <= v.maxWeightKg
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setVehicleTypeID(vehicleTypeID kernel.UUID) error {
	if err := vehicleTypeID.Validate(); err != nil {
		return err
	}
	v.vehicleTypeID = vehicleTypeID
	return nil
}

func (v *Vehicle) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plate number")
	}
	v.plateNumber = plateNumber
	return nil
}

func (v *Vehicle) setMaxWeightKg(maxWeightKg float64) error {
	if maxWeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxWeightKg",
			fmt.Errorf("%g is not greater than 0", maxWeightKg))
	}
	v.maxWeightKg = maxWeightKg
	return nil
}
