package pricing

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// ErrVehicleTypeIsNotConstructed is returned when using an improperly
// initialized VehicleType.
var ErrVehicleTypeIsNotConstructed = errors.New("VehicleType must be created via NewVehicleType constructor")

// VehicleType is reference data describing a class of delivery vehicle:
// the nominal weight range it advertises and the multiplier applied to a
// tier's base price when this vehicle class is requested.
type VehicleType struct { //nolint:recvcheck //using for validation
	id                kernel.UUID
	name              string
	weightMinKg       float64
	weightMaxKg       float64
	pricingMultiplier float64

	guard guard.ConstructorGuard
}

// NewVehicleType creates a vehicle type with a nominal weight range and a
// positive pricing multiplier.
func NewVehicleType(
	id kernel.UUID,
	name string,
	weightMinKg float64,
	weightMaxKg float64,
	pricingMultiplier float64,
) (VehicleType, error) {
	vehicleType := VehicleType{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicleType.setID(id),
		vehicleType.setName(name),
		vehicleType.setWeightRange(weightMinKg, weightMaxKg),
		vehicleType.setPricingMultiplier(pricingMultiplier),
	); err != nil {
		return VehicleType{}, err
	}

	return vehicleType, nil
}

// Validate checks that the VehicleType was created through its constructor.
func (v VehicleType) Validate() error {
	return v.guard.Validate(ErrVehicleTypeIsNotConstructed)
}

// ID returns the vehicle type's unique identifier.
func (v VehicleType) ID() kernel.UUID {
	return v.id
}

// Name returns the vehicle type name, e.g. "Small Van".
func (v VehicleType) Name() string {
	return v.name
}

// WeightMinKg returns the lower bound of the advertised weight range.
func (v VehicleType) WeightMinKg() float64 {
	return v.weightMinKg
}

// WeightMaxKg returns the upper bound of the advertised weight range.
func (v VehicleType) WeightMaxKg() float64 {
	return v.weightMaxKg
}

// PricingMultiplier returns the factor applied to a tier's base price.
func (v VehicleType) PricingMultiplier() float64 {
	return v.pricingMultiplier
}

// CanCarryWeight reports whether weightKg is within the advertised range.
// This advertises nominal capacity only; driver eligibility checks the
// vehicle's own max weight, which may override the type's range.
func (v VehicleType) CanCarryWeight(weightKg float64) bool {
	return weightKg >= v.weightMinKg && weightKg <= v.weightMaxKg
}

func (v *VehicleType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *VehicleType) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("vehicle type name")
	}
	v.name = name
	return nil
}

func (v *VehicleType) setWeightRange(weightMinKg float64, weightMaxKg float64) error {
	if weightMinKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightMinKg",
			fmt.Errorf("%g is negative", weightMinKg))
	}
	if weightMaxKg < weightMinKg {
		return errs.NewValueIsInvalidErrorWithCause("weightMaxKg",
			fmt.Errorf("%g is below weightMinKg %g", weightMaxKg, weightMinKg))
	}

	v.weightMinKg = weightMinKg
	v.weightMaxKg = weightMaxKg
	return nil
}

func (v *VehicleType) setPricingMultiplier(pricingMultiplier float64) error {
	if pricingMultiplier <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricingMultiplier",
			fmt.Errorf("%g is not greater than 0", pricingMultiplier))
	}
	v.pricingMultiplier = pricingMultiplier
	return nil
}
