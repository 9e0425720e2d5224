package pricing

import (
	"errors"
	"fmt"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// ErrTierIsNotConstructed is returned when using an improperly initialized Tier.
var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier is a distance band within a pricing zone mapping to a base price.
// Both bounds are inclusive: a distance exactly on a shared boundary between
// two adjacent tiers matches both, and zone tier order decides which one wins.
// Tiers of a zone are expected to partition [0, ∞) without gaps; a distance
// not covered by any tier is a configuration error surfaced by the pricing
// engine.
type Tier struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	minKm     float64
	maxKm     float64
	basePrice kernel.Money

	guard guard.ConstructorGuard
}

// NewTier creates a distance tier covering [minKm, maxKm] with the given base price.
// minKm must not be negative and maxKm must not be below minKm.
func NewTier(id kernel.UUID, minKm float64, maxKm float64, basePrice kernel.Money) (Tier, error) {
	tier := Tier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tier.setID(id),
		tier.setBounds(minKm, maxKm),
		tier.setBasePrice(basePrice),
	); err != nil {
		return Tier{}, err
	}

	return tier, nil
}

// Validate checks that the Tier was created through its constructor.
func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// ID returns the tier's unique identifier.
func (t Tier) ID() kernel.UUID {
	return t.id
}

// MinKm returns the inclusive lower distance bound in kilometers.
func (t Tier) MinKm() float64 {
	return t.minKm
}

// MaxKm returns the inclusive upper distance bound in kilometers.
func (t Tier) MaxKm() float64 {
	return t.maxKm
}

// BasePrice returns the base price for distances within this tier.
func (t Tier) BasePrice() kernel.Money {
	return t.basePrice
}

// Covers reports whether distanceKm falls within [MinKm, MaxKm].
func (t Tier) Covers(distanceKm float64) bool {
	return distanceKm >= t.minKm && distanceKm <= t.maxKm
}

func (t *Tier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tier) setBounds(minKm float64, maxKm float64) error {
	if minKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minKm",
			fmt.Errorf("%g is negative", minKm))
	}
	if maxKm < minKm {
		return errs.NewValueIsInvalidErrorWithCause("maxKm",
			fmt.Errorf("%g is below minKm %g", maxKm, minKm))
	}

	t.minKm = minKm
	t.maxKm = maxKm
	return nil
}

func (t *Tier) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	t.basePrice = basePrice
	return nil
}
