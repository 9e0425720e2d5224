package kernel

import (
	"fmt"
	"math"

	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a non-negative monetary amount held with two decimal
// places of precision. Amounts are rounded half-up on construction, so two
// Money values derived from the same inputs always compare equal.
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a raw amount.
// The amount must not be negative; it is rounded half-up to 2 decimal places.
func NewMoney(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%g is negative", amount))
	}

	return Money{
		amount: roundHalfUp(amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Money value was created through its constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the rounded amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Multiply returns a new Money scaled by factor, rounded half-up to
// 2 decimal places. The factor must not be negative.
func (m Money) Multiply(factor float64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount * factor)
}

// IsEqual compares two monetary amounts.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.amount == other.amount, nil
}

// String implements fmt.Stringer with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// roundHalfUp rounds to 2 decimal places, halves away from zero.
// Amounts are never negative here, so this is standard round-half-up.
func roundHalfUp(v float64) float64 {
	return math.Round(v*100) / 100
}
