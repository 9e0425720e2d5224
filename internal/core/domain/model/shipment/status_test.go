package shipment_test

import (
	"testing"

	"trix/internal/core/domain/model/shipment"
	"trix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Accept(t *testing.T) {
	t.Run("pending_becomes_accepted", func(t *testing.T) {
		next, err := shipment.StatusPending.Accept()
		require.NoError(t, err)
		assert.Equal(t, shipment.StatusAccepted, next)
	})

	t.Run("every_other_status_conflicts", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusAccepted,
			shipment.StatusPickedUp,
			shipment.StatusInTransit,
			shipment.StatusDelivered,
			shipment.StatusCancelled,
		} {
			_, err := status.Accept()
			require.ErrorIs(t, err, shipment.ErrInvalidStatusTransition, status.String())
		}
	})
}

func TestStatus_Advance_Loose(t *testing.T) {
	cases := []struct {
		name    string
		from    shipment.Status
		to      shipment.Status
		allowed bool
	}{
		{"accepted_to_picked_up", shipment.StatusAccepted, shipment.StatusPickedUp, true},
		{"accepted_to_in_transit", shipment.StatusAccepted, shipment.StatusInTransit, true},
		{"accepted_to_delivered", shipment.StatusAccepted, shipment.StatusDelivered, true},
		{"picked_up_to_in_transit", shipment.StatusPickedUp, shipment.StatusInTransit, true},
		{"picked_up_to_delivered", shipment.StatusPickedUp, shipment.StatusDelivered, true},
		{"in_transit_to_delivered", shipment.StatusInTransit, shipment.StatusDelivered, true},
		{"no_backward_move", shipment.StatusInTransit, shipment.StatusPickedUp, false},
		{"no_repeat", shipment.StatusPickedUp, shipment.StatusPickedUp, false},
		{"pending_cannot_advance", shipment.StatusPending, shipment.StatusPickedUp, false},
		{"delivered_is_terminal", shipment.StatusDelivered, shipment.StatusDelivered, false},
		{"cancelled_is_terminal", shipment.StatusCancelled, shipment.StatusDelivered, false},
		{"cannot_advance_to_cancelled", shipment.StatusAccepted, shipment.StatusCancelled, false},
		{"cannot_advance_to_pending", shipment.StatusAccepted, shipment.StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.from.Advance(tc.to, false)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			} else {
				require.ErrorIs(t, err, shipment.ErrInvalidStatusTransition)
			}
		})
	}
}

func TestStatus_Advance_Strict(t *testing.T) {
	t.Run("single_steps_allowed", func(t *testing.T) {
		steps := []shipment.Status{
			shipment.StatusPickedUp,
			shipment.StatusInTransit,
			shipment.StatusDelivered,
		}

		current := shipment.StatusAccepted
		for _, next := range steps {
			advanced, err := current.Advance(next, true)
			require.NoError(t, err)
			current = advanced
		}
		assert.Equal(t, shipment.StatusDelivered, current)
	})

	t.Run("skipping_rejected", func(t *testing.T) {
		_, err := shipment.StatusAccepted.Advance(shipment.StatusInTransit, true)
		require.ErrorIs(t, err, shipment.ErrInvalidStatusTransition)

		_, err = shipment.StatusAccepted.Advance(shipment.StatusDelivered, true)
		require.ErrorIs(t, err, shipment.ErrInvalidStatusTransition)

		_, err = shipment.StatusPickedUp.Advance(shipment.StatusDelivered, true)
		require.ErrorIs(t, err, shipment.ErrInvalidStatusTransition)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("cancellable_statuses", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusPending,
			shipment.StatusAccepted,
			shipment.StatusPickedUp,
			shipment.StatusInTransit,
		} {
			next, err := status.Cancel()
			require.NoError(t, err, status.String())
			assert.Equal(t, shipment.StatusCancelled, next)
		}
	})

	t.Run("delivered_cannot_be_cancelled", func(t *testing.T) {
		_, err := shipment.StatusDelivered.Cancel()
		require.ErrorIs(t, err, shipment.ErrInvalidStatusTransition)
	})

	t.Run("repeated_cancel_conflicts", func(t *testing.T) {
		_, err := shipment.StatusCancelled.Cancel()
		require.ErrorIs(t, err, shipment.ErrInvalidStatusTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.StatusDelivered.IsTerminal())
	assert.True(t, shipment.StatusCancelled.IsTerminal())
	assert.False(t, shipment.StatusPending.IsTerminal())
	assert.False(t, shipment.StatusAccepted.IsTerminal())
	assert.False(t, shipment.StatusPickedUp.IsTerminal())
	assert.False(t, shipment.StatusInTransit.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusPending,
			shipment.StatusAccepted,
			shipment.StatusPickedUp,
			shipment.StatusInTransit,
			shipment.StatusDelivered,
			shipment.StatusCancelled,
		} {
			parsed, err := shipment.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("wire_format_is_snake_case", func(t *testing.T) {
		assert.Equal(t, "picked_up", shipment.StatusPickedUp.String())
		assert.Equal(t, "in_transit", shipment.StatusInTransit.String())
	})

	t.Run("unknown_string_rejected", func(t *testing.T) {
		_, err := shipment.StatusFromString("Pending")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
